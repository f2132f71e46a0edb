package userstore_test

import (
	"testing"

	userstore "github.com/dalemusser/coursedesk/internal/app/store/users"
	"github.com/dalemusser/coursedesk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetByEmail_NormalizesInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	created := fixtures.CreateTeacher(ctx, "Teacher", "teacher@test.com")

	u, err := store.GetByEmail(ctx, "  Teacher@Test.com  ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("user ID: got %v, want %v", u.ID, created.ID)
	}
}

func TestFetcher_ReturnsSessionUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	created := fixtures.CreateAdmin(ctx, "Admin User", "admin@test.com")

	fetcher := userstore.NewFetcher(db)
	su, err := fetcher.FetchSessionUser(ctx, created.ID.Hex())
	if err != nil {
		t.Fatalf("FetchSessionUser failed: %v", err)
	}
	if su.ID != created.ID.Hex() {
		t.Errorf("ID: got %q, want %q", su.ID, created.ID.Hex())
	}
	if su.Role != "admin" {
		t.Errorf("Role: got %q, want %q", su.Role, "admin")
	}
	if su.Name != "Admin User" {
		t.Errorf("Name: got %q, want %q", su.Name, "Admin User")
	}
}

func TestFetcher_DisabledUserTreatedAsMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	disabled := fixtures.CreateDisabledUser(ctx, "Disabled User", "disabled@test.com")

	fetcher := userstore.NewFetcher(db)
	if _, err := fetcher.FetchSessionUser(ctx, disabled.ID.Hex()); err == nil {
		t.Error("expected error for disabled user")
	}
}

func TestFetcher_MalformedIDFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fetcher := userstore.NewFetcher(db)
	if _, err := fetcher.FetchSessionUser(ctx, "not-a-hex-id"); err == nil {
		t.Error("expected error for malformed id")
	}
}

func TestGetByIDs_ReturnsMatchingUsers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	a := fixtures.CreateTeacher(ctx, "Teacher A", "a@test.com")
	b := fixtures.CreateTeacher(ctx, "Teacher B", "b@test.com")
	fixtures.CreateTeacher(ctx, "Teacher C", "c@test.com")

	users, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, b.ID, primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	users, err = store.GetByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("GetByIDs with no ids failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected no users for empty id list, got %d", len(users))
	}
}
