package assignmentstore_test

import (
	"testing"
	"time"

	assignmentstore "github.com/dalemusser/coursedesk/internal/app/store/assignments"
	"github.com/dalemusser/coursedesk/internal/domain/models"
	"github.com/dalemusser/coursedesk/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreate_SetsDerivedFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().UTC().Add(-time.Second)

	created, err := store.Create(ctx, models.Assignment{
		Title:    "Héllo Wörld",
		CourseID: primitive.NewObjectID(),
		Points:   100,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected ID to be generated")
	}
	if created.TitleCI != "hello world" {
		t.Errorf("title_ci: got %q, want %q", created.TitleCI, "hello world")
	}
	if created.CreatedAt.Before(before) {
		t.Errorf("created_at not stamped: %v", created.CreatedAt)
	}
}

func TestCreate_RejectsEmptyTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Assignment{
		Title:    "   ",
		CourseID: primitive.NewObjectID(),
		Points:   100,
	})
	if err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestCreate_RejectsMissingCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Assignment{
		Title:  "No Course",
		Points: 100,
	})
	if err == nil {
		t.Fatal("expected error for zero course_id")
	}
}

func TestCreate_RejectsPointsOutOfBounds(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	courseID := primitive.NewObjectID()

	for _, points := range []int{0, -5, 1001} {
		_, err := store.Create(ctx, models.Assignment{
			Title:    "Bad Points",
			CourseID: courseID,
			Points:   points,
		})
		if err == nil {
			t.Errorf("expected error for points=%d", points)
		}
	}

	for _, points := range []int{1, 1000} {
		_, err := store.Create(ctx, models.Assignment{
			Title:    "Boundary Points",
			CourseID: courseID,
			Points:   points,
		})
		if err != nil {
			t.Errorf("points=%d should be accepted: %v", points, err)
		}
	}
}

func TestByCourse_FiltersToCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c1 := primitive.NewObjectID()
	c2 := primitive.NewObjectID()

	for _, courseID := range []primitive.ObjectID{c1, c1, c2} {
		if _, err := store.Create(ctx, models.Assignment{
			Title:    "Assignment",
			CourseID: courseID,
			Points:   100,
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	rows, err := store.ByCourse(ctx, c1)
	if err != nil {
		t.Fatalf("ByCourse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 assignments for course, got %d", len(rows))
	}
}

func TestDelete_RemovesOne(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	courseID := primitive.NewObjectID()
	target, err := store.Create(ctx, models.Assignment{
		Title:    "Target",
		CourseID: courseID,
		Points:   100,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, target.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted count: got %d, want 1", deleted)
	}

	if _, err := store.GetByID(ctx, target.ID); err == nil {
		t.Error("expected GetByID to fail after delete")
	}
}

func TestDelete_MissingIDIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deleted, err := store.Delete(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted count: got %d, want 0", deleted)
	}
}
