package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/coursedesk/internal/app/system/auth"
	"github.com/dalemusser/coursedesk/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testUserID returns a valid ObjectID hex string for tests.
func testUserID() string {
	return primitive.NewObjectID().Hex()
}

func TestUserCtx_ValidUser(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   id.Hex(),
		Name: "Test Teacher",
		Role: "Teacher",
	})

	role, name, userID, ok := authz.UserCtx(req)
	if !ok {
		t.Fatal("expected ok=true for valid user")
	}
	if role != "teacher" {
		t.Errorf("role: got %q, want %q (lowercased)", role, "teacher")
	}
	if name != "Test Teacher" {
		t.Errorf("name: got %q, want %q", name, "Test Teacher")
	}
	if userID != id {
		t.Errorf("userID: got %v, want %v", userID, id)
	}
}

func TestUserCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	role, _, userID, ok := authz.UserCtx(req)
	if ok {
		t.Error("expected ok=false when no user in context")
	}
	if role != "visitor" {
		t.Errorf("role: got %q, want %q", role, "visitor")
	}
	if !userID.IsZero() {
		t.Errorf("expected NilObjectID, got %v", userID)
	}
}

func TestUserCtx_MalformedIDFailsClosed(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   "not-an-object-id",
		Role: "admin",
	})

	role, _, _, ok := authz.UserCtx(req)
	if ok {
		t.Error("expected ok=false for malformed user ID")
	}
	if role != "visitor" {
		t.Errorf("role: got %q, want %q", role, "visitor")
	}
}

func TestIsAdmin_True_ForAdmin(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   testUserID(),
		Role: "admin",
	})

	if !authz.IsAdmin(req) {
		t.Error("expected IsAdmin to return true for admin user")
	}
}

func TestIsAdmin_False_ForTeacher(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   testUserID(),
		Role: "teacher",
	})

	if authz.IsAdmin(req) {
		t.Error("expected IsAdmin to return false for teacher user")
	}
}

func TestIsTeacher_True_ForTeacher(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   testUserID(),
		Role: "teacher",
	})

	if !authz.IsTeacher(req) {
		t.Error("expected IsTeacher to return true for teacher user")
	}
}

func TestIsTeacher_False_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	if authz.IsTeacher(req) {
		t.Error("expected IsTeacher to return false when no user")
	}
}
