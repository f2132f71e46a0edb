package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/coursedesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		Role:       role,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateUserWithPassword creates a test user with a bcrypt password hash so
// login flows can be exercised end to end.
func (f *Fixtures) CreateUserWithPassword(ctx context.Context, fullName, email, role, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		FullNameCI:   text.Fold(fullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err = f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateDisabledUser creates a test user with disabled status.
func (f *Fixtures) CreateDisabledUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		Role:       "teacher",
		Status:     "disabled",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create disabled test user: %v", err)
	}

	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "admin")
}

// CreateTeacher creates a test teacher user.
func (f *Fixtures) CreateTeacher(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "teacher")
}

// CreateCourse creates a test course instructed by the given user.
func (f *Fixtures) CreateCourse(ctx context.Context, title string, instructorID primitive.ObjectID) models.Course {
	f.t.Helper()

	course := models.Course{
		ID:           primitive.NewObjectID(),
		Title:        title,
		TitleCI:      text.Fold(title),
		InstructorID: instructorID,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := f.db.Collection("courses").InsertOne(ctx, course)
	if err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}

	return course
}

// CreateAssignment creates a test assignment in the given course, created at
// the given time so tests can control sort order.
func (f *Fixtures) CreateAssignment(ctx context.Context, title string, courseID primitive.ObjectID, createdAt time.Time) models.Assignment {
	f.t.Helper()

	a := models.Assignment{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		CourseID:  courseID,
		Points:    100,
		CreatedAt: createdAt.UTC(),
	}

	_, err := f.db.Collection("assignments").InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}

	return a
}

// CreateAssignmentWithDueDate creates a test assignment with a due date.
func (f *Fixtures) CreateAssignmentWithDueDate(ctx context.Context, title string, courseID primitive.ObjectID, due time.Time) models.Assignment {
	f.t.Helper()

	due = due.UTC()
	a := models.Assignment{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		CourseID:  courseID,
		DueDate:   &due,
		Points:    100,
		CreatedAt: time.Now().UTC(),
	}

	_, err := f.db.Collection("assignments").InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}

	return a
}

// CreateSubmission creates a test submission for the given assignment.
func (f *Fixtures) CreateSubmission(ctx context.Context, assignmentID primitive.ObjectID) models.Submission {
	f.t.Helper()

	sub := models.Submission{
		ID:           primitive.NewObjectID(),
		AssignmentID: assignmentID,
		StudentID:    primitive.NewObjectID(),
		SubmittedAt:  time.Now().UTC(),
	}

	_, err := f.db.Collection("submissions").InsertOne(ctx, sub)
	if err != nil {
		f.t.Fatalf("failed to create test submission: %v", err)
	}

	return sub
}
