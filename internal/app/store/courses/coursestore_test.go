package coursestore_test

import (
	"testing"

	coursestore "github.com/dalemusser/coursedesk/internal/app/store/courses"
	"github.com/dalemusser/coursedesk/internal/testutil"
)

func TestByInstructor_ScopesToInstructor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	t1 := fixtures.CreateTeacher(ctx, "Teacher One", "t1@test.com")
	t2 := fixtures.CreateTeacher(ctx, "Teacher Two", "t2@test.com")

	fixtures.CreateCourse(ctx, "Algebra", t1.ID)
	fixtures.CreateCourse(ctx, "Geometry", t1.ID)
	fixtures.CreateCourse(ctx, "Biology", t2.ID)

	courses, err := store.ByInstructor(ctx, t1.ID)
	if err != nil {
		t.Fatalf("ByInstructor failed: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	for _, c := range courses {
		if c.InstructorID != t1.ID {
			t.Errorf("course %q has instructor %v, want %v", c.Title, c.InstructorID, t1.ID)
		}
	}
}

func TestAll_SortedByFoldedTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	teacher := fixtures.CreateTeacher(ctx, "Teacher", "teacher@test.com")

	fixtures.CreateCourse(ctx, "zoology", teacher.ID)
	fixtures.CreateCourse(ctx, "Algebra", teacher.ID)
	fixtures.CreateCourse(ctx, "Éthics", teacher.ID)

	courses, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	want := []string{"Algebra", "Éthics", "zoology"}
	if len(courses) != len(want) {
		t.Fatalf("expected %d courses, got %d", len(want), len(courses))
	}
	for i, title := range want {
		if courses[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, courses[i].Title, title)
		}
	}
}

func TestGetByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := coursestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	teacher := fixtures.CreateTeacher(ctx, "Teacher", "teacher@test.com")
	course := fixtures.CreateCourse(ctx, "Algebra", teacher.ID)

	got, err := store.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Algebra" {
		t.Errorf("title: got %q, want %q", got.Title, "Algebra")
	}
}
