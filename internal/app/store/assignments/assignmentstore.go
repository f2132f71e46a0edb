// internal/app/store/assignments/assignmentstore.go
package assignmentstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/coursedesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the assignments collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("assignments")}
}

// Create inserts a new Assignment, setting TitleCI and CreatedAt.
// Title and CourseID are required; Points must be within bounds.
func (s *Store) Create(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	if strings.TrimSpace(a.Title) == "" {
		return models.Assignment{}, mongo.CommandError{Message: "title is required"}
	}
	if a.CourseID.IsZero() {
		return models.Assignment{}, mongo.CommandError{Message: "course_id is required"}
	}
	if a.Points < models.MinAssignmentPoints || a.Points > models.MaxAssignmentPoints {
		return models.Assignment{}, mongo.CommandError{Message: "points must be between 1 and 1000"}
	}

	a.ID = primitive.NewObjectID()
	a.TitleCI = text.Fold(a.Title)
	a.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

// GetByID returns a single assignment.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Assignment, error) {
	var a models.Assignment
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	return a, err
}

// ByCourse returns the assignments belonging to one course, using the
// equality index on course_id.
func (s *Store) ByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Assignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.Assignment
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes exactly one assignment by id. Submissions referencing the
// assignment are left in place.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
