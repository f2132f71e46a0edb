// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"

	"github.com/dalemusser/coursedesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides read access to the courses collection. The course service
// owns this collection; CourseDesk only queries it to resolve visibility.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// GetByID returns a single course.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var course models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	return course, err
}

// ByInstructor returns the courses taught by the given instructor, using the
// equality index on instructor_id.
func (s *Store) ByInstructor(ctx context.Context, instructorID primitive.ObjectID) ([]models.Course, error) {
	return s.find(ctx, bson.M{"instructor_id": instructorID})
}

// All returns every course, ordered by case-insensitive title.
func (s *Store) All(ctx context.Context) ([]models.Course, error) {
	return s.find(ctx, bson.M{})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title_ci", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
