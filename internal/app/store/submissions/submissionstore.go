// internal/app/store/submissions/submissionstore.go
package submissionstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides read access to the submissions collection, which the
// student app owns. CourseDesk only counts documents here.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("submissions")}
}

// CountByAssignment counts submissions for one assignment, using the
// equality index on assignment_id.
func (s *Store) CountByAssignment(ctx context.Context, assignmentID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"assignment_id": assignmentID})
}
