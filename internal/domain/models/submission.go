// internal/domain/models/submission.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is a student's hand-in for an assignment. The student app owns
// this collection; CourseDesk only counts submissions per assignment.
//
// NOTE: deleting an assignment does not cascade to its submissions. Orphaned
// submission documents are an accepted side effect of the delete operation.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID primitive.ObjectID `bson:"assignment_id" json:"assignment_id"`
	StudentID    primitive.ObjectID `bson:"student_id" json:"student_id"`

	SubmittedAt time.Time `bson:"submitted_at" json:"submitted_at"`
}
