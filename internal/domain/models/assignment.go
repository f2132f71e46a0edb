// internal/domain/models/assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment points bounds enforced on creation.
const (
	MinAssignmentPoints = 1
	MaxAssignmentPoints = 1000
)

// Assignment represents one graded task belonging to exactly one course.
type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CourseID    primitive.ObjectID `bson:"course_id" json:"course_id"`
	DueDate     *time.Time         `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Points      int                `bson:"points" json:"points"`

	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	CreatedBy primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// HasDueDate reports whether a due date is set.
func (a *Assignment) HasDueDate() bool {
	return a.DueDate != nil && !a.DueDate.IsZero()
}

// EnrichedAssignment is an Assignment plus the display fields the admin
// screen derives on every load. It is transient and never persisted; the
// derived fields live here instead of being patched onto Assignment so the
// base document shape stays authoritative.
type EnrichedAssignment struct {
	Assignment

	CourseTitle      string `json:"course_title"`
	SubmissionsCount int64  `json:"submissions_count"`
}
