// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a course record owned by the course service. CourseDesk reads
// courses to resolve which assignments the acting user may see; it never
// writes to this collection.
type Course struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	TitleCI      string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped
	InstructorID primitive.ObjectID `bson:"instructor_id" json:"instructor_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
