// internal/app/features/assignments/types.go
package assignments

import (
	"html/template"

	"github.com/dalemusser/coursedesk/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listItem is one row of the assignments table.
type listItem struct {
	ID               primitive.ObjectID
	Title            string
	CourseTitle      string
	Description      template.HTML
	DueDate          string // formatted, "" when unset
	Points           int
	SubmissionsCount int64
	CreatedAt        string // formatted
	IsActive         bool
	PendingGrading   bool
}

// listData drives the assignments_list template.
type listData struct {
	viewdata.BaseVM

	Items []listItem

	// Aggregate counts shown above the table.
	TotalCount          int
	ActiveCount         int
	PendingGradingCount int
	RecentlyGradedCount int
}

// courseOption is one entry in the course select on the new-assignment form.
type courseOption struct {
	ID    primitive.ObjectID
	Title string
}

// formVM carries the new-assignment form state, including re-render after a
// validation failure with the user's input preserved.
type formVM struct {
	viewdata.BaseVM

	Courses []courseOption

	AssignmentTitle string
	CourseID        string
	Description     string
	DueDate         string // yyyy-mm-dd as typed
	Points          string // as typed so bad input round-trips

	Error string
}
