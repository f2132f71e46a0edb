// internal/app/features/assignments/aggregator.go
package assignments

import (
	"context"
	"sort"
	"time"

	assignmentstore "github.com/dalemusser/coursedesk/internal/app/store/assignments"
	coursestore "github.com/dalemusser/coursedesk/internal/app/store/courses"
	submissionstore "github.com/dalemusser/coursedesk/internal/app/store/submissions"
	"github.com/dalemusser/coursedesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Aggregator produces the enriched assignment sequence the admin screen
// renders. It runs three stages in order: resolve which courses the acting
// user may see, fetch each course's assignments with the course title
// attached, then count submissions per assignment. The final sequence is
// ordered newest-created first.
//
// Any store error aborts the whole load; callers get nil rows, never a
// partial result.
type Aggregator struct {
	courses     *coursestore.Store
	assignments *assignmentstore.Store
	submissions *submissionstore.Store
}

// NewAggregator constructs an Aggregator over the given database.
func NewAggregator(db *mongo.Database) *Aggregator {
	return &Aggregator{
		courses:     coursestore.New(db),
		assignments: assignmentstore.New(db),
		submissions: submissionstore.New(db),
	}
}

// Aggregate returns the acting user's assignments, enriched and ordered.
//
// Role "teacher" sees only courses they instruct; any other role sees all
// courses. A zero user id means no course scope exists: the result is empty
// with no error and no round trips.
//
// Submission counts are one CountDocuments call per assignment, issued
// sequentially. Linear round-trip cost is accepted at this scale.
func (ag *Aggregator) Aggregate(ctx context.Context, userID primitive.ObjectID, role string) ([]models.EnrichedAssignment, error) {
	if userID.IsZero() {
		return []models.EnrichedAssignment{}, nil
	}

	scope, err := ag.resolveCourseScope(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	rows, err := ag.enrich(ctx, scope)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		count, err := ag.submissions.CountByAssignment(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		rows[i].SubmissionsCount = count
	}

	sortNewestFirst(rows)
	return rows, nil
}

// resolveCourseScope returns the courses visible to the acting user.
func (ag *Aggregator) resolveCourseScope(ctx context.Context, userID primitive.ObjectID, role string) ([]models.Course, error) {
	if role == "teacher" {
		return ag.courses.ByInstructor(ctx, userID)
	}
	return ag.courses.All(ctx)
}

// enrich fetches each course's assignments and attaches the course title.
// Assignments accumulate into one flat sequence; no dedup is needed because
// each assignment belongs to exactly one course.
func (ag *Aggregator) enrich(ctx context.Context, scope []models.Course) ([]models.EnrichedAssignment, error) {
	rows := make([]models.EnrichedAssignment, 0)
	for _, course := range scope {
		found, err := ag.assignments.ByCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range found {
			rows = append(rows, models.EnrichedAssignment{
				Assignment:  a,
				CourseTitle: course.Title,
			})
		}
	}
	return rows, nil
}

// sortNewestFirst orders by created_at descending. A missing created_at
// sorts as the epoch, i.e. last.
func sortNewestFirst(rows []models.EnrichedAssignment) {
	sort.SliceStable(rows, func(i, j int) bool {
		return createdAtOrEpoch(rows[i]).After(createdAtOrEpoch(rows[j]))
	})
}

func createdAtOrEpoch(a models.EnrichedAssignment) time.Time {
	if a.CreatedAt.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return a.CreatedAt
}
