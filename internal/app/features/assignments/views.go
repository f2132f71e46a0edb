// internal/app/features/assignments/views.go
package assignments

import (
	"time"

	"github.com/dalemusser/coursedesk/internal/domain/models"
)

// Derived views over the enriched sequence. Each is a pure filter recomputed
// on every render; nothing here is persisted.

// FilterActive keeps assignments with no due date or a due date at/after now.
func FilterActive(rows []models.EnrichedAssignment, now time.Time) []models.EnrichedAssignment {
	out := make([]models.EnrichedAssignment, 0, len(rows))
	for _, a := range rows {
		if !a.HasDueDate() || !a.DueDate.Before(now) {
			out = append(out, a)
		}
	}
	return out
}

// FilterPendingGrading keeps assignments with at least one submission.
// There is no graded state in the model, so presence of submissions is the
// whole classification; already-graded work is not excluded.
func FilterPendingGrading(rows []models.EnrichedAssignment) []models.EnrichedAssignment {
	out := make([]models.EnrichedAssignment, 0, len(rows))
	for _, a := range rows {
		if a.SubmissionsCount > 0 {
			out = append(out, a)
		}
	}
	return out
}

// FilterRecentlyGraded is a placeholder: no graded state is tracked anywhere
// in the model, so this view is always empty.
func FilterRecentlyGraded(rows []models.EnrichedAssignment) []models.EnrichedAssignment {
	return []models.EnrichedAssignment{}
}
