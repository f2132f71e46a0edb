// internal/app/features/assignments/list.go
package assignments

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/coursedesk/internal/app/system/authz"
	"github.com/dalemusser/coursedesk/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursedesk/internal/app/system/timeouts"
	"github.com/dalemusser/coursedesk/internal/app/system/viewdata"
	"github.com/dalemusser/coursedesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

const displayDate = "Jan 2, 2006"

// ServeList displays the assignments screen: the enriched sequence ordered
// newest first, with the Active / Pending grading / Recently graded counts
// above the table.
//
// A load failure discards the whole in-flight result; nothing partial is
// shown and the user may retry by reloading.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	role, _, userID, _ := authz.UserCtx(r)

	// The aggregation fans out one query per course plus one per assignment.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	rows, err := NewAggregator(h.DB).Aggregate(ctx, userID, role)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "assignment aggregation failed", err, "Unable to load assignments.", "/")
		return
	}

	now := time.Now().UTC()
	active := FilterActive(rows, now)
	pending := FilterPendingGrading(rows)
	graded := FilterRecentlyGraded(rows)

	items := make([]listItem, 0, len(rows))
	activeSet := make(map[string]struct{}, len(active))
	for _, a := range active {
		activeSet[a.ID.Hex()] = struct{}{}
	}
	for _, a := range rows {
		_, isActive := activeSet[a.ID.Hex()]
		items = append(items, listItem{
			ID:               a.ID,
			Title:            a.Title,
			CourseTitle:      a.CourseTitle,
			Description:      htmlsanitize.PrepareForDisplay(a.Description),
			DueDate:          formatDueDate(a),
			Points:           a.Points,
			SubmissionsCount: a.SubmissionsCount,
			CreatedAt:        formatCreatedAt(a),
			IsActive:         isActive,
			PendingGrading:   a.SubmissionsCount > 0,
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Assignments", "/"),
		Items:  items,

		TotalCount:          len(rows),
		ActiveCount:         len(active),
		PendingGradingCount: len(pending),
		RecentlyGradedCount: len(graded),
	}

	// HTMX partial table refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "assignments-table-wrap" {
		templates.RenderSnippet(w, "assignments_table", data)
		return
	}

	templates.Render(w, r, "assignments_list", data)
}

func formatDueDate(a models.EnrichedAssignment) string {
	if !a.HasDueDate() {
		return ""
	}
	return a.DueDate.Format(displayDate)
}

// formatCreatedAt returns "" for records with no created timestamp so the
// table renders a dash instead of the zero date.
func formatCreatedAt(a models.EnrichedAssignment) string {
	if a.CreatedAt.IsZero() {
		return ""
	}
	return a.CreatedAt.Format(displayDate)
}
