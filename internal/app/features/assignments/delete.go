// internal/app/features/assignments/delete.go
package assignments

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/coursedesk/internal/app/features/errors"
	assignmentstore "github.com/dalemusser/coursedesk/internal/app/store/assignments"
	coursestore "github.com/dalemusser/coursedesk/internal/app/store/courses"
	"github.com/dalemusser/coursedesk/internal/app/system/authz"
	"github.com/dalemusser/coursedesk/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete deletes one assignment. The delete control carries hx-confirm,
// so the browser has already asked the user before this handler runs.
//
// Submissions referencing the assignment are intentionally left in place;
// orphaned submission documents are an accepted side effect.
//
// The HTMX response removes just the deleted row; no full refetch happens.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	role, _, actorID, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid assignment ID.", "/assignments")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := assignmentstore.New(h.DB)

	// Get the assignment first for the audit record and scope check
	a, err := store.GetByID(ctx, oid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Assignment not found.", "/assignments")
		return
	}

	// Teachers may only delete assignments in courses they instruct
	if role == "teacher" {
		course, err := coursestore.New(h.DB).GetByID(ctx, a.CourseID)
		if err != nil || course.InstructorID != actorID {
			uierrors.RenderForbidden(w, r, "You can only delete assignments for your own courses.", "/assignments")
			return
		}
	}

	if _, err := store.Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete assignment failed", err, "Unable to delete assignment.", "/assignments")
		return
	}

	h.AuditLog.AssignmentDeleted(ctx, r, actorID, oid, role, a.Title)

	// HTMX flow: empty 200 with outerHTML swap removes the row in place
	if r.Header.Get("HX-Request") != "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	ret := urlutil.SafeReturn(r.FormValue("return"), idHex, "/assignments")
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
