// internal/app/features/assignments/routes.go
package assignments

import (
	"github.com/dalemusser/coursedesk/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the assignments screen under whatever base path the caller
// chooses (typically "/assignments" from bootstrap).
//
// Any signed-in user may reach the screen; visibility narrowing for the
// "teacher" role happens in the aggregator, so unrecognized roles keep
// admin-like access rather than being locked out.
//
// Example from bootstrap:
//
//	h := assignments.NewHandler(db, errLog, audit, logger)
//	r.Mount("/assignments", assignments.Routes(h, sessionMgr))
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// LIST (full page + HTMX table swap)
		pr.Get("/", h.ServeList)

		// CREATE
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		// DELETE
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
