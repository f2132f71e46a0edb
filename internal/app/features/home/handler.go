// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/coursedesk/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler serves the landing route. Signed-in users go straight to the
// assignments screen; everyone else goes to the sign-in form.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/assignments", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
