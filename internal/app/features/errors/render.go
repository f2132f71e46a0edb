// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/coursedesk/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it falls back to the home page.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, "Access denied", msg, backURL, "/")
}

// RenderNotFound shows a friendly "not found" page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusNotFound)
	render(w, r, "Not found", msg, backURL, "/")
}

// RenderBadRequest shows a friendly "bad request" page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusBadRequest)
	render(w, r, "Invalid request", msg, backURL, "/")
}

// RenderServerError shows a generic failure page. The message should stay
// generic; diagnostic detail belongs in the log, not on screen.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusInternalServerError)
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	render(w, r, "Something went wrong", msg, backURL, "/")
}

func render(w http.ResponseWriter, r *http.Request, title, msg, backURL, backDefault string) {
	role, name, _, signedIn := authz.UserCtx(r)
	if backURL == "" {
		backURL = backDefault
	}

	data := pageData{
		Title:      title,
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}

	templates.Render(w, r, "error_page", data)
}
