// internal/app/features/assignments/new.go
package assignments

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	assignmentstore "github.com/dalemusser/coursedesk/internal/app/store/assignments"
	coursestore "github.com/dalemusser/coursedesk/internal/app/store/courses"
	"github.com/dalemusser/coursedesk/internal/app/system/authz"
	"github.com/dalemusser/coursedesk/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursedesk/internal/app/system/inputval"
	"github.com/dalemusser/coursedesk/internal/app/system/timeouts"
	"github.com/dalemusser/coursedesk/internal/app/system/viewdata"
	"github.com/dalemusser/coursedesk/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dueDateInput = "2006-01-02"

// createAssignmentInput defines validation rules for creating an assignment.
type createAssignmentInput struct {
	Title    string `validate:"required,max=200" label:"Title"`
	CourseID string `validate:"required" label:"Course"`
	Points   int    `validate:"min=1,max=1000" label:"Points"`
}

// ServeNew renders the new-assignment form with the acting user's course
// scope as the course options.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderNewForm(w, r, formVM{Points: "100"}, "")
}

// HandleCreate validates and inserts a new assignment.
//
// A validation failure re-renders the form with the message and the user's
// input preserved; nothing is written. On success the response is a plain
// redirect to the list, which reloads the whole dataset rather than patching
// it locally.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/assignments")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	courseIDHex := strings.TrimSpace(r.FormValue("course_id"))
	dueDateRaw := strings.TrimSpace(r.FormValue("due_date"))
	pointsRaw := strings.TrimSpace(r.FormValue("points"))
	// Sanitize HTML content from the rich text editor
	description := htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description")))

	// Helper to re-render the form with a message and preserved input
	reRender := func(msg string) {
		vm := formVM{
			AssignmentTitle: title,
			CourseID:        courseIDHex,
			Description:     description,
			DueDate:         dueDateRaw,
			Points:          pointsRaw,
		}
		h.renderNewForm(w, r, vm, msg)
	}

	points := 0
	if pointsRaw != "" {
		p, err := strconv.Atoi(pointsRaw)
		if err != nil {
			reRender("Points must be a whole number.")
			return
		}
		points = p
	}

	// Validate required fields using struct tags
	input := createAssignmentInput{Title: title, CourseID: courseIDHex, Points: points}
	if result := inputval.Validate(input); result.HasErrors() {
		reRender(result.First())
		return
	}

	courseID, err := primitive.ObjectIDFromHex(courseIDHex)
	if err != nil {
		reRender("Course is invalid.")
		return
	}

	var dueDate *time.Time
	if dueDateRaw != "" {
		d, err := time.Parse(dueDateInput, dueDateRaw)
		if err != nil {
			reRender("Due date must be a valid date.")
			return
		}
		dueDate = &d
	}

	role, _, actorID, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The course must exist and be inside the acting user's scope; teacher
	// role may only attach assignments to courses they instruct.
	course, err := coursestore.New(h.DB).GetByID(ctx, courseID)
	if err != nil {
		reRender("Course not found.")
		return
	}
	if role == "teacher" && course.InstructorID != actorID {
		reRender("You can only create assignments for your own courses.")
		return
	}

	a := models.Assignment{
		Title:       title,
		Description: description,
		CourseID:    courseID,
		DueDate:     dueDate,
		Points:      points,
		CreatedBy:   actorID,
	}

	created, err := assignmentstore.New(h.DB).Create(ctx, a)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create assignment failed", err, "Unable to create assignment.", "/assignments/new")
		return
	}

	h.AuditLog.AssignmentCreated(ctx, r, actorID, created.ID, courseID, role, created.Title)

	// Full reload of the list; the fresh dataset comes from the store
	// rather than patching local state.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/assignments")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/assignments", http.StatusSeeOther)
}

// renderNewForm renders the form with the acting user's course options.
func (h *Handler) renderNewForm(w http.ResponseWriter, r *http.Request, vm formVM, errMsg string) {
	role, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := coursestore.New(h.DB)
	var (
		courses []models.Course
		err     error
	)
	if role == "teacher" {
		courses, err = store.ByInstructor(ctx, userID)
	} else {
		courses, err = store.All(ctx)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load courses for form failed", err, "Unable to load courses.", "/assignments")
		return
	}

	vm.BaseVM = viewdata.NewBaseVM(r, "New Assignment", "/assignments")
	vm.Error = errMsg
	vm.Courses = make([]courseOption, 0, len(courses))
	for _, c := range courses {
		vm.Courses = append(vm.Courses, courseOption{ID: c.ID, Title: c.Title})
	}

	templates.Render(w, r, "assignment_form", vm)
}
