package assignments

import (
	"testing"
	"time"

	"github.com/dalemusser/coursedesk/internal/domain/models"
)

func TestFormatCreatedAt_ZeroTimeShowsNothing(t *testing.T) {
	a := models.EnrichedAssignment{}
	if got := formatCreatedAt(a); got != "" {
		t.Errorf("zero created_at: got %q, want empty string", got)
	}
}

func TestFormatCreatedAt_FormatsDisplayDate(t *testing.T) {
	a := models.EnrichedAssignment{}
	a.CreatedAt = time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)
	if got := formatCreatedAt(a); got != "Mar 9, 2026" {
		t.Errorf("created_at: got %q, want %q", got, "Mar 9, 2026")
	}
}

func TestFormatDueDate_AbsentShowsNothing(t *testing.T) {
	a := models.EnrichedAssignment{}
	if got := formatDueDate(a); got != "" {
		t.Errorf("absent due date: got %q, want empty string", got)
	}
}
