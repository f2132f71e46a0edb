// internal/app/features/auditlog/types.go
package auditlog

import (
	"time"

	"github.com/dalemusser/coursedesk/internal/app/system/viewdata"
)

// listItem is one audit event row.
type listItem struct {
	ID            string
	CreatedAt     time.Time
	Category      string
	EventType     string
	ActorName     string // resolved from ActorID
	SubjectName   string // resolved from UserID
	IP            string
	Success       bool
	FailureReason string
	Details       map[string]string
}

// listData drives the audit_list template.
type listData struct {
	viewdata.BaseVM

	Items      []listItem
	UserFilter string
	Shown      int
}
