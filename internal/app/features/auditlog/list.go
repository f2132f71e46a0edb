// internal/app/features/auditlog/list.go
package auditlog

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/coursedesk/internal/app/store/audit"
	userstore "github.com/dalemusser/coursedesk/internal/app/store/users"
	"github.com/dalemusser/coursedesk/internal/app/system/timeouts"
	"github.com/dalemusser/coursedesk/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const recentLimit = 200

// ServeList displays the most recent audit events, newest first. An optional
// ?user=<id> query narrows the trail to events where that user is the
// subject or the actor.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := audit.New(h.DB)

	userHex := strings.TrimSpace(r.URL.Query().Get("user"))
	var (
		events []audit.Event
		err    error
	)
	if userHex != "" {
		userID, parseErr := primitive.ObjectIDFromHex(userHex)
		if parseErr != nil {
			h.ErrLog.LogBadRequest(w, r, "bad audit user filter", parseErr, "Invalid user filter.", "/audit")
			return
		}
		events, err = store.GetByUser(ctx, userID, recentLimit)
	} else {
		events, err = store.GetRecent(ctx, recentLimit)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "audit event query failed", err, "Unable to load the audit trail.", "/assignments")
		return
	}

	// Name resolution is best-effort; rows fall back to raw ids.
	names, err := resolveUserNames(ctx, h.DB, events)
	if err != nil {
		h.Log.Warn("resolve audit user names failed", zap.Error(err))
	}

	items := make([]listItem, 0, len(events))
	for _, e := range events {
		items = append(items, newListItem(e, names))
	}

	templates.Render(w, r, "audit_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Audit Trail", "/assignments"),
		Items:      items,
		UserFilter: userHex,
		Shown:      len(items),
	})
}

// resolveUserNames batch-fetches full names for every actor and subject id
// appearing in the events.
func resolveUserNames(ctx context.Context, db *mongo.Database, events []audit.Event) (map[primitive.ObjectID]string, error) {
	seen := make(map[primitive.ObjectID]struct{})
	for _, e := range events {
		if e.ActorID != nil {
			seen[*e.ActorID] = struct{}{}
		}
		if e.UserID != nil {
			seen[*e.UserID] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	users, err := userstore.New(db).GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}

func newListItem(e audit.Event, names map[primitive.ObjectID]string) listItem {
	item := listItem{
		ID:            e.ID.Hex(),
		CreatedAt:     e.CreatedAt,
		Category:      e.Category,
		EventType:     e.EventType,
		IP:            e.IP,
		Success:       e.Success,
		FailureReason: e.FailureReason,
		Details:       e.Details,
	}
	if e.ActorID != nil {
		item.ActorName = nameOrHex(names, *e.ActorID)
	}
	if e.UserID != nil {
		item.SubjectName = nameOrHex(names, *e.UserID)
	}
	return item
}

func nameOrHex(names map[primitive.ObjectID]string, id primitive.ObjectID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id.Hex()
}
