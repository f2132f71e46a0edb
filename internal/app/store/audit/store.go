// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories.
const (
	CategoryAuth  = "auth"
	CategoryAdmin = "admin"
)

// Event types.
const (
	EventLoginSuccess      = "login_success"
	EventLoginFailure      = "login_failure"
	EventLogout            = "logout"
	EventAssignmentCreated = "assignment_created"
	EventAssignmentDeleted = "assignment_deleted"
)

// Event is one audit record. EventID is a generated UUID so events can be
// correlated between the database and structured logs.
type Event struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	EventID   string              `bson:"event_id"`
	Category  string              `bson:"category"`
	EventType string              `bson:"event_type"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty"`
	ActorID   *primitive.ObjectID `bson:"actor_id,omitempty"`
	IP        string              `bson:"ip,omitempty"`
	UserAgent string              `bson:"user_agent,omitempty"`
	Success   bool                `bson:"success"`

	FailureReason string            `bson:"failure_reason,omitempty"`
	Details       map[string]string `bson:"details,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
}

// Store appends audit events to the audit_events collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Log inserts one event, stamping CreatedAt.
func (s *Store) Log(ctx context.Context, event Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, event)
	return err
}

// GetRecent returns the latest events, newest first.
func (s *Store) GetRecent(ctx context.Context, limit int64) ([]Event, error) {
	return s.find(ctx, bson.M{}, limit)
}

// GetByUser returns the latest events for one user (as subject or actor),
// newest first.
func (s *Store) GetByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]Event, error) {
	filter := bson.M{"$or": []bson.M{
		{"user_id": userID},
		{"actor_id": userID},
	}}
	return s.find(ctx, filter, limit)
}

func (s *Store) find(ctx context.Context, filter bson.M, limit int64) ([]Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
