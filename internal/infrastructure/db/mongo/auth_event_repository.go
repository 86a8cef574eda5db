package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/merqado/commerce-api/internal/core/domain"
)

const collectionAuthEvents = "auth_events"

// AuthEventRepository persists the authentication audit trail. Events are
// append-only; nothing in the system updates or deletes them.
type AuthEventRepository struct {
	col *mongo.Collection
}

func NewAuthEventRepository(db *mongo.Database) *AuthEventRepository {
	return &AuthEventRepository{col: db.Collection(collectionAuthEvents)}
}

type authEventDoc struct {
	Subject   string    `bson:"subject"`
	Kind      string    `bson:"kind"`
	Timestamp time.Time `bson:"timestamp"`
	RemoteIP  string    `bson:"remote_ip,omitempty"`
}

func (r *AuthEventRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := authEventDoc{
		Subject:   event.Subject,
		Kind:      string(event.Kind),
		Timestamp: event.Timestamp,
		RemoteIP:  event.RemoteIP,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the query indexes on the audit collection.
func (r *AuthEventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "subject", Value: 1}, {Key: "timestamp", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
