package ports

import (
	"context"

	"github.com/merqado/commerce-api/internal/core/domain"
)

// AuthEventRepository persists the authentication audit trail.
type AuthEventRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes a single authentication event end-to-end.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuthEventQueue accepts events for asynchronous processing. Enqueue must not
// block the request path beyond channel-buffer backpressure.
type AuthEventQueue interface {
	Enqueue(event domain.AuthEvent)
}

// EventPublisher pushes authentication events to an external broker for
// downstream consumers. Failures are reported, never fatal.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AuthEvent) error
}
