package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). Broker redeliveries
// and dispatcher restarts can replay an event; the dedup key keeps the audit
// trail free of doubles.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, subject, kind string, ts time.Time) (bool, error)
	Mark(ctx context.Context, subject, kind string, ts time.Time) error
}

type auditService struct {
	events    ports.AuthEventRepository
	publisher ports.EventPublisher
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewAuditService returns an AuditService implementation. publisher may be
// nil when no broker is configured.
func NewAuditService(
	events ports.AuthEventRepository,
	publisher ports.EventPublisher,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.AuditService {
	return &auditService{events: events, publisher: publisher, dedup: dedup, log: log}
}

// Record deduplicates, persists, and publishes a single authentication event.
func (s *auditService) Record(ctx context.Context, in domain.AuthEvent) error {
	kind := string(in.Kind)

	isDup, err := s.dedup.IsDuplicate(ctx, in.Subject, kind, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("subject", in.Subject).Msg("dedup check failed, recording anyway")
	} else if isDup {
		s.log.Debug().Str("subject", in.Subject).Str("kind", kind).Msg("duplicate auth event skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, in.Subject, kind, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("subject", in.Subject).Msg("failed to set dedup key")
	}

	if err := s.events.Insert(ctx, &in); err != nil {
		return fmt.Errorf("record auth event: %w", err)
	}

	// Broker publication is best-effort; the persisted row is the source of truth.
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, in); err != nil {
			s.log.Warn().Err(err).Str("subject", in.Subject).Msg("failed to publish auth event")
		}
	}

	s.log.Info().Str("subject", in.Subject).Str("kind", kind).Msg("auth event recorded")
	return nil
}
