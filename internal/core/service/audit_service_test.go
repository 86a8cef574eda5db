package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/merqado/commerce-api/internal/core/domain"
)

type stubEventRepo struct {
	inserted []domain.AuthEvent
	err      error
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.AuthEvent) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, *event)
	return nil
}

type stubDedup struct {
	seen map[string]bool
	err  error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, subject, kind string, _ time.Time) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.seen[subject+kind], nil
}

func (d *stubDedup) Mark(_ context.Context, subject, kind string, _ time.Time) error {
	d.seen[subject+kind] = true
	return nil
}

type stubPublisher struct {
	published []domain.AuthEvent
	err       error
}

func (p *stubPublisher) Publish(_ context.Context, event domain.AuthEvent) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, event)
	return nil
}

func loginEvent(subject string) domain.AuthEvent {
	return domain.AuthEvent{
		Subject:   subject,
		Kind:      domain.AuthEventLogin,
		Timestamp: time.Now().UTC(),
	}
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubEventRepo{}
	pub := &stubPublisher{}
	svc := NewAuditService(repo, pub, newStubDedup(), zerolog.Nop())

	if err := svc.Record(context.Background(), loginEvent("alice@example.com")); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one persisted event, got %d", len(repo.inserted))
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.published))
	}
}

func TestAuditService_Record_SkipsDuplicate(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewAuditService(repo, nil, newStubDedup(), zerolog.Nop())

	event := loginEvent("bob@example.com")
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("duplicate Record failed: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("duplicate must not be persisted twice, got %d rows", len(repo.inserted))
	}
}

func TestAuditService_Record_DedupFailureIsNotFatal(t *testing.T) {
	repo := &stubEventRepo{}
	dedup := newStubDedup()
	dedup.err = errors.New("redis down")
	svc := NewAuditService(repo, nil, dedup, zerolog.Nop())

	if err := svc.Record(context.Background(), loginEvent("carol@example.com")); err != nil {
		t.Fatalf("dedup failure must not block recording: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("event must still be persisted, got %d rows", len(repo.inserted))
	}
}

func TestAuditService_Record_InsertFailureIsFatal(t *testing.T) {
	repo := &stubEventRepo{err: errors.New("mongo down")}
	svc := NewAuditService(repo, nil, newStubDedup(), zerolog.Nop())

	if err := svc.Record(context.Background(), loginEvent("dave@example.com")); err == nil {
		t.Fatalf("expected error when persistence fails")
	}
}

func TestAuditService_Record_PublishFailureIsNotFatal(t *testing.T) {
	repo := &stubEventRepo{}
	pub := &stubPublisher{err: errors.New("broker down")}
	svc := NewAuditService(repo, pub, newStubDedup(), zerolog.Nop())

	if err := svc.Record(context.Background(), loginEvent("erin@example.com")); err != nil {
		t.Fatalf("publish failure must not fail the record: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("event must be persisted despite publish failure")
	}
}
