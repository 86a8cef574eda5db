package ports

import "time"

// TokenIssuer mints and verifies signed bearer tokens carrying a subject claim.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
	// Verify returns the subject of a valid token. Every failure mode
	// (tampering, malformed payload, expiry) surfaces as the same opaque
	// domain.ErrInvalidToken so callers cannot build an oracle from it.
	Verify(token string) (string, error)
}
