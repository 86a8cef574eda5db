package domain

import "time"

// AuthEventKind labels an entry in the authentication audit trail.
type AuthEventKind string

const (
	AuthEventSignup      AuthEventKind = "signup"
	AuthEventLogin       AuthEventKind = "login"
	AuthEventLoginFailed AuthEventKind = "login_failed"
)

// AuthEvent records a single authentication outcome for auditing.
type AuthEvent struct {
	Subject   string        `json:"subject"`
	Kind      AuthEventKind `json:"kind"`
	Timestamp time.Time     `json:"timestamp"`
	RemoteIP  string        `json:"remote_ip,omitempty"`
}
