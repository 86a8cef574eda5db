package domain

import (
	"errors"
	"time"
)

// Role is an enumerated capability label attached to a user.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleDistributor Role = "distributor"
	RoleAdmin       Role = "admin"
)

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleDistributor, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

var ErrInvalidRole = errors.New("invalid role")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrDuplicateUsername = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountDisabled = errors.New("account disabled")
var ErrMissingCredentials = errors.New("missing credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
type User struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	FullName           string    `json:"full_name,omitempty"`
	IsActive           bool      `json:"is_active"`
	IsPremium          bool      `json:"is_premium"`
	SubscriptionActive bool      `json:"subscription_active"`
	PrimaryRole        Role      `json:"primary_role"`
	Roles              []Role    `json:"roles"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewUser builds a User with the primary role always present in the roles set.
// Callers supply an already-hashed password; plaintext never reaches here.
func NewUser(username, email, passwordHash, fullName string, role Role, now time.Time) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		IsActive:     true,
		PrimaryRole:  role,
		Roles:        []Role{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// HasAnyRole reports whether the user holds at least one of the required roles.
func (u *User) HasAnyRole(required ...Role) bool {
	for _, want := range required {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
