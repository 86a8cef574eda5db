package handler

import "github.com/merqado/commerce-api/internal/core/domain"

type signupRequest struct {
	Username string `json:"username"  validate:"required,min=3"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name"`
	Role     string `json:"role"      validate:"required,oneof=customer distributor admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse carries the issued bearer token and the user projection.
// domain.User marshals without the password hash.
type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
