// Package api defines the request and response shapes shared by the HTTP
// transport layer.
package api

import "time"

// ErrorResponse is the uniform error body returned by every endpoint.
// It carries a single user-visible message; internal detail stays in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic success body for endpoints with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenRequest is the request body for the POST /token endpoint.
// Both fields are required; the email must be well-formed.
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the success body for the POST /token endpoint.
type TokenResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
