package auth

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured indicates the auth service dependency has not been provided.
var ErrNotConfigured = errors.New("auth service not configured")

// Admin is the back-office identity returned by the backend. The client only
// replaces it wholesale after a login or profile fetch, never field by field.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Credentials is the payload of a successful login.
type Credentials struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// Service performs credential exchange and profile retrieval against the
// backend auth endpoints.
type Service interface {
	// Login exchanges a username and password for a token and identity.
	Login(ctx context.Context, username, password string) (*Credentials, error)
	// Profile resolves the identity behind an existing token.
	Profile(ctx context.Context, token string) (*Admin, error)
}
