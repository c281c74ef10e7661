package auth

import (
	"context"
	"net/http"
	"time"

	"farmaplus.org/admin/internal/admin/api"
)

// StaticService is a Service with fixed credentials for development and tests.
type StaticService struct {
	Username string
	Password string
	Admin    Admin
	// IssuedToken is the token handed out on a successful login.
	IssuedToken string
}

// NewStaticService returns a StaticService with helpful defaults.
func NewStaticService() *StaticService {
	return &StaticService{
		Username:    "admin",
		Password:    "admin123",
		IssuedToken: "static-dev-token",
		Admin: Admin{
			ID:        1,
			Username:  "admin",
			Email:     "admin@farmaplus.example",
			Name:      "Administrador",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Login accepts only the configured credential pair.
func (s *StaticService) Login(ctx context.Context, username, password string) (*Credentials, error) {
	if username != s.Username || password != s.Password {
		return nil, &api.Error{
			StatusCode: http.StatusUnauthorized,
			Message:    "Usuario o contraseña incorrectos",
		}
	}
	return &Credentials{Token: s.IssuedToken, Admin: s.Admin}, nil
}

// Profile accepts only the issued token.
func (s *StaticService) Profile(ctx context.Context, token string) (*Admin, error) {
	if token != s.IssuedToken {
		return nil, api.ErrUnauthorized
	}
	admin := s.Admin
	return &admin, nil
}
