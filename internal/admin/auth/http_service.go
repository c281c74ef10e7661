package auth

import (
	"context"

	"farmaplus.org/admin/internal/admin/api"
)

// HTTPService implements Service against the backend auth endpoints.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service that talks to the backend auth API.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login posts the credentials to /auth/login. A business rejection surfaces
// as *api.Error carrying the server message.
func (s *HTTPService) Login(ctx context.Context, username, password string) (*Credentials, error) {
	var creds Credentials
	payload := loginRequest{Username: username, Password: password}
	if err := s.client.Post(ctx, "/auth/login", "", payload, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Profile fetches the identity behind the token from /auth/profile.
func (s *HTTPService) Profile(ctx context.Context, token string) (*Admin, error) {
	var admin Admin
	if err := s.client.Get(ctx, "/auth/profile", token, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
