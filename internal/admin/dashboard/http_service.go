package dashboard

import (
	"context"

	"farmaplus.org/admin/internal/admin/api"
)

// HTTPService implements Service backed by the backend stats endpoint.
type HTTPService struct {
	client *api.Client
}

// NewHTTPService constructs a Service that talks to the backend dashboard API.
func NewHTTPService(client *api.Client) *HTTPService {
	return &HTTPService{client: client}
}

// Stats fetches the dashboard aggregates from /dashboard/stats.
func (s *HTTPService) Stats(ctx context.Context, token string) (*Stats, error) {
	var stats Stats
	if err := s.client.Get(ctx, "/dashboard/stats", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
