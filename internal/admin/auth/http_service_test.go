package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"farmaplus.org/admin/internal/admin/api"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *HTTPService {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := api.NewClient(ts.URL+"/api", ts.Client())
	require.NoError(t, err)
	return NewHTTPService(client)
}

func TestHTTPServiceLoginPostsCredentials(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "admin", payload["username"])
		require.Equal(t, "admin123", payload["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"token": "t-1", "admin": {"id": 1, "username": "admin", "name": "Administrador"}}}`))
	})

	creds, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "t-1", creds.Token)
	require.Equal(t, int64(1), creds.Admin.ID)
	require.Equal(t, "Administrador", creds.Admin.Name)
}

func TestHTTPServiceLoginSurfacesRejectionMessage(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "message": "Usuario o contraseña incorrectos"}`))
	})

	_, err := svc.Login(context.Background(), "admin", "bad")
	require.Error(t, err)
	require.Equal(t, "Usuario o contraseña incorrectos", api.Message(err))
}

func TestHTTPServiceProfileSendsToken(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/profile", r.URL.Path)
		require.Equal(t, "Bearer t-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": 1, "username": "admin"}}`))
	})

	admin, err := svc.Profile(context.Background(), "t-1")
	require.NoError(t, err)
	require.Equal(t, "admin", admin.Username)
}

func TestHTTPServiceProfileMapsUnauthorized(t *testing.T) {
	t.Parallel()

	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := svc.Profile(context.Background(), "stale")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestStaticServiceRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewStaticService()

	creds, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, creds.Token)

	admin, err := svc.Profile(context.Background(), creds.Token)
	require.NoError(t, err)
	require.Equal(t, "Administrador", admin.Name)

	_, err = svc.Login(context.Background(), "admin", "wrong")
	require.Equal(t, "Usuario o contraseña incorrectos", api.Message(err))

	_, err = svc.Profile(context.Background(), "other")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}
