package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testHashKey = []byte("0123456789abcdef0123456789abcdef")

func newTestManager(t *testing.T, mutate func(*Config)) *Manager {
	t.Helper()

	cfg := Config{HashKey: testHashKey}
	if mutate != nil {
		mutate(&cfg)
	}
	manager, err := NewManager(cfg)
	require.NoError(t, err)
	return manager
}

func roundTrip(t *testing.T, m *Manager, sess *Session) *Session {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, sess))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	loaded, err := m.Load(req)
	require.NoError(t, err)
	return loaded
}

func TestManagerRequiresHashKey(t *testing.T) {
	t.Parallel()

	_, err := NewManager(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestManagerRoundTripsAuthAndPicks(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, nil)

	sess := m.New()
	sess.SetToken("bearer-1")
	sess.SetUser(&User{ID: 1, Username: "admin", Name: "Administrador"})
	sess.ToggleFavorite("3")
	sess.ToggleCart("5")
	sess.ToggleCart("7")

	loaded := roundTrip(t, m, sess)

	require.Equal(t, "bearer-1", loaded.Token())
	require.Equal(t, "admin", loaded.User().Username)
	require.True(t, loaded.Favorites().Has("3"))
	require.True(t, loaded.Cart().Has("5"))
	require.True(t, loaded.Cart().Has("7"))
	require.False(t, loaded.Favorites().Has("5"))
}

func TestManagerLoadWithoutCookieCreatesFreshSession(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := m.Load(req)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID())
	require.Empty(t, sess.Token())
}

func TestManagerRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, nil)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, m.New()))
	cookie := rec.Result().Cookies()[0]
	cookie.Value = "tampered" + cookie.Value

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	sess, err := m.Load(req)
	require.NoError(t, err, "tampered cookies fall back to a fresh session")
	require.Empty(t, sess.Token())
}

func TestManagerExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, func(cfg *Config) {
		cfg.IdleTimeout = 30 * time.Minute
		cfg.Now = func() time.Time { return current }
	})

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, m.New()))
	cookie := rec.Result().Cookies()[0]

	current = current.Add(31 * time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, err := m.Load(req)
	require.ErrorIs(t, err, ErrExpired)
}

func TestClearAuthKeepsPicks(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, nil)

	sess := m.New()
	sess.SetToken("t")
	sess.SetUser(&User{ID: 1, Username: "admin"})
	sess.ToggleFavorite("9")

	sess.ClearAuth()

	require.Empty(t, sess.Token())
	require.Nil(t, sess.User())
	require.True(t, sess.Favorites().Has("9"))
}

func TestDestroyedSessionClearsCookie(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, nil)

	sess := m.New()
	sess.Destroy()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, -1, cookies[0].MaxAge)
	require.Empty(t, cookies[0].Value)
}

func TestEnsureCSRFTokenIsStable(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, nil)
	sess := m.New()

	first, err := sess.EnsureCSRFToken()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := sess.EnsureCSRFToken()
	require.NoError(t, err)
	require.Equal(t, first, second)
}
