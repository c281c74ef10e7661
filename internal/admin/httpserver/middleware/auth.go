package middleware

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"farmaplus.org/admin/internal/admin/auth"
	appsession "farmaplus.org/admin/internal/admin/session"
)

type authContextKey string

const (
	adminContextKey authContextKey = "auth.admin"
	tokenContextKey authContextKey = "auth.token"
)

const (
	// ReasonMissingToken indicates a protected-view hit without credentials.
	ReasonMissingToken = "missing_token"
	// ReasonTokenExpired indicates the stored token no longer resolves a profile.
	ReasonTokenExpired = "expired"
)

// sessionTokenStore adapts the request session to the gate's TokenStore.
type sessionTokenStore struct {
	sess *appsession.Session
}

func (s sessionTokenStore) Token() string         { return s.sess.Token() }
func (s sessionTokenStore) SetToken(token string) { s.sess.SetToken(token) }
func (s sessionTokenStore) Clear()                { s.sess.ClearAuth() }

// GateForRequest builds an auth gate around the current request's session so
// that tokens issued or discarded by the gate land in the visitor's cookie.
func GateForRequest(ctx context.Context, svc auth.Service) *auth.Gate {
	if sess, ok := SessionFromContext(ctx); ok {
		return auth.NewGate(svc, sessionTokenStore{sess: sess})
	}
	return auth.NewGate(svc, nil)
}

// Auth guards protected views. It runs the gate's silent login from the
// session token; anonymous visitors are redirected to the login page, and a
// token the backend no longer accepts is discarded on the way out.
func Auth(svc auth.Service, loginPath string, logger *zap.Logger) func(http.Handler) http.Handler {
	if loginPath == "" {
		loginPath = "/login"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gate := GateForRequest(r.Context(), svc)

			storedToken := false
			if sess, ok := SessionFromContext(r.Context()); ok && sess.Token() != "" {
				storedToken = true
			}

			gate.Init(r.Context())
			if !gate.Authenticated() {
				reason := ReasonMissingToken
				if storedToken {
					reason = ReasonTokenExpired
				}
				logger.Info("protected view denied", zap.String("reason", reason), zap.String("path", r.URL.Path))
				redirectToLogin(w, r, loginPath, reason)
				return
			}

			if sess, ok := SessionFromContext(r.Context()); ok {
				admin := gate.Admin()
				sess.SetUser(&appsession.User{
					ID:       admin.ID,
					Username: admin.Username,
					Email:    admin.Email,
					Name:     admin.Name,
				})
			}

			ctx := context.WithValue(r.Context(), adminContextKey, gate.Admin())
			ctx = context.WithValue(ctx, tokenContextKey, gate.Token())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext retrieves the authenticated admin if present.
func AdminFromContext(ctx context.Context) (*auth.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey).(*auth.Admin)
	return admin, ok && admin != nil
}

// TokenFromContext retrieves the bearer token attached by Auth.
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey).(string); ok {
		return token
	}
	return ""
}

// RedirectToLogin sends the visitor to the login page, tagging the reason so
// the form can explain what happened.
func RedirectToLogin(w http.ResponseWriter, r *http.Request, loginPath, reason string) {
	redirectToLogin(w, r, loginPath, reason)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, loginPath, reason string) {
	target := loginPath
	if u, err := url.Parse(loginPath); err == nil {
		q := u.Query()
		if reason != "" {
			q.Set("reason", reason)
		}
		if r.URL != nil && r.Method == http.MethodGet && r.URL.Path != "" {
			q.Set("next", r.URL.RequestURI())
		}
		u.RawQuery = q.Encode()
		target = u.String()
	}

	if IsHTMXRequest(r.Context()) {
		w.Header().Set("HX-Redirect", target)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
