package auth

import (
	"context"
	"strings"

	"farmaplus.org/admin/internal/admin/api"
)

// State is the authentication lifecycle position of a Gate.
type State string

const (
	// StateAnonymous means no usable token is held.
	StateAnonymous State = "anonymous"
	// StateAuthenticating means a login or silent profile fetch is in flight.
	StateAuthenticating State = "authenticating"
	// StateAuthenticated means a token and admin identity are held.
	StateAuthenticated State = "authenticated"
	// StateRejected means the last login attempt was refused.
	StateRejected State = "rejected"
)

// TokenStore abstracts where the bearer token between visits lives
// (an in-memory cell, or the visitor's session cookie in the HTTP layer).
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryStore is a TokenStore holding the token in memory.
type MemoryStore struct {
	token string
}

// Token returns the stored token.
func (m *MemoryStore) Token() string { return m.token }

// SetToken replaces the stored token.
func (m *MemoryStore) SetToken(token string) { m.token = token }

// Clear discards the stored token.
func (m *MemoryStore) Clear() { m.token = "" }

// Gate owns the authentication state for one visitor: current state, admin
// identity and rejection message. It is an explicitly owned object passed to
// whoever needs it, not ambient global state. Gate is not safe for concurrent
// use; each request builds its own around the visitor's token store.
type Gate struct {
	svc     Service
	store   TokenStore
	state   State
	admin   *Admin
	message string
}

// NewGate builds a Gate in the anonymous state.
func NewGate(svc Service, store TokenStore) *Gate {
	if store == nil {
		store = &MemoryStore{}
	}
	return &Gate{svc: svc, store: store, state: StateAnonymous}
}

// Init attempts the silent login: when a stored token exists the gate moves
// through authenticating to authenticated on a successful profile fetch. Any
// failure (including an expired or invalid token) discards the stored token
// and lands in anonymous. Without a stored token no network call is made.
func (g *Gate) Init(ctx context.Context) {
	token := strings.TrimSpace(g.store.Token())
	if token == "" {
		g.state = StateAnonymous
		return
	}
	if g.svc == nil {
		g.store.Clear()
		g.state = StateAnonymous
		return
	}

	g.state = StateAuthenticating
	admin, err := g.svc.Profile(ctx, token)
	if err != nil || admin == nil {
		g.store.Clear()
		g.admin = nil
		g.state = StateAnonymous
		return
	}
	g.admin = admin
	g.state = StateAuthenticated
}

// Login exchanges credentials for a token. On success the token is stored and
// the gate is authenticated; on failure the gate is rejected and Message
// carries the server-provided error (or a generic fallback).
func (g *Gate) Login(ctx context.Context, username, password string) error {
	if g.svc == nil {
		g.state = StateRejected
		g.message = api.FallbackMessage
		return ErrNotConfigured
	}

	g.state = StateAuthenticating
	g.message = ""

	creds, err := g.svc.Login(ctx, username, password)
	if err != nil || creds == nil || strings.TrimSpace(creds.Token) == "" {
		g.state = StateRejected
		g.admin = nil
		g.message = api.Message(err)
		if err == nil {
			err = ErrNotConfigured
		}
		return err
	}

	g.store.SetToken(creds.Token)
	admin := creds.Admin
	g.admin = &admin
	g.state = StateAuthenticated
	return nil
}

// Logout discards the token and identity from any state. It cannot fail.
func (g *Gate) Logout() {
	g.store.Clear()
	g.admin = nil
	g.message = ""
	g.state = StateAnonymous
}

// State returns the current lifecycle state.
func (g *Gate) State() State { return g.state }

// Authenticated reports whether protected views may be shown.
func (g *Gate) Authenticated() bool { return g.state == StateAuthenticated }

// Admin returns the current identity, or nil outside the authenticated state.
func (g *Gate) Admin() *Admin { return g.admin }

// Token returns the stored token, or empty outside the authenticated state.
func (g *Gate) Token() string {
	if g.state != StateAuthenticated {
		return ""
	}
	return g.store.Token()
}

// Message returns the user-visible rejection message from the last failed login.
func (g *Gate) Message() string { return g.message }
