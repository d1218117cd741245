// Package session tracks authenticated actors and the per-session state the
// canteen keeps for them: the cart being assembled and the reconciled view
// of the menu and orders. Sessions are in-memory and identified by opaque
// tokens; carts are never persisted and die with their session.
package session

import (
	"context"
	"log/slog"
	"sync"

	"canteen/internal/core/application/reconciler"
	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"

	"github.com/google/uuid"
)

// watchedTables are the tables whose changes invalidate a session's view.
var watchedTables = []string{"orders", "menu_items"}

// Session is one actor's live state: identity, cart, and reconciled view.
type Session struct {
	token      string
	profile    account.Profile
	cart       *cart.Cart
	reconciler *reconciler.Reconciler
	cancel     context.CancelFunc
}

// Token returns the opaque session token.
func (s *Session) Token() string {
	return s.token
}

// Profile returns the session's authenticated profile.
func (s *Session) Profile() account.Profile {
	return s.profile
}

// Cart returns the session's cart. The cart is owned by exactly one session
// and is never shared.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

// Reconciler returns the session's view reconciler.
func (s *Session) Reconciler() *reconciler.Reconciler {
	return s.reconciler
}

// Manager owns the session table. Login binds an identity to a fresh
// session with an empty cart and a running reconciler; Logout tears all of
// that down again.
type Manager struct {
	profiles ports.ProfileRepository
	stream   ports.ChangeStream
	loader   reconciler.Loader
	log      *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager.
func NewManager(
	profiles ports.ProfileRepository,
	stream ports.ChangeStream,
	loader reconciler.Loader,
	log *slog.Logger,
) *Manager {
	return &Manager{
		profiles: profiles,
		stream:   stream,
		loader:   loader,
		log:      log.With("component", "session_manager"),
		sessions: make(map[string]*Session),
	}
}

// Login establishes a session for the given authenticated identity.
// The profile is created lazily on first login; an existing profile's stored
// role wins over the role claimed here. The new session starts with an empty
// cart and a reconciler subscribed to change events.
func (m *Manager) Login(
	ctx context.Context,
	id kernel.UUID,
	email string,
	role account.Role,
) (*Session, error) {
	profile, err := m.profiles.GetOrCreate(ctx, id, email, role)
	if err != nil {
		return nil, err
	}

	// The reconciler must outlive the login request.
	sessionCtx, cancel := context.WithCancel(context.Background())

	sub, err := m.stream.Subscribe(sessionCtx, watchedTables...)
	if err != nil {
		cancel()
		return nil, err
	}

	rec := reconciler.NewReconciler(profile, m.loader, m.log)
	go rec.Run(sessionCtx, sub)

	session := &Session{
		token:      uuid.NewString(),
		profile:    profile,
		cart:       cart.NewCart(),
		reconciler: rec,
		cancel:     cancel,
	}

	m.mu.Lock()
	m.sessions[session.token] = session
	m.mu.Unlock()

	m.log.InfoContext(ctx, "session opened",
		"profile_id", profile.ID().String(), "role", profile.Role().String())
	return session, nil
}

// Logout tears down the session for the given token: the reconciler stops,
// the subscription closes, and the cart is discarded. Unknown tokens are
// ignored.
func (m *Manager) Logout(ctx context.Context, token string) {
	m.mu.Lock()
	session, ok := m.sessions[token]
	if ok {
		delete(m.sessions, token)
	}
	m.mu.Unlock()

	if !ok {
		return
	}

	session.cancel()
	m.log.InfoContext(ctx, "session closed", "profile_id", session.profile.ID().String())
}

// Get returns the session for the given token, if any.
func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[token]
	return session, ok
}

// ReloadAll forces a view reload for every live session. Used by the
// fallback poll so sessions converge even if change events were missed.
func (m *Manager) ReloadAll(ctx context.Context) {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	for _, s := range sessions {
		if err := s.reconciler.Reload(ctx); err != nil {
			m.log.WarnContext(ctx, "fallback reload failed",
				"profile_id", s.profile.ID().String(), "error", err)
		}
	}
}
