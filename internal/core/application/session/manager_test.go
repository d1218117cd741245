package session_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"canteen/internal/core/application/reconciler"
	"canteen/internal/core/application/session"
	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	mu       sync.Mutex
	profiles map[string]account.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[string]account.Profile)}
}

func (f *fakeProfiles) GetOrCreate(
	_ context.Context, id kernel.UUID, email string, role account.Role,
) (account.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.profiles[id.String()]; ok {
		return existing, nil
	}
	profile, err := account.NewProfile(id, email, role)
	if err != nil {
		return account.Profile{}, err
	}
	f.profiles[id.String()] = profile
	return profile, nil
}

func (f *fakeProfiles) Get(_ context.Context, id kernel.UUID) (account.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profiles[id.String()], nil
}

type fakeStream struct {
	mu   sync.Mutex
	subs []*fakeSubscription
}

func (f *fakeStream) Subscribe(ctx context.Context, _ ...string) (ports.Subscription, error) {
	sub := &fakeSubscription{events: make(chan ports.ChangeEvent, 8)}
	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	f.mu.Lock()
	f.subs = append(f.subs, sub)
	f.mu.Unlock()
	return sub, nil
}

type fakeSubscription struct {
	events chan ports.ChangeEvent
	once   sync.Once
	closed bool
	mu     sync.Mutex
}

func (s *fakeSubscription) Events() <-chan ports.ChangeEvent { return s.events }

func (s *fakeSubscription) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		close(s.events)
	})
}

func (s *fakeSubscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type countingLoader struct {
	mu    sync.Mutex
	calls int
}

func (l *countingLoader) Load(_ context.Context, _ account.Profile) (reconciler.View, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return reconciler.View{RefreshedAt: time.Now().UTC()}, nil
}

func (l *countingLoader) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func newManager() (*session.Manager, *fakeProfiles, *fakeStream, *countingLoader) {
	profiles := newFakeProfiles()
	stream := &fakeStream{}
	loader := &countingLoader{}
	m := session.NewManager(profiles, stream, loader, slog.New(slog.DiscardHandler))
	return m, profiles, stream, loader
}

func TestManagerLogin(t *testing.T) {
	t.Run("opens a session with empty cart and running reconciler", func(t *testing.T) {
		m, _, _, loader := newManager()

		s, err := m.Login(t.Context(), kernel.NewUUID(), "customer@canteen.local", account.Customer)
		require.NoError(t, err)

		assert.NotEmpty(t, s.Token())
		assert.True(t, s.Cart().IsEmpty())
		assert.Equal(t, account.Customer, s.Profile().Role())

		// The reconciler performs its initial load shortly after login.
		require.Eventually(t, func() bool {
			return loader.callCount() >= 1
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("repeat login keeps the stored role", func(t *testing.T) {
		m, _, _, _ := newManager()
		id := kernel.NewUUID()

		first, err := m.Login(t.Context(), id, "user@canteen.local", account.Customer)
		require.NoError(t, err)
		assert.Equal(t, account.Customer, first.Profile().Role())

		// A replayed login claiming staff must not escalate.
		second, err := m.Login(t.Context(), id, "user@canteen.local", account.Staff)
		require.NoError(t, err)
		assert.Equal(t, account.Customer, second.Profile().Role())
	})

	t.Run("two sessions have independent carts", func(t *testing.T) {
		m, _, _, _ := newManager()

		a, err := m.Login(t.Context(), kernel.NewUUID(), "a@canteen.local", account.Customer)
		require.NoError(t, err)
		b, err := m.Login(t.Context(), kernel.NewUUID(), "b@canteen.local", account.Customer)
		require.NoError(t, err)

		assert.NotEqual(t, a.Token(), b.Token())
		assert.NotSame(t, a.Cart(), b.Cart())
	})
}

func TestManagerLogout(t *testing.T) {
	t.Run("removes the session and closes its subscription", func(t *testing.T) {
		m, _, stream, _ := newManager()

		s, err := m.Login(t.Context(), kernel.NewUUID(), "customer@canteen.local", account.Customer)
		require.NoError(t, err)

		m.Logout(t.Context(), s.Token())

		_, ok := m.Get(s.Token())
		assert.False(t, ok)

		require.Eventually(t, func() bool {
			return stream.subs[0].isClosed()
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("unknown token is a no-op", func(t *testing.T) {
		m, _, _, _ := newManager()
		m.Logout(t.Context(), "no-such-token")
	})
}

func TestManagerGet(t *testing.T) {
	m, _, _, _ := newManager()

	s, err := m.Login(t.Context(), kernel.NewUUID(), "customer@canteen.local", account.Customer)
	require.NoError(t, err)

	found, ok := m.Get(s.Token())
	require.True(t, ok)
	assert.Same(t, s, found)

	_, ok = m.Get("bogus")
	assert.False(t, ok)
}

func TestManagerReloadAll(t *testing.T) {
	m, _, _, loader := newManager()

	_, err := m.Login(t.Context(), kernel.NewUUID(), "a@canteen.local", account.Customer)
	require.NoError(t, err)
	_, err = m.Login(t.Context(), kernel.NewUUID(), "b@canteen.local", account.Staff)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return loader.callCount() >= 2
	}, 2*time.Second, 10*time.Millisecond)
	before := loader.callCount()

	m.ReloadAll(t.Context())

	assert.GreaterOrEqual(t, loader.callCount(), before+2)
}
