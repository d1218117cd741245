// Package reconciler keeps a session's read view of the menu and orders in
// step with the database. Change events are coarse invalidation signals: any
// event triggers a full reload of both datasets, and the freshly loaded
// result atomically replaces the previous view. There is no incremental
// patching, so a dropped or duplicated event can never corrupt the view.
package reconciler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/ports"
)

// View is one session's consistent snapshot of the menu and visible orders.
type View struct {
	Menu        []queries.GetMenuQueryResponse
	Orders      []queries.GetVisibleOrdersQueryResponse
	RefreshedAt time.Time
}

// Loader produces a complete view for a profile in one shot.
type Loader interface {
	Load(ctx context.Context, profile account.Profile) (View, error)
}

// Reconciler maintains the current view for a single session, replacing it
// wholesale on every change event. When a reload fails the previous view is
// kept, so readers always see the last state that loaded successfully.
type Reconciler struct {
	profile account.Profile
	loader  Loader
	log     *slog.Logger

	mu      sync.RWMutex
	view    View
	hasView bool
}

// NewReconciler creates a reconciler for the given profile.
func NewReconciler(profile account.Profile, loader Loader, log *slog.Logger) *Reconciler {
	return &Reconciler{
		profile: profile,
		loader:  loader,
		log:     log.With("component", "reconciler"),
	}
}

// Run performs an initial load and then reloads on every event from the
// subscription until ctx is cancelled or the subscription closes.
// Reload failures are logged and retried on the next event, never fatal.
func (r *Reconciler) Run(ctx context.Context, sub ports.Subscription) {
	if err := r.Reload(ctx); err != nil {
		r.log.WarnContext(ctx, "initial view load failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := r.Reload(ctx); err != nil {
				r.log.WarnContext(ctx, "view reload failed, keeping previous view",
					"table", event.Table, "error", err)
			}
		}
	}
}

// Reload loads a fresh view and swaps it in atomically.
// On failure the previous view is left untouched and the error returned.
func (r *Reconciler) Reload(ctx context.Context) error {
	view, err := r.loader.Load(ctx, r.profile)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.view = view
	r.hasView = true
	r.mu.Unlock()
	return nil
}

// View returns the current view and whether any load has succeeded yet.
func (r *Reconciler) View() (View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view, r.hasView
}
