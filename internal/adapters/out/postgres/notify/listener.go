// Package notify implements the change stream port over PostgreSQL
// LISTEN/NOTIFY. Database triggers announce row changes on per-table
// channels; this package turns those announcements into coarse change
// events for reconciliation.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"canteen/internal/core/ports"

	"github.com/lib/pq"
)

const (
	channelSuffix = "_changed"

	minReconnectInterval = time.Second
	maxReconnectInterval = time.Minute

	// pingInterval keeps idle connections alive and detects dead ones.
	pingInterval = 90 * time.Second

	eventBuffer = 16
)

// PqChangeStream produces subscriptions backed by a dedicated lib/pq
// listener connection per subscription. The listener reconnects on its own;
// after every reconnect a synthetic event per table is emitted so consumers
// reload state they may have missed while disconnected.
type PqChangeStream struct {
	dsn string
	log *slog.Logger
}

// NewPqChangeStream creates a change stream connecting with the given DSN.
func NewPqChangeStream(dsn string, log *slog.Logger) *PqChangeStream {
	return &PqChangeStream{
		dsn: dsn,
		log: log,
	}
}

// Subscribe opens a listener connection on channels "<table>_changed" for
// each requested table. The subscription ends when ctx is cancelled or
// Close is called.
func (s *PqChangeStream) Subscribe(ctx context.Context, tables ...string) (ports.Subscription, error) {
	listener := pq.NewListener(s.dsn, minReconnectInterval, maxReconnectInterval, s.logListenerEvent)

	for _, table := range tables {
		if err := listener.Listen(table + channelSuffix); err != nil {
			_ = listener.Close()
			return nil, err
		}
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &pqSubscription{
		events: make(chan ports.ChangeEvent, eventBuffer),
		cancel: cancel,
	}

	go s.pump(subCtx, listener, tables, sub)

	return sub, nil
}

// pump forwards listener notifications to the subscription channel until the
// context ends. A nil notification marks a reconnect, in which case one
// synthetic event per table is emitted.
func (s *PqChangeStream) pump(ctx context.Context, listener *pq.Listener, tables []string, sub *pqSubscription) {
	defer func() {
		_ = listener.Close()
		close(sub.events)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case n := <-listener.Notify:
			if n == nil {
				s.log.Warn("change stream reconnected, emitting synthetic events")
				for _, table := range tables {
					sub.emit(ports.ChangeEvent{Table: table})
				}
				continue
			}
			sub.emit(ports.ChangeEvent{Table: trimChannelSuffix(n.Channel)})

		case <-time.After(pingInterval):
			go func() {
				if err := listener.Ping(); err != nil {
					s.log.Warn("change stream ping failed", "error", err)
				}
			}()
		}
	}
}

func (s *PqChangeStream) logListenerEvent(ev pq.ListenerEventType, err error) {
	if err != nil {
		s.log.Warn("change stream listener event", "event", int(ev), "error", err)
	}
}

func trimChannelSuffix(channel string) string {
	if len(channel) > len(channelSuffix) && channel[len(channel)-len(channelSuffix):] == channelSuffix {
		return channel[:len(channel)-len(channelSuffix)]
	}
	return channel
}

// pqSubscription is one consumer's view of the change stream.
// Events are dropped rather than blocking the pump when the consumer lags;
// a dropped event is harmless because any later event triggers the same
// full reload.
type pqSubscription struct {
	events    chan ports.ChangeEvent
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Events returns the channel change events arrive on.
func (s *pqSubscription) Events() <-chan ports.ChangeEvent {
	return s.events
}

// Close tears down the subscription. Safe to call more than once.
func (s *pqSubscription) Close() {
	s.closeOnce.Do(s.cancel)
}

func (s *pqSubscription) emit(event ports.ChangeEvent) {
	select {
	case s.events <- event:
	default:
	}
}
