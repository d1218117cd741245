package ports

import "context"

// ChangeEvent signals that rows in the named table changed in some way.
// Events are deliberately coarse: they carry no row data and no operation
// detail, only enough for a consumer to know its view may be stale.
type ChangeEvent struct {
	// Table is the name of the table whose contents changed.
	Table string
}

// Subscription is a live feed of change events for one consumer.
// Events may be dropped under load; consumers must treat each event as
// "reload everything you care about", never as an incremental delta.
type Subscription interface {
	// Events returns the channel change events arrive on.
	// The channel is closed when the subscription is closed.
	Events() <-chan ChangeEvent

	// Close tears down the subscription and closes the events channel.
	// Safe to call more than once.
	Close()
}

// ChangeStream produces subscriptions to table change notifications.
// Implementations decide transport and delivery guarantees; consumers get
// at-most-once coarse signals plus a synthetic event after reconnects so
// missed changes are always recovered by a full reload.
type ChangeStream interface {
	// Subscribe opens a subscription for events on the given tables.
	// The subscription is cancelled when ctx is done or Close is called.
	Subscribe(ctx context.Context, tables ...string) (Subscription, error)
}
