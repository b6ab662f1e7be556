package announce

import (
	// Vendor
	"go.uber.org/multierr"
)

// Adapter delivers a message into a single channel.
type Adapter interface {
	Announce(msg *Message) error
}

type AdapterFunc func(msg *Message) error

func (f AdapterFunc) Announce(msg *Message) error {
	return f(msg)
}

// Announcer delivers a message to all registered adapters
// in the registration order.
type Announcer struct {
	adapters []Adapter
}

func NewAnnouncer() *Announcer {
	return &Announcer{}
}

func (announcer *Announcer) Register(adapter Adapter) {
	announcer.adapters = append(announcer.adapters, adapter)
}

func (announcer *Announcer) Len() int {
	return len(announcer.adapters)
}

// Announce invokes every adapter, even when some of them fail.
// The returned error combines all the adapter errors.
func (announcer *Announcer) Announce(msg *Message) (err error) {
	for _, adapter := range announcer.adapters {
		err = multierr.Append(err, adapter.Announce(msg))
	}
	return err
}
