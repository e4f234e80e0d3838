// Package announce feeds short status strings to the host's live region on
// every selection mutation. Messages are replace-not-append: only the latest
// one matters, and it clears itself after a fixed delay.
package announce

import (
	"fmt"
	"sync"
	"time"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// DefaultClearDelay matches the cadence screen readers expect for transient
// status updates.
const DefaultClearDelay = 500 * time.Millisecond

// MessageFunc formats the live-region text for one mutation.
type MessageFunc func(item domain.Item, added bool) string

// DefaultMessage is the stock announcement text.
func DefaultMessage(item domain.Item, added bool) string {
	if added {
		return fmt.Sprintf("%v has been added", item)
	}
	return fmt.Sprintf("%v has been removed", item)
}

// Announcer holds the current live-region message for one widget instance.
type Announcer struct {
	bus    eventbus.EventBus
	format MessageFunc
	delay  time.Duration

	mu      sync.Mutex
	message string
	timer   *time.Timer
	done    bool

	unsubscribes []func()
}

// New creates an announcer and subscribes it to selection mutations.
func New(bus eventbus.EventBus, format MessageFunc, delay time.Duration) *Announcer {
	if format == nil {
		format = DefaultMessage
	}
	if delay <= 0 {
		delay = DefaultClearDelay
	}
	a := &Announcer{
		bus:    bus,
		format: format,
		delay:  delay,
	}
	a.unsubscribes = append(a.unsubscribes,
		bus.Subscribe(domain.EventItemAdded, func(ev eventbus.DomainEvent) {
			if e, ok := ev.(domain.ItemAddedEvent); ok {
				a.Announce(a.format(e.Item, true))
			}
		}),
		bus.Subscribe(domain.EventItemRemoved, func(ev eventbus.DomainEvent) {
			if e, ok := ev.(domain.ItemRemovedEvent); ok {
				a.Announce(a.format(e.Item, false))
			}
		}),
	)
	return a
}

// Announce replaces the current message and restarts the clear timer.
// Last write wins; there is no queueing and no retry.
func (a *Announcer) Announce(message string) {
	a.mu.Lock()
	if a.done {
		a.mu.Unlock()
		return
	}
	a.message = message
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.clear)
	a.mu.Unlock()

	a.bus.Publish(domain.AnnouncedEvent{Message: message})
}

// Message returns the text the host should render in its live region.
func (a *Announcer) Message() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.message
}

func (a *Announcer) clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done {
		return
	}
	a.message = ""
}

// Stop clears the timer and detaches from the bus. Announcements after Stop
// are dropped.
func (a *Announcer) Stop() {
	a.mu.Lock()
	a.done = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.message = ""
	a.mu.Unlock()

	for _, unsub := range a.unsubscribes {
		unsub()
	}
}
