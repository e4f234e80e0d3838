// Package focus turns active-index transitions into deferred, at-most-once
// focus side effects on host-owned nodes.
package focus

import (
	"sync"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// Focusable is a host element that can receive focus.
type Focusable interface {
	Focus()
}

// Registry maps a navigation target to the host node that currently renders
// it. The registry is owned by the host rendering layer; nodes may appear and
// disappear across renders, and a nil node is tolerated.
type Registry interface {
	Node(target domain.ActiveIndex) Focusable
}

// Scheduler defers a function past the current event dispatch, to the host's
// next render opportunity. The returned cancel stops the call if it has not
// run yet.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

// Effector subscribes to active-index changes and issues exactly one focus
// call per transition. It reads only the active index, never item values.
type Effector struct {
	registry  Registry
	scheduler Scheduler

	mu      sync.Mutex
	pending domain.ActiveIndex
	armed   bool
	cancel  func()
	done    bool

	unsubscribe func()
}

// NewEffector creates a focus effector. It subscribes to the bus
// automatically, like the other services.
func NewEffector(bus eventbus.EventBus, registry Registry, scheduler Scheduler) *Effector {
	e := &Effector{
		registry:  registry,
		scheduler: scheduler,
	}
	e.unsubscribe = bus.Subscribe(domain.EventActiveChanged, func(ev eventbus.DomainEvent) {
		if ac, ok := ev.(domain.ActiveChangedEvent); ok {
			e.Request(ac.New)
		}
	})
	return e
}

// Request records target as the one-shot pending focus target and schedules
// its application. A transition arriving before the previous one ran
// replaces it, so re-renders never cause focus flapping.
func (e *Effector) Request(target domain.ActiveIndex) {
	e.mu.Lock()
	if e.done {
		e.mu.Unlock()
		return
	}
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if target == domain.ActiveNone {
		// Nothing to focus; the controller will follow up with a real
		// target in the same dispatch.
		e.armed = false
		e.mu.Unlock()
		return
	}
	e.pending = target
	e.armed = true
	e.mu.Unlock()

	cancel := e.scheduler.Schedule(e.apply)
	e.mu.Lock()
	if e.armed && !e.done {
		e.cancel = cancel
	}
	e.mu.Unlock()
}

// apply consumes the pending target exactly once. A target whose node no
// longer exists (race with an unrelated re-render) is skipped silently.
func (e *Effector) apply() {
	e.mu.Lock()
	if e.done || !e.armed {
		e.mu.Unlock()
		return
	}
	target := e.pending
	e.armed = false
	e.cancel = nil
	e.mu.Unlock()

	if e.registry == nil {
		return
	}
	if node := e.registry.Node(target); node != nil {
		node.Focus()
	}
}

// Teardown cancels any scheduled focus call and detaches from the bus. A
// widget torn down before a scheduled effect runs must not focus anything.
func (e *Effector) Teardown() {
	e.mu.Lock()
	e.done = true
	e.armed = false
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if e.unsubscribe != nil {
		e.unsubscribe()
	}
}
