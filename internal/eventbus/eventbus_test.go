package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/domain"
)

func TestPublishDeliversSynchronouslyInOrder(t *testing.T) {
	bus := New()

	var seen []string
	bus.Subscribe(domain.EventItemAdded, func(ev DomainEvent) {
		seen = append(seen, ev.(domain.ItemAddedEvent).Item.(string))
	})

	bus.Publish(domain.ItemAddedEvent{Item: "a"})
	bus.Publish(domain.ItemAddedEvent{Item: "b"})

	// No goroutines, no waiting: handlers ran before Publish returned.
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestSubscribeFiltersByType(t *testing.T) {
	bus := New()

	var added, removed int
	bus.Subscribe(domain.EventItemAdded, func(DomainEvent) { added++ })
	bus.Subscribe(domain.EventItemRemoved, func(DomainEvent) { removed++ })

	bus.Publish(domain.ItemAddedEvent{Item: "a"})

	assert.Equal(t, 1, added)
	assert.Equal(t, 0, removed)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()

	var first, second int
	unsub := bus.Subscribe(domain.EventItemAdded, func(DomainEvent) { first++ })
	bus.Subscribe(domain.EventItemAdded, func(DomainEvent) { second++ })

	bus.Publish(domain.ItemAddedEvent{Item: "a"})
	unsub()
	bus.Publish(domain.ItemAddedEvent{Item: "b"})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestHandlerMayPublishWithoutDeadlock(t *testing.T) {
	bus := New()

	var announced string
	bus.Subscribe(domain.EventItemAdded, func(DomainEvent) {
		bus.Publish(domain.AnnouncedEvent{Message: "added"})
	})
	bus.Subscribe(domain.EventAnnounced, func(ev DomainEvent) {
		announced = ev.(domain.AnnouncedEvent).Message
	})

	bus.Publish(domain.ItemAddedEvent{Item: "a"})

	require.Equal(t, "added", announced)
}

func TestHandlerMayUnsubscribeDuringDispatch(t *testing.T) {
	bus := New()

	var calls int
	var unsub func()
	unsub = bus.Subscribe(domain.EventItemAdded, func(DomainEvent) {
		calls++
		unsub()
	})

	bus.Publish(domain.ItemAddedEvent{Item: "a"})
	bus.Publish(domain.ItemAddedEvent{Item: "b"})

	assert.Equal(t, 1, calls)
}
