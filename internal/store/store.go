// Package store owns the ordered selected-item collection and the active
// navigation index for one widget instance.
package store

import (
	"errors"
	"fmt"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

// ErrIndexOutOfRange reports a positional removal outside [0, len-1]. It
// indicates a caller bug and is never silently clamped.
var ErrIndexOutOfRange = errors.New("index out of range")

// EqualFunc compares two selected items. The default is Go ==, which matches
// reference/value identity; callers with uncomparable or value-equal items
// supply their own.
type EqualFunc func(a, b domain.Item) bool

// ChangeFunc observes every proposed item-collection change before or after
// commit, depending on ownership mode.
type ChangeFunc func(items []domain.Item, cause domain.EventType)

// Store handles the selection state for a single widget instance. It is
// mutated only by the navigation controller and the widget's function
// surface, within the host's synchronous event dispatch.
type Store struct {
	bus        eventbus.EventBus
	equals     EqualFunc
	onChange   ChangeFunc
	controlled bool

	items      []domain.Item
	view       []domain.Item
	active     domain.ActiveIndex
	generation uint64
}

// New creates a new selection store seeded with initial items. When
// controlled is true the store never commits item mutations itself; it
// reports the proposed collection through onChange and waits for the
// external owner to echo it back via SetItems.
func New(bus eventbus.EventBus, initial []domain.Item, equals EqualFunc, onChange ChangeFunc, controlled bool) *Store {
	if equals == nil {
		equals = func(a, b domain.Item) bool { return a == b }
	}
	s := &Store{
		bus:        bus,
		equals:     equals,
		onChange:   onChange,
		controlled: controlled,
		items:      append([]domain.Item(nil), initial...),
		active:     domain.ActiveDropdown,
	}
	s.view = s.items
	return s
}

// Items returns the current ordered sequence as a read-only copy.
func (s *Store) Items() []domain.Item {
	return append([]domain.Item(nil), s.items...)
}

// Snapshot returns the collection as observers should see it after the most
// recent mutation: the committed items, or in controlled mode the collection
// last proposed to the owner. Items always reflects only commits.
func (s *Store) Snapshot() []domain.Item {
	return append([]domain.Item(nil), s.view...)
}

// Len returns the number of selected items.
func (s *Store) Len() int { return len(s.items) }

// At returns the item at index i, if present.
func (s *Store) At(i int) (domain.Item, bool) {
	if i < 0 || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// IndexOf returns the position of the first occurrence of item, or -1.
func (s *Store) IndexOf(item domain.Item) int {
	for i, it := range s.items {
		if s.equals(it, item) {
			return i
		}
	}
	return -1
}

// Active returns the current active index.
func (s *Store) Active() domain.ActiveIndex { return s.active }

// Generation increments on every committed change. Prop getters use it to
// decide whether cached bundles are still valid.
func (s *Store) Generation() uint64 { return s.generation }

// Add appends item to the end of the collection. No de-duplication; always
// succeeds.
func (s *Store) Add(item domain.Item) {
	next := append(s.Items(), item)
	s.commitItems(next, domain.EventFuncAddItem)
	s.bus.Publish(domain.ItemAddedEvent{Item: item, Items: next})
}

// Remove removes the first occurrence equal to item. Removing an absent item
// is a no-op, not an error: concurrent external mutation of the candidate
// list is expected and benign.
func (s *Store) Remove(item domain.Item) (int, bool) {
	idx := s.IndexOf(item)
	if idx == -1 {
		return -1, false
	}
	s.removeAt(idx)
	return idx, true
}

// RemoveAt removes the item at index i. An out-of-range index fails loudly.
func (s *Store) RemoveAt(i int) (domain.Item, error) {
	if i < 0 || i >= len(s.items) {
		return nil, fmt.Errorf("remove chip at %d of %d: %w", i, len(s.items), ErrIndexOutOfRange)
	}
	item := s.items[i]
	s.removeAt(i)
	return item, nil
}

func (s *Store) removeAt(i int) {
	item := s.items[i]
	next := make([]domain.Item, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	s.commitItems(next, domain.EventFuncRemoveItem)
	s.bus.Publish(domain.ItemRemovedEvent{Item: item, Index: i, Items: next})
}

// SetItems replaces the whole collection. This is also the echo path for
// controlled mode, so it always commits. The active index moves only when
// the new length invalidates it.
func (s *Store) SetItems(items []domain.Item) {
	s.items = append([]domain.Item(nil), items...)
	s.view = s.items
	s.generation++
	s.clampActive()
	if !s.controlled && s.onChange != nil {
		s.onChange(s.Items(), domain.EventFuncSetItems)
	}
	s.bus.Publish(domain.ItemsSetEvent{Items: s.Items()})
}

// Replace proposes a wholesale replacement through the same ownership rules
// as Add and Remove: uncontrolled stores commit, controlled stores only
// report the collection to the owner. SetItems remains the committing echo
// path.
func (s *Store) Replace(items []domain.Item, cause domain.EventType) {
	next := append([]domain.Item(nil), items...)
	s.commitItems(next, cause)
	s.bus.Publish(domain.ItemsSetEvent{Items: next})
}

// SetActive moves navigation authority. Equal targets are dropped so the
// focus effector sees at most one change per logical transition.
func (s *Store) SetActive(a domain.ActiveIndex) {
	if a == s.active {
		return
	}
	old := s.active
	s.active = a
	s.generation++
	s.bus.Publish(domain.ActiveChangedEvent{Old: old, New: a})
}

func (s *Store) commitItems(next []domain.Item, cause domain.EventType) {
	s.view = next
	if s.controlled {
		// External ownership: report intent, let the owner echo back.
		if s.onChange != nil {
			s.onChange(next, cause)
		}
		return
	}
	s.items = next
	s.generation++
	s.clampActive()
	if s.onChange != nil {
		s.onChange(s.Items(), cause)
	}
}

// clampActive restores the active-index invariant after a mutation: a
// numeric index must stay within [0, len-1], and an emptied list leaves no
// chip to target. The navigation controller immediately replaces ActiveNone
// with its own policy target, so ActiveNone is only ever transient.
func (s *Store) clampActive() {
	if !s.active.IsChip() {
		return
	}
	switch {
	case len(s.items) == 0:
		s.SetActive(domain.ActiveNone)
	case int(s.active) >= len(s.items):
		s.SetActive(domain.ActiveIndex(len(s.items) - 1))
	}
}
