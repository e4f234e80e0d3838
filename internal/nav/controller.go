// Package nav implements the roving-focus and deletion protocol of the
// multiple-selection widget: it interprets keyboard, pointer and function
// events against the selection store and moves navigation authority between
// the chips and the dropdown control.
package nav

import (
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/store"
)

// Controller applies the transition table. Initial state is ActiveDropdown;
// the controller is long-lived and has no terminal state.
type Controller struct {
	store   *store.Store
	bus     eventbus.EventBus
	initial []domain.Item
}

// New creates a new navigation controller over the given store. The initial
// item list is retained for Reset.
func New(s *store.Store, bus eventbus.EventBus, initial []domain.Item) *Controller {
	return &Controller{
		store:   s,
		bus:     bus,
		initial: append([]domain.Item(nil), initial...),
	}
}

// Handle processes one input event synchronously. Events whose guards fail
// are dropped without effect; handled events end with a StateChangedEvent
// carrying the causing event's type.
func (c *Controller) Handle(ev domain.InputEvent) {
	var changed bool
	var item domain.Item

	switch e := ev.(type) {
	case domain.DropdownNavPreviousEvent:
		if e.PreventKeyAction || c.store.Len() == 0 {
			return
		}
		c.store.SetActive(domain.ActiveIndex(c.store.Len() - 1))
		changed = true

	case domain.DropdownBackspaceEvent:
		changed, item = c.dropdownRemoveLast(e.CaretAtStart, e.PreventKeyAction)
		if !changed {
			return
		}

	case domain.DropdownDeleteEvent:
		changed, item = c.dropdownRemoveLast(e.CaretAtStart, e.PreventKeyAction)
		if !changed {
			return
		}

	case domain.ChipNavPreviousEvent:
		// A stale bundle can outlive its chip across a re-render; drop
		// events whose index no longer exists.
		if e.Index < 0 || e.Index >= c.store.Len() {
			return
		}
		// Clamps at chip 0 rather than wrapping.
		if e.Index > 0 {
			c.store.SetActive(domain.ActiveIndex(e.Index - 1))
		} else {
			c.store.SetActive(0)
		}
		changed = true

	case domain.ChipNavNextEvent:
		if e.Index < 0 || e.Index >= c.store.Len() {
			return
		}
		if e.Index < c.store.Len()-1 {
			c.store.SetActive(domain.ActiveIndex(e.Index + 1))
		} else {
			c.store.SetActive(domain.ActiveDropdown)
		}
		changed = true

	case domain.ChipBackspaceEvent:
		changed, item = c.removeChipKeyboard(e.Index)
		if !changed {
			return
		}

	case domain.ChipDeleteEvent:
		changed, item = c.removeChipKeyboard(e.Index)
		if !changed {
			return
		}

	case domain.ChipEscapeEvent:
		c.store.SetActive(domain.ActiveDropdown)
		changed = true

	case domain.ChipClickEvent:
		if e.Index < 0 || e.Index >= c.store.Len() {
			return
		}
		c.store.SetActive(domain.ActiveIndex(e.Index))
		changed = true

	case domain.ChipRemoveClickEvent:
		// Explicit pointer interaction returns focus to the dropdown,
		// unlike keyboard deletion which stays local.
		removed, err := c.store.RemoveAt(e.Index)
		if err != nil {
			return
		}
		item = removed
		c.store.SetActive(domain.ActiveDropdown)
		changed = true

	case domain.AddItemEvent:
		c.store.Add(e.Item)
		c.store.SetActive(domain.ActiveDropdown)
		item = e.Item
		changed = true

	case domain.RemoveItemEvent:
		prev := c.store.Active()
		idx, ok := c.store.Remove(e.Item)
		if !ok {
			return
		}
		item = e.Item
		c.settleAfterRemoval(idx, prev)
		changed = true

	case domain.RemoveItemAtEvent:
		prev := c.store.Active()
		removed, err := c.store.RemoveAt(e.Index)
		if err != nil {
			return
		}
		item = removed
		c.settleAfterRemoval(e.Index, prev)
		changed = true

	case domain.SetItemsEvent:
		c.store.SetItems(e.Items)
		if c.store.Active() == domain.ActiveNone {
			c.store.SetActive(domain.ActiveDropdown)
		}
		changed = true

	case domain.SetActiveIndexEvent:
		if e.Index != domain.ActiveDropdown && (!e.Index.IsChip() || int(e.Index) >= c.store.Len()) {
			return
		}
		c.store.SetActive(e.Index)
		changed = true

	case domain.ResetEvent:
		// Reset is an ordinary mutation: controlled stores propose the
		// initial collection instead of committing it themselves.
		c.store.Replace(c.initial, domain.EventFuncReset)
		c.store.SetActive(domain.ActiveDropdown)
		changed = true
	}

	if changed {
		c.bus.Publish(domain.StateChangedEvent{
			Cause:        ev.Type(),
			SelectedItem: item,
			ActiveIndex:  c.store.Active(),
			Items:        c.store.Snapshot(),
		})
	}
}

func (c *Controller) dropdownRemoveLast(caretAtStart, preventKeyAction bool) (bool, domain.Item) {
	if preventKeyAction || !caretAtStart || c.store.Len() == 0 {
		return false, nil
	}
	item, err := c.store.RemoveAt(c.store.Len() - 1)
	if err != nil {
		return false, nil
	}
	c.store.SetActive(domain.ActiveDropdown)
	return true, item
}

func (c *Controller) removeChipKeyboard(index int) (bool, domain.Item) {
	prev := c.store.Active()
	item, err := c.store.RemoveAt(index)
	if err != nil {
		return false, nil
	}
	c.settleAfterRemoval(index, prev)
	return true, item
}

// settleAfterRemoval applies the removal policy: the chip sliding into the
// removed slot becomes active, otherwise the last chip, otherwise the
// dropdown when the list is empty. This keeps keyboard focus visually stable
// as chips shift left. prev is the active index before the removal.
func (c *Controller) settleAfterRemoval(removed int, prev domain.ActiveIndex) {
	n := c.store.Len()
	if n == 0 {
		c.store.SetActive(domain.ActiveDropdown)
		return
	}
	if prev == domain.ActiveDropdown {
		return
	}
	target := removed
	if prev.IsChip() {
		switch {
		case int(prev) < removed:
			// Removal happened past the active chip; it keeps its slot.
			target = int(prev)
		case int(prev) > removed:
			// Chips after the removal point slid one to the left.
			target = int(prev) - 1
		}
	}
	if target > n-1 {
		target = n - 1
	}
	if target < 0 {
		target = 0
	}
	c.store.SetActive(domain.ActiveIndex(target))
}
