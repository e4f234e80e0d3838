// Package props synthesizes the attribute/listener bundles the host markup
// attaches to its elements. Bundles are explicit tagged structs per element
// kind rather than open-ended property bags, and repeated calls with
// unchanged inputs return the identical bundle so hosts never attach
// duplicate listeners.
package props

import (
	"fmt"
	"sync"

	"multiselect/internal/domain"
	"multiselect/internal/nav"
	"multiselect/internal/store"
)

// Key identifies the keyboard keys the widget reacts to.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyBackspace  Key = "Backspace"
	KeyDelete     Key = "Delete"
	KeyEscape     Key = "Escape"
)

// KeyEvent is one keyboard event as pre-digested by the host. CaretAtStart
// is evaluated by the host control (always true for a button-style
// dropdown); the core never re-derives it.
type KeyEvent struct {
	Key          Key
	CaretAtStart bool
}

// DropdownOptions configures the dropdown bundle. PreventKeyAction is
// typically wired to "menu is open": while true, ArrowLeft and
// Backspace/Delete on the dropdown are suppressed so they cannot collide
// with the menu's own arrow-key navigation.
type DropdownOptions struct {
	PreventKeyAction bool
}

// ChipOptions identifies one chip by item and position.
type ChipOptions struct {
	Item  domain.Item
	Index int
}

// DropdownProps is the attribute/listener bundle for the primary control.
type DropdownProps struct {
	ID        string
	Role      string
	TabIndex  int
	OnKeyDown func(KeyEvent)
}

// ChipProps is the attribute/listener bundle for one chip. TabIndex follows
// the roving tabindex pattern: 0 only on the active chip, -1 elsewhere.
type ChipProps struct {
	ID            string
	Role          string
	Label         string
	TabIndex      int
	OnKeyDown     func(KeyEvent)
	OnClick       func()
	OnRemoveClick func()
}

// Getters builds bundles from current store state. It reads state but never
// mutates it; mutation flows through the controller via the listeners.
type Getters struct {
	store      *store.Store
	controller *nav.Controller
	instanceID string

	mu         sync.Mutex
	generation uint64
	chips      map[int]ChipProps
	dropdowns  map[bool]DropdownProps
}

// New creates prop getters bound to one widget instance.
func New(s *store.Store, c *nav.Controller, instanceID string) *Getters {
	return &Getters{
		store:      s,
		controller: c,
		instanceID: instanceID,
		chips:      make(map[int]ChipProps),
		dropdowns:  make(map[bool]DropdownProps),
	}
}

// DropdownID returns the element id of the primary control.
func (g *Getters) DropdownID() string {
	return g.instanceID + "-dropdown"
}

// ChipID returns the element id of the chip at index.
func (g *Getters) ChipID(index int) string {
	return fmt.Sprintf("%s-chip-%d", g.instanceID, index)
}

// Dropdown returns the bundle for the primary control.
func (g *Getters) Dropdown(opts DropdownOptions) DropdownProps {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invalidateStale()

	if p, ok := g.dropdowns[opts.PreventKeyAction]; ok {
		return p
	}

	prevent := opts.PreventKeyAction
	p := DropdownProps{
		ID:       g.DropdownID(),
		Role:     "combobox",
		TabIndex: 0,
		OnKeyDown: func(ev KeyEvent) {
			switch ev.Key {
			case KeyArrowLeft:
				g.controller.Handle(domain.DropdownNavPreviousEvent{PreventKeyAction: prevent})
			case KeyBackspace:
				g.controller.Handle(domain.DropdownBackspaceEvent{CaretAtStart: ev.CaretAtStart, PreventKeyAction: prevent})
			case KeyDelete:
				g.controller.Handle(domain.DropdownDeleteEvent{CaretAtStart: ev.CaretAtStart, PreventKeyAction: prevent})
			}
		},
	}
	g.dropdowns[opts.PreventKeyAction] = p
	return p
}

// Chip returns the bundle for one chip.
func (g *Getters) Chip(opts ChipOptions) ChipProps {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invalidateStale()

	if p, ok := g.chips[opts.Index]; ok {
		return p
	}

	index := opts.Index
	tabIndex := -1
	if g.store.Active() == domain.ActiveIndex(index) {
		tabIndex = 0
	}
	p := ChipProps{
		ID:       g.ChipID(index),
		Role:     "option",
		Label:    fmt.Sprintf("%v", opts.Item),
		TabIndex: tabIndex,
		OnKeyDown: func(ev KeyEvent) {
			switch ev.Key {
			case KeyArrowLeft:
				g.controller.Handle(domain.ChipNavPreviousEvent{Index: index})
			case KeyArrowRight:
				g.controller.Handle(domain.ChipNavNextEvent{Index: index})
			case KeyBackspace:
				g.controller.Handle(domain.ChipBackspaceEvent{Index: index})
			case KeyDelete:
				g.controller.Handle(domain.ChipDeleteEvent{Index: index})
			case KeyEscape:
				g.controller.Handle(domain.ChipEscapeEvent{Index: index})
			}
		},
		OnClick: func() {
			g.controller.Handle(domain.ChipClickEvent{Index: index})
		},
		OnRemoveClick: func() {
			g.controller.Handle(domain.ChipRemoveClickEvent{Index: index})
		},
	}
	g.chips[index] = p
	return p
}

// invalidateStale drops cached bundles once the store has moved on. Items at
// an index cannot change without a generation bump, so generation equality
// is enough to keep a bundle.
func (g *Getters) invalidateStale() {
	gen := g.store.Generation()
	if gen == g.generation {
		return
	}
	g.generation = gen
	g.chips = make(map[int]ChipProps)
	g.dropdowns = make(map[bool]DropdownProps)
}
