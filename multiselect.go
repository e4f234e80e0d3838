// Package multiselect is the headless interaction core of an accessible
// multiple-selection widget: a primary dropdown control plus a variable-size
// row of selected-item chips. It owns the selection collection and the
// roving navigation state, and exposes attribute/listener bundles for a host
// rendering layer to attach to elements it owns. It renders nothing itself.
package multiselect

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"multiselect/internal/announce"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/focus"
	"multiselect/internal/nav"
	"multiselect/internal/props"
	"multiselect/internal/store"
)

// Re-export internal types for convenience
type (
	Item            = domain.Item
	ActiveIndex     = domain.ActiveIndex
	Change          = domain.StateChangedEvent
	EventType       = domain.EventType
	Key             = props.Key
	KeyEvent        = props.KeyEvent
	DropdownOptions = props.DropdownOptions
	ChipOptions     = props.ChipOptions
	DropdownProps   = props.DropdownProps
	ChipProps       = props.ChipProps
	Focusable       = focus.Focusable
	Registry        = focus.Registry
	Scheduler       = focus.Scheduler
	MessageFunc     = announce.MessageFunc
	EqualFunc       = store.EqualFunc
)

const (
	ActiveDropdown = domain.ActiveDropdown
	ActiveNone     = domain.ActiveNone

	KeyArrowLeft  = props.KeyArrowLeft
	KeyArrowRight = props.KeyArrowRight
	KeyBackspace  = props.KeyBackspace
	KeyDelete     = props.KeyDelete
	KeyEscape     = props.KeyEscape
)

// Transition tags carried by Change.Cause.
const (
	DropdownKeyDownNavPrevious = domain.EventDropdownKeyDownNavPrevious
	DropdownKeyDownBackspace   = domain.EventDropdownKeyDownBackspace
	DropdownKeyDownDelete      = domain.EventDropdownKeyDownDelete
	ChipKeyDownNavPrevious     = domain.EventChipKeyDownNavPrevious
	ChipKeyDownNavNext         = domain.EventChipKeyDownNavNext
	ChipKeyDownBackspace       = domain.EventChipKeyDownBackspace
	ChipKeyDownDelete          = domain.EventChipKeyDownDelete
	ChipKeyDownEscape          = domain.EventChipKeyDownEscape
	ChipClicked                = domain.EventChipClicked
	ChipRemoveClicked          = domain.EventChipRemoveClicked
	FuncAddItem                = domain.EventFuncAddItem
	FuncRemoveItem             = domain.EventFuncRemoveItem
	FuncRemoveItemAt           = domain.EventFuncRemoveItemAt
	FuncSetItems               = domain.EventFuncSetItems
	FuncSetActiveIndex         = domain.EventFuncSetActiveIndex
	FuncReset                  = domain.EventFuncReset
)

// ErrIndexOutOfRange reports a positional removal outside the collection.
var ErrIndexOutOfRange = store.ErrIndexOutOfRange

// Config configures one widget instance.
type Config struct {
	// InitialSelectedItems seeds the collection in uncontrolled mode.
	InitialSelectedItems []Item

	// SelectedItems switches the widget to fully-controlled mode: the
	// collection is owned externally, mutations are reported through
	// OnSelectedItemsChange, and the owner echoes them back with
	// SetSelectedItems. Requires OnSelectedItemsChange.
	SelectedItems []Item

	// OnSelectedItemsChange observes every collection change (proposed,
	// in controlled mode; committed, otherwise).
	OnSelectedItemsChange func(items []Item)

	// OnStateChange observes every handled transition, tagged with the
	// transition type that fired.
	OnStateChange func(Change)

	// ItemEquals overrides item equality. Defaults to Go ==.
	ItemEquals EqualFunc

	// StatusMessage overrides the live-region text per mutation.
	StatusMessage MessageFunc

	// ClearDelay overrides how long an announcement stays up.
	ClearDelay time.Duration

	// Registry is the host's node lookup for focus side effects. Without
	// one, focus effects are no-ops.
	Registry Registry

	// Scheduler overrides how focus effects are deferred. The default
	// queues them until the host calls Flush.
	Scheduler Scheduler

	// InstanceID overrides the generated element-id prefix.
	InstanceID string
}

// Widget is the live handle for one multiple-selection core. Construct with
// New, release with Teardown; there are no ambient singletons.
type Widget struct {
	id string

	bus        eventbus.EventBus
	store      *store.Store
	controller *nav.Controller
	effector   *focus.Effector
	announcer  *announce.Announcer
	getters    *props.Getters
	queue      *focus.QueueScheduler

	unsubscribe func()
	torndown    bool
}

// New creates a widget instance.
func New(cfg Config) (*Widget, error) {
	controlled := cfg.SelectedItems != nil
	if controlled && cfg.OnSelectedItemsChange == nil {
		return nil, errors.New("multiselect: controlled SelectedItems requires OnSelectedItemsChange")
	}

	initial := cfg.InitialSelectedItems
	if controlled {
		initial = cfg.SelectedItems
	}

	id := cfg.InstanceID
	if id == "" {
		id = "multiselect-" + uuid.NewString()
	}

	bus := eventbus.New()

	var onChange store.ChangeFunc
	if cfg.OnSelectedItemsChange != nil {
		onChange = func(items []Item, _ EventType) {
			cfg.OnSelectedItemsChange(items)
		}
	}

	s := store.New(bus, initial, cfg.ItemEquals, onChange, controlled)
	controller := nav.New(s, bus, initial)

	scheduler := cfg.Scheduler
	var queue *focus.QueueScheduler
	if scheduler == nil {
		queue = focus.NewQueueScheduler()
		scheduler = queue
	}

	w := &Widget{
		id:         id,
		bus:        bus,
		store:      s,
		controller: controller,
		effector:   focus.NewEffector(bus, cfg.Registry, scheduler),
		announcer:  announce.New(bus, cfg.StatusMessage, cfg.ClearDelay),
		getters:    props.New(s, controller, id),
		queue:      queue,
	}

	if cfg.OnStateChange != nil {
		observer := cfg.OnStateChange
		w.unsubscribe = bus.Subscribe(domain.EventStateChanged, func(ev eventbus.DomainEvent) {
			if change, ok := ev.(domain.StateChangedEvent); ok {
				observer(change)
			}
		})
	}

	return w, nil
}

// ID returns the instance's element-id prefix.
func (w *Widget) ID() string { return w.id }

// SelectedItems returns the current ordered selection.
func (w *Widget) SelectedItems() []Item { return w.store.Items() }

// ActiveIndex returns the current navigation target.
func (w *Widget) ActiveIndex() ActiveIndex { return w.store.Active() }

// Status returns the current live-region text.
func (w *Widget) Status() string { return w.announcer.Message() }

// AddSelectedItem appends an item, as invoked by the external dropdown state
// machine when a candidate is chosen. Focus authority returns to the
// dropdown.
func (w *Widget) AddSelectedItem(item Item) {
	w.controller.Handle(domain.AddItemEvent{Item: item})
}

// RemoveSelectedItem removes the first occurrence of item. Absent items are
// a no-op.
func (w *Widget) RemoveSelectedItem(item Item) {
	w.controller.Handle(domain.RemoveItemEvent{Item: item})
}

// RemoveSelectedItemAt removes by position. Out-of-range indexes fail with
// ErrIndexOutOfRange; that is a caller bug, never clamped.
func (w *Widget) RemoveSelectedItemAt(index int) error {
	if index < 0 || index >= w.store.Len() {
		_, err := w.store.RemoveAt(index) // produces the wrapped error
		return err
	}
	w.controller.Handle(domain.RemoveItemAtEvent{Index: index})
	return nil
}

// SetSelectedItems replaces the whole collection. In controlled mode this is
// the owner's echo path.
func (w *Widget) SetSelectedItems(items []Item) {
	w.controller.Handle(domain.SetItemsEvent{Items: items})
}

// SetActiveIndex programmatically moves navigation authority. Invalid chip
// indexes are ignored.
func (w *Widget) SetActiveIndex(index ActiveIndex) {
	w.controller.Handle(domain.SetActiveIndexEvent{Index: index})
}

// Reset restores the construction-time selection and returns authority to
// the dropdown. In controlled mode the initial collection is proposed
// through OnSelectedItemsChange like any other mutation; the owner decides
// whether to echo it back.
func (w *Widget) Reset() {
	w.controller.Handle(domain.ResetEvent{})
}

// GetDropdownProps returns the bundle for the primary control.
func (w *Widget) GetDropdownProps(opts DropdownOptions) DropdownProps {
	return w.getters.Dropdown(opts)
}

// GetSelectedItemProps returns the bundle for one chip.
func (w *Widget) GetSelectedItemProps(opts ChipOptions) ChipProps {
	return w.getters.Chip(opts)
}

// Flush runs deferred focus effects. Hosts using the default scheduler call
// it once per render pass, after the chip list has been laid out. With a
// custom Scheduler, Flush is a no-op.
func (w *Widget) Flush() {
	if w.queue != nil {
		w.queue.Flush()
	}
}

// Teardown releases timers, scheduled effects and subscriptions. The widget
// must not be used afterwards.
func (w *Widget) Teardown() {
	if w.torndown {
		return
	}
	w.torndown = true
	w.effector.Teardown()
	w.announcer.Stop()
	if w.unsubscribe != nil {
		w.unsubscribe()
	}
}
