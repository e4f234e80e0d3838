package domain

// EventType identifies which transition fired.
type EventType string

// Input event types: one per transition-table row.
const (
	EventDropdownKeyDownNavPrevious EventType = "DropdownKeyDownNavPrevious"
	EventDropdownKeyDownBackspace   EventType = "DropdownKeyDownBackspace"
	EventDropdownKeyDownDelete      EventType = "DropdownKeyDownDelete"
	EventChipKeyDownNavPrevious     EventType = "ChipKeyDownNavPrevious"
	EventChipKeyDownNavNext         EventType = "ChipKeyDownNavNext"
	EventChipKeyDownBackspace       EventType = "ChipKeyDownBackspace"
	EventChipKeyDownDelete          EventType = "ChipKeyDownDelete"
	EventChipKeyDownEscape          EventType = "ChipKeyDownEscape"
	EventChipClicked                EventType = "ChipClicked"
	EventChipRemoveClicked          EventType = "ChipRemoveClicked"
	EventFuncAddItem                EventType = "FuncAddItem"
	EventFuncRemoveItem             EventType = "FuncRemoveItem"
	EventFuncRemoveItemAt           EventType = "FuncRemoveItemAt"
	EventFuncSetItems               EventType = "FuncSetItems"
	EventFuncSetActiveIndex         EventType = "FuncSetActiveIndex"
	EventFuncReset                  EventType = "FuncReset"
)

// Notification event types, published after the store commits a change.
const (
	EventItemAdded     EventType = "ItemAdded"
	EventItemRemoved   EventType = "ItemRemoved"
	EventItemsSet      EventType = "ItemsSet"
	EventActiveChanged EventType = "ActiveChanged"
	EventAnnounced     EventType = "Announced"
	EventStateChanged  EventType = "StateChanged"
)

// DomainEvent is the interface for all events carried by the bus.
type DomainEvent interface {
	Type() EventType
}

// InputEvent is a user- or caller-originated event fed to the navigation
// controller. Every input event is also a DomainEvent.
type InputEvent interface {
	DomainEvent
	inputEvent()
}

// DropdownNavPreviousEvent is ArrowLeft pressed on the dropdown control.
type DropdownNavPreviousEvent struct {
	PreventKeyAction bool
}

func (e DropdownNavPreviousEvent) Type() EventType { return EventDropdownKeyDownNavPrevious }
func (e DropdownNavPreviousEvent) inputEvent()     {}

// DropdownBackspaceEvent is Backspace pressed on the dropdown control.
// CaretAtStart is pre-evaluated by the host; for a button-style control
// it is always true.
type DropdownBackspaceEvent struct {
	CaretAtStart     bool
	PreventKeyAction bool
}

func (e DropdownBackspaceEvent) Type() EventType { return EventDropdownKeyDownBackspace }
func (e DropdownBackspaceEvent) inputEvent()     {}

// DropdownDeleteEvent is Delete pressed on the dropdown control.
type DropdownDeleteEvent struct {
	CaretAtStart     bool
	PreventKeyAction bool
}

func (e DropdownDeleteEvent) Type() EventType { return EventDropdownKeyDownDelete }
func (e DropdownDeleteEvent) inputEvent()     {}

// ChipNavPreviousEvent is ArrowLeft pressed on chip Index.
type ChipNavPreviousEvent struct {
	Index int
}

func (e ChipNavPreviousEvent) Type() EventType { return EventChipKeyDownNavPrevious }
func (e ChipNavPreviousEvent) inputEvent()     {}

// ChipNavNextEvent is ArrowRight pressed on chip Index.
type ChipNavNextEvent struct {
	Index int
}

func (e ChipNavNextEvent) Type() EventType { return EventChipKeyDownNavNext }
func (e ChipNavNextEvent) inputEvent()     {}

// ChipBackspaceEvent is Backspace pressed on chip Index.
type ChipBackspaceEvent struct {
	Index int
}

func (e ChipBackspaceEvent) Type() EventType { return EventChipKeyDownBackspace }
func (e ChipBackspaceEvent) inputEvent()     {}

// ChipDeleteEvent is Delete pressed on chip Index.
type ChipDeleteEvent struct {
	Index int
}

func (e ChipDeleteEvent) Type() EventType { return EventChipKeyDownDelete }
func (e ChipDeleteEvent) inputEvent()     {}

// ChipEscapeEvent is Escape pressed on chip Index.
type ChipEscapeEvent struct {
	Index int
}

func (e ChipEscapeEvent) Type() EventType { return EventChipKeyDownEscape }
func (e ChipEscapeEvent) inputEvent()     {}

// ChipClickEvent is a pointer click on the body of chip Index.
type ChipClickEvent struct {
	Index int
}

func (e ChipClickEvent) Type() EventType { return EventChipClicked }
func (e ChipClickEvent) inputEvent()     {}

// ChipRemoveClickEvent is a pointer click on the remove icon of chip Index.
type ChipRemoveClickEvent struct {
	Index int
}

func (e ChipRemoveClickEvent) Type() EventType { return EventChipRemoveClicked }
func (e ChipRemoveClickEvent) inputEvent()     {}

// AddItemEvent is an external addSelectedItem call, typically issued by the
// dropdown state machine when a candidate is chosen.
type AddItemEvent struct {
	Item Item
}

func (e AddItemEvent) Type() EventType { return EventFuncAddItem }
func (e AddItemEvent) inputEvent()     {}

// RemoveItemEvent is an external removeSelectedItem call.
type RemoveItemEvent struct {
	Item Item
}

func (e RemoveItemEvent) Type() EventType { return EventFuncRemoveItem }
func (e RemoveItemEvent) inputEvent()     {}

// RemoveItemAtEvent is an external removal by position. The index is
// validated before this event is dispatched.
type RemoveItemAtEvent struct {
	Index int
}

func (e RemoveItemAtEvent) Type() EventType { return EventFuncRemoveItemAt }
func (e RemoveItemAtEvent) inputEvent()     {}

// SetItemsEvent replaces the whole collection (controlled/external state).
type SetItemsEvent struct {
	Items []Item
}

func (e SetItemsEvent) Type() EventType { return EventFuncSetItems }
func (e SetItemsEvent) inputEvent()     {}

// SetActiveIndexEvent is a programmatic activation request.
type SetActiveIndexEvent struct {
	Index ActiveIndex
}

func (e SetActiveIndexEvent) Type() EventType { return EventFuncSetActiveIndex }
func (e SetActiveIndexEvent) inputEvent()     {}

// ResetEvent restores the construction-time selection.
type ResetEvent struct{}

func (e ResetEvent) Type() EventType { return EventFuncReset }
func (e ResetEvent) inputEvent()     {}

// ItemAddedEvent is emitted after an item is appended to the selection.
type ItemAddedEvent struct {
	Item  Item
	Items []Item
}

func (e ItemAddedEvent) Type() EventType { return EventItemAdded }

// ItemRemovedEvent is emitted after an item is removed from the selection.
type ItemRemovedEvent struct {
	Item  Item
	Index int
	Items []Item
}

func (e ItemRemovedEvent) Type() EventType { return EventItemRemoved }

// ItemsSetEvent is emitted after the collection is replaced wholesale.
type ItemsSetEvent struct {
	Items []Item
}

func (e ItemsSetEvent) Type() EventType { return EventItemsSet }

// ActiveChangedEvent is emitted whenever navigation authority moves.
type ActiveChangedEvent struct {
	Old ActiveIndex
	New ActiveIndex
}

func (e ActiveChangedEvent) Type() EventType { return EventActiveChanged }

// AnnouncedEvent is emitted when a live-region message is queued.
type AnnouncedEvent struct {
	Message string
}

func (e AnnouncedEvent) Type() EventType { return EventAnnounced }

// StateChangedEvent is the observer notification, emitted once per handled
// input event. Cause is the input event's type. Items carries the collection
// as of the transition: under external ownership this is the proposed
// collection, so SelectedItem and Items always describe the same change.
type StateChangedEvent struct {
	Cause        EventType
	SelectedItem Item
	ActiveIndex  ActiveIndex
	Items        []Item
}

func (e StateChangedEvent) Type() EventType { return EventStateChanged }
