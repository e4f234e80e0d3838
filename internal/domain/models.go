package domain

import "fmt"

// Item is an opaque caller-supplied selected value. Items are compared with
// the equality function the widget was constructed with (Go == by default),
// never by display string.
type Item = any

// ActiveIndex identifies which element of the composite widget currently
// holds navigation authority: a chip position, the dropdown control itself,
// or nothing at all.
type ActiveIndex int

const (
	// ActiveDropdown means focus authority rests with the primary control.
	ActiveDropdown ActiveIndex = -1

	// ActiveNone means no element is targeted. Only occurs transiently,
	// e.g. right after the last chip is removed and before the controller
	// hands authority back to the dropdown.
	ActiveNone ActiveIndex = -2
)

// IsChip reports whether the index addresses a chip position.
func (a ActiveIndex) IsChip() bool { return a >= 0 }

func (a ActiveIndex) String() string {
	switch a {
	case ActiveDropdown:
		return "dropdown"
	case ActiveNone:
		return "none"
	default:
		return fmt.Sprintf("chip %d", int(a))
	}
}
