// Package ui is the demo host for the multiselect core: a bubbletea model
// that renders a text-entry dropdown with a candidate menu and a chip row,
// and drives the widget exclusively through its prop bundles.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multiselect"
	"multiselect/internal/config"
)

// Model represents the demo UI state
type Model struct {
	widget *multiselect.Widget
	cfg    *config.Config

	input       textinput.Model
	keys        keyMap
	candidates  []string
	menuOpen    bool
	highlighted int

	// focused mirrors which element currently owns the terminal cursor.
	// It is written only by the widget's focus effector through the node
	// registry below.
	focused multiselect.ActiveIndex

	width    int
	height   int
	quitting bool
}

// nodeRegistry is the host-owned index → focusable lookup. The registry only
// references model elements, it never owns them: a chip index that no longer
// exists yields nil and the focus effect is skipped.
type nodeRegistry struct {
	m *Model
}

func (r nodeRegistry) Node(target multiselect.ActiveIndex) multiselect.Focusable {
	if target.IsChip() && int(target) >= len(r.m.widget.SelectedItems()) {
		return nil
	}
	return focusNode{m: r.m, target: target}
}

// focusNode applies one focus change to the model.
type focusNode struct {
	m      *Model
	target multiselect.ActiveIndex
}

func (n focusNode) Focus() {
	n.m.focused = n.target
	if n.target == multiselect.ActiveDropdown {
		n.m.input.Focus()
	} else {
		n.m.input.Blur()
	}
}

// NewModel creates the demo UI model and its widget instance
func NewModel(cfg *config.Config) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = "Type to filter, enter to select"
	ti.Focus()

	m := &Model{
		cfg:        cfg,
		input:      ti,
		keys:       defaultKeyMap(),
		candidates: cfg.Candidates,
		focused:    multiselect.ActiveDropdown,
	}

	initial := make([]multiselect.Item, 0, len(cfg.UISettings.InitialSelected))
	for _, s := range cfg.UISettings.InitialSelected {
		initial = append(initial, s)
	}

	w, err := multiselect.New(multiselect.Config{
		InitialSelectedItems: initial,
		Registry:             nodeRegistry{m: m},
		ClearDelay:           time.Duration(cfg.UISettings.AnnounceClearMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}
	m.widget = w

	return m, nil
}

// Widget exposes the underlying widget for tests
func (m *Model) Widget() *multiselect.Widget { return m.widget }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.widget.Teardown()
			return m, tea.Quit
		}

		var cmd tea.Cmd
		if m.focused.IsChip() {
			m.updateChip(msg)
		} else {
			cmd = m.updateDropdown(msg)
		}

		// Run deferred focus effects after this pass has settled, so the
		// (possibly shrunk) chip row is already consistent.
		m.widget.Flush()
		return m, cmd
	}

	return m, nil
}

// updateChip routes keys to the focused chip's bundle.
func (m *Model) updateChip(msg tea.KeyMsg) {
	items := m.widget.SelectedItems()
	idx := int(m.focused)
	if idx >= len(items) {
		return
	}
	chip := m.widget.GetSelectedItemProps(multiselect.ChipOptions{Item: items[idx], Index: idx})

	switch {
	case key.Matches(msg, m.keys.Left):
		chip.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyArrowLeft})
	case key.Matches(msg, m.keys.Right):
		chip.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyArrowRight})
	case key.Matches(msg, m.keys.Backspace):
		chip.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyBackspace})
	case key.Matches(msg, m.keys.Delete):
		chip.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyDelete})
	case key.Matches(msg, m.keys.Escape):
		chip.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyEscape})
	}
}

// updateDropdown handles keys while the text input owns the cursor. The
// caret-at-start guard is evaluated here, host-side, and handed to the
// bundle pre-digested.
func (m *Model) updateDropdown(msg tea.KeyMsg) tea.Cmd {
	dropdown := m.widget.GetDropdownProps(multiselect.DropdownOptions{PreventKeyAction: m.menuOpen})
	caretAtStart := m.input.Position() == 0

	switch {
	case key.Matches(msg, m.keys.Down):
		menu := m.menuCandidates()
		if !m.menuOpen {
			m.menuOpen = true
			m.highlighted = 0
		} else if m.highlighted < len(menu)-1 {
			m.highlighted++
		}
		return nil

	case key.Matches(msg, m.keys.Up):
		if m.menuOpen && m.highlighted > 0 {
			m.highlighted--
		}
		return nil

	case key.Matches(msg, m.keys.Enter):
		menu := m.menuCandidates()
		if m.menuOpen && m.highlighted < len(menu) {
			// The dropdown state machine pushes its pick into the core.
			m.widget.AddSelectedItem(menu[m.highlighted])
			m.input.SetValue("")
			m.menuOpen = false
			m.highlighted = 0
		}
		return nil

	case key.Matches(msg, m.keys.Escape):
		m.menuOpen = false
		return nil

	case key.Matches(msg, m.keys.Left):
		if caretAtStart {
			dropdown.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyArrowLeft, CaretAtStart: true})
			return nil
		}

	case key.Matches(msg, m.keys.Backspace):
		if caretAtStart {
			dropdown.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyBackspace, CaretAtStart: true})
			return nil
		}

	case key.Matches(msg, m.keys.Delete):
		if caretAtStart && m.input.Value() == "" {
			dropdown.OnKeyDown(multiselect.KeyEvent{Key: multiselect.KeyDelete, CaretAtStart: true})
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != "" {
		m.menuOpen = true
		if m.highlighted >= len(m.menuCandidates()) {
			m.highlighted = 0
		}
	}
	return cmd
}

// menuCandidates filters the candidate universe by the input text and drops
// already-selected values.
func (m *Model) menuCandidates() []string {
	selected := make(map[string]bool)
	for _, it := range m.widget.SelectedItems() {
		if s, ok := it.(string); ok {
			selected[s] = true
		}
	}

	query := strings.ToLower(m.input.Value())
	var out []string
	for _, c := range m.candidates {
		if selected[c] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(c), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}
