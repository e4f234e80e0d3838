package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect"
	"multiselect/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Version:    1,
		Candidates: []string{"Black", "Blue", "Green"},
		UISettings: config.UISettings{
			AnnounceClearMs: 500,
			ShowStatusLine:  true,
		},
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(testConfig())
	require.NoError(t, err)
	t.Cleanup(m.Widget().Teardown)
	return m
}

func press(m *Model, msg tea.KeyMsg) {
	m.Update(msg)
}

func TestEnterSelectsHighlightedCandidate(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyDown}) // open menu, highlight first
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []multiselect.Item{"Black"}, m.Widget().SelectedItems())
	assert.False(t, m.menuOpen)
}

func TestTypingFiltersCandidates(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gr")})

	require.True(t, m.menuOpen)
	assert.Equal(t, []string{"Green"}, m.menuCandidates())
}

func TestSelectedCandidatesLeaveTheMenu(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, []string{"Blue", "Green"}, m.menuCandidates())
}

func TestArrowLeftAtCaretStartMovesIntoChips(t *testing.T) {
	m := newTestModel(t)
	m.Widget().AddSelectedItem("Black")
	m.Widget().AddSelectedItem("Blue")

	press(m, tea.KeyMsg{Type: tea.KeyLeft})

	// Focus effector ran during the update's Flush and moved the cursor
	// onto the last chip.
	assert.Equal(t, multiselect.ActiveIndex(1), m.focused)
	assert.Equal(t, multiselect.ActiveIndex(1), m.Widget().ActiveIndex())
}

func TestChipKeysNavigateAndRemove(t *testing.T) {
	m := newTestModel(t)
	m.Widget().AddSelectedItem("Black")
	m.Widget().AddSelectedItem("Blue")

	press(m, tea.KeyMsg{Type: tea.KeyLeft}) // chip 1
	press(m, tea.KeyMsg{Type: tea.KeyLeft}) // chip 0
	require.Equal(t, multiselect.ActiveIndex(0), m.focused)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, []multiselect.Item{"Blue"}, m.Widget().SelectedItems())
	assert.Equal(t, multiselect.ActiveIndex(0), m.focused, "cursor stays in place as chips shift")
}

func TestEscapeOnChipReturnsToInput(t *testing.T) {
	m := newTestModel(t)
	m.Widget().AddSelectedItem("Black")

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	require.True(t, m.focused.IsChip())

	press(m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, multiselect.ActiveDropdown, m.focused)
}

func TestMenuOpenPreventsChipKeys(t *testing.T) {
	m := newTestModel(t)
	m.Widget().AddSelectedItem("Black")

	press(m, tea.KeyMsg{Type: tea.KeyDown}) // menu open
	press(m, tea.KeyMsg{Type: tea.KeyLeft})

	// preventKeyAction: the arrow stays with the menu interaction.
	assert.Equal(t, multiselect.ActiveDropdown, m.focused)
	assert.Equal(t, multiselect.ActiveDropdown, m.Widget().ActiveIndex())
}

func TestViewShowsChipsAndStatus(t *testing.T) {
	m := newTestModel(t)
	m.Widget().AddSelectedItem("Black")

	view := m.View()

	assert.Contains(t, view, "multiselect")
	assert.Contains(t, view, "Black")
	assert.Contains(t, view, "Black has been added")
	assert.Contains(t, view, "1 selected")
}

func TestProgramQuitsOnCtrlC(t *testing.T) {
	m := newTestModel(t)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	fm, ok := tm.FinalModel(t).(*Model)
	require.True(t, ok)
	assert.True(t, fm.quitting)
	assert.Empty(t, fm.View())
}
