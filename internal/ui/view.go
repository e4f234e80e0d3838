package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"multiselect"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("240"))

	activeChipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63"))

	menuItemStyle        = lipgloss.NewStyle().PaddingLeft(4)
	menuHighlightedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("multiselect"))
	b.WriteString("\n\n")

	// Chip row. The roving marker comes straight from the bundle: exactly
	// one chip renders as active at any time.
	items := m.widget.SelectedItems()
	if len(items) > 0 {
		chips := make([]string, 0, len(items))
		for i, item := range items {
			props := m.widget.GetSelectedItemProps(multiselect.ChipOptions{Item: item, Index: i})
			label := props.Label + " ✕"
			if props.TabIndex == 0 && m.focused.IsChip() {
				chips = append(chips, activeChipStyle.Render(label))
			} else {
				chips = append(chips, chipStyle.Render(label))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(chips, " ")))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.menuOpen {
		for i, c := range m.menuCandidates() {
			if i == m.highlighted {
				b.WriteString(menuHighlightedStyle.Render("→ " + c))
			} else {
				b.WriteString(menuItemStyle.Render(c))
			}
			b.WriteString("\n")
		}
	}

	// Live region: assistive tech reads this without a focus change; here
	// it is just a status line.
	if m.cfg.UISettings.ShowStatusLine {
		if status := m.widget.Status(); status != "" {
			b.WriteString("\n")
			b.WriteString(statusStyle.Render(status))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%d selected · ←/→ chips · bksp remove · esc back · ctrl+c quit",
		len(items),
	)))
	b.WriteString("\n")

	return b.String()
}
