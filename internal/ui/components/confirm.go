package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/ui/theme"
)

// Confirm is a yes/no prompt. No is selected initially.
type Confirm struct {
	Prompt   string
	Yes      bool
	Answered bool
}

// NewConfirm creates a confirmation prompt.
func NewConfirm(prompt string) Confirm {
	return Confirm{Prompt: prompt}
}

// Update handles left/right/tab to move, y/n as shortcuts and enter to answer.
func (c Confirm) Update(msg tea.Msg) Confirm {
	if c.Answered {
		return c
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}
	switch kmsg.String() {
	case "left", "right", "tab", "h", "l":
		c.Yes = !c.Yes
	case "y":
		c.Yes, c.Answered = true, true
	case "n", "esc":
		c.Yes, c.Answered = false, true
	case "enter":
		c.Answered = true
	}
	return c
}

// View renders the prompt with both choices.
func (c Confirm) View() string {
	yes, no := theme.ButtonInactive, theme.ButtonInactive
	if c.Yes {
		yes = theme.ButtonActive
	} else {
		no = theme.ButtonActive
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yes.Render("Yes"), "  ", no.Render("No"))
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt),
		"",
		buttons)
}
