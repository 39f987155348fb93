package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Hotkey, when set, selects and triggers
// the item directly.
type MenuItem struct {
	Label    string
	Hotkey   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list with wrap-around navigation. Disabled items are
// shown but never selected.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	return m
}

// move steps the selection by dir, skipping disabled items. It leaves the
// selection alone when every item is disabled.
func (m *Menu) move(dir int) {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	switch k := kmsg.String(); k {
	case "up", "k", "shift+tab":
		m.move(-1)
	case "down", "j", "tab":
		m.move(1)
	case "enter":
		return m, m.trigger(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Hotkey != "" && strings.EqualFold(item.Hotkey, k) && !item.Disabled {
				m.Selected = i
				return m, m.trigger(i)
			}
		}
	}
	return m, nil
}

func (m Menu) trigger(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	if item := m.Items[i]; !item.Disabled && item.Action != nil {
		return item.Action()
	}
	return nil
}

// View renders the items one per line.
func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := item.Label
		if item.Hotkey != "" {
			label += theme.Hint.Render(" (" + item.Hotkey + ")")
		}
		switch {
		case i == m.Selected:
			lines[i] = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label)
		case item.Disabled:
			lines[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Label)
		default:
			lines[i] = "  " + label
		}
	}
	return strings.Join(lines, "\n")
}
