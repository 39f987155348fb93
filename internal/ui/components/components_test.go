package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuSkipsDisabled(t *testing.T) {
	picked := ""
	m := NewMenu([]MenuItem{
		{Label: "Explain", Disabled: true},
		{Label: "Start test", Action: func() tea.Cmd { picked = "start"; return nil }},
		{Label: "History", Hotkey: "h", Action: func() tea.Cmd { picked = "history"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(key("up"))
	if m.Selected != 2 {
		t.Errorf("up from the first enabled item should wrap to the last, got %d", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 1 {
		t.Errorf("down from the last item should wrap past the disabled one, got %d", m.Selected)
	}
	m.Update(key("enter"))
	if picked != "start" {
		t.Errorf("picked = %q, want start", picked)
	}

	m, _ = m.Update(key("h"))
	if picked != "history" || m.Selected != 2 {
		t.Errorf("hotkey: picked = %q, selected = %d", picked, m.Selected)
	}
	if !strings.Contains(m.View(), "▸ History") {
		t.Errorf("selected item not marked:\n%s", m.View())
	}
}

func TestMenuAllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a", Disabled: true}})
	m, cmd := m.Update(key("enter"))
	if cmd != nil {
		t.Error("disabled item triggered")
	}
	m, _ = m.Update(key("down"))
	if m.Selected != -1 {
		t.Errorf("selected = %d, want -1", m.Selected)
	}
}

func TestSteps(t *testing.T) {
	out := Steps(3, 12, 40)
	if !strings.Contains(out, "3 of 12") {
		t.Errorf("missing count label:\n%s", out)
	}
	if got := Steps(0, 0, 40); got != "" {
		t.Errorf("empty steps rendered %q", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"enter defaults to no", []string{"enter"}, false},
		{"toggle then enter", []string{"right", "enter"}, true},
		{"y shortcut", []string{"y"}, true},
		{"n shortcut", []string{"right", "n"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirm("Stop the test?")
			for _, k := range tt.keys {
				c = c.Update(key(k))
			}
			if !c.Answered {
				t.Fatal("expected an answer")
			}
			if c.Yes != tt.want {
				t.Errorf("Yes = %v, want %v", c.Yes, tt.want)
			}
		})
	}
}

func TestTextInputRefusesSpaces(t *testing.T) {
	ti := NewTextInput("name", 16)
	for _, k := range []string{"a", " ", "b"} {
		ti, _ = ti.Update(key(k))
	}
	if got := ti.Value(); got != "ab" {
		t.Errorf("Value() = %q, want %q", got, "ab")
	}
}

func TestStepsFitsWidth(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		width       int
		want        string
	}{
		{"card width", 0, 12, 56, "0 of 12"},
		{"exact fit", 5, 12, 21, "5 of 12"},
		{"too narrow for segments", 2, 12, 12, "2 of 12"},
		{"done past total", 15, 12, 40, "12 of 12"},
		{"negative done", -1, 12, 40, "0 of 12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Steps(tt.done, tt.total, tt.width)
			if w := lipgloss.Width(out); w > tt.width {
				t.Errorf("width = %d, want <= %d:\n%s", w, tt.width, out)
			}
			if strings.Contains(out, "\n") {
				t.Errorf("rendered on more than one line:\n%s", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("missing %q:\n%s", tt.want, out)
			}
		})
	}
}
