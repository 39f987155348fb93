// Package screen defines the contract between screens and the router.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hearwise/internal/ui/layout"
)

// Screen is one page of the TUI.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is called when the screen above is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// Closer is implemented by screens that hold resources, such as the audio
// device. The router calls Close when the screen leaves the stack.
type Closer interface {
	Close()
}
