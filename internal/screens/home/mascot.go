package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle      MascotVariant = iota // no screening yet
	MascotClear                          // last screening within normal range
	MascotAttention                      // last screening outside normal range
)

const mascotIdle = `  ╭──╮
 ╭╯  │
 │ ╭╮│
 ╰─╯││
   ╰╯ `

const mascotClear = `  ╭──╮   )
 ╭╯  │  ) )
 │ ╭╮│   )
 ╰─╯││
   ╰╯ `

const mascotAttention = `  ╭──╮
 ╭╯  │  !
 │ ╭╮│
 ╰─╯││
   ╰╯ `

// RenderMascot returns the ear glyph for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch v {
	case MascotClear:
		art, fg = mascotClear, theme.Success
	case MascotAttention:
		art, fg = mascotAttention, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
