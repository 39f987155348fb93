package components

import "github.com/abhisek/hearwise/internal/ui/theme"

// Button renders a call to action followed by the key that triggers it.
// Screens handle the key themselves.
func Button(label, key string) string {
	return theme.ButtonActive.Render("▸ "+label) + theme.Hint.Render("  "+key)
}
