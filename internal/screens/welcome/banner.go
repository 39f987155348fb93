package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hearwise/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗███████╗ █████╗ ██████╗ ██╗    ██╗██╗███████╗███████╗
 ██║  ██║██╔════╝██╔══██╗██╔══██╗██║    ██║██║██╔════╝██╔════╝
 ███████║█████╗  ███████║██████╔╝██║ █╗ ██║██║███████╗█████╗
 ██╔══██║██╔══╝  ██╔══██║██╔══██╗██║███╗██║██║╚════██║██╔══╝
 ██║  ██║███████╗██║  ██║██║  ██║╚███╔███╔╝██║███████║███████╗
 ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚══╝╚══╝ ╚═╝╚══════╝╚══════╝`

const bannerCompact = "H E A R W I S E"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 66

// RenderBanner returns the banner in the primary color, or a compact
// fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
