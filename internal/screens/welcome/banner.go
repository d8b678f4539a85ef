package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/netprep/internal/ui/theme"
)

const bannerArt = `
 ███╗   ██╗███████╗████████╗██████╗ ██████╗ ███████╗██████╗
 ████╗  ██║██╔════╝╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██╔══██╗
 ██╔██╗ ██║█████╗     ██║   ██████╔╝██████╔╝█████╗  ██████╔╝
 ██║╚██╗██║██╔══╝     ██║   ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝
 ██║ ╚████║███████╗   ██║   ██║     ██║  ██║███████╗██║
 ╚═╝  ╚═══╝╚══════╝   ╚═╝   ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝`

const bannerCompact = "N E T P R E P"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 62

// RenderBanner returns the NETPREP banner styled in the primary color.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
