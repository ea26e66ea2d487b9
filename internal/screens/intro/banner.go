package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/interference/internal/ui/theme"
)

const bannerArt = `
 ╦╔╗╔╔╦╗╔═╗╦═╗╔═╗╔═╗╦═╗╔═╗╔╗╔╔═╗╔═╗
 ║║║║ ║ ║╣ ╠╦╝╠╣ ║╣ ╠╦╝║╣ ║║║║  ║╣
 ╩╝╚╝ ╩ ╚═╝╩╚═╚  ╚═╝╩╚═╚═╝╝╚╝╚═╝╚═╝`

const bannerCompact = "I N T E R F E R E N C E"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
