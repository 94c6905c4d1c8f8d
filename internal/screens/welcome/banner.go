package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sequences/internal/ui/theme"
)

const bannerWide = "W E L C O M E"

const bannerCompact = "Welcome"

// sampleRun decorates the banner with a sequence whose digit runs are
// highlighted the way the player will be scanning them.
var sampleRun = []string{"k", "42", "Qz", "7", "b", "318", "X"}

// RenderBanner returns the welcome banner. Uses the compact form for
// terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := bannerWide
	if width < 40 {
		title = bannerCompact
	}

	var b strings.Builder
	for _, part := range sampleRun {
		if part[0] >= '0' && part[0] <= '9' {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(part))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(part))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, style.Render(title), "", b.String())
}
