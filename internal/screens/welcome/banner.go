package welcome

import (
	"strings"

	"github.com/abhisek/elan/internal/ui/theme"
)

const bannerArt = `
███████╗██╗      █████╗ ███╗   ██╗
██╔════╝██║     ██╔══██╗████╗  ██║
█████╗  ██║     ███████║██╔██╗ ██║
██╔══╝  ██║     ██╔══██║██║╚██╗██║
███████╗███████╗██║  ██║██║ ╚████║
╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "É L A N"

// RenderBanner returns the ÉLAN banner in the colors of the flag.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	if width < 40 {
		return theme.Tricolore[0].Render(bannerCompact)
	}

	var lines []string
	for _, line := range strings.Split(strings.TrimPrefix(bannerArt, "\n"), "\n") {
		runes := []rune(line)
		third := (len(runes) + 2) / 3
		var b strings.Builder
		for i := 0; i < len(runes); i += third {
			end := min(i+third, len(runes))
			b.WriteString(theme.Tricolore[i/third].Render(string(runes[i:end])))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
