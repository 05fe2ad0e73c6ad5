package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/elan/internal/ui/theme"
)

// Fraction is done/total clamped to [0, 1], and 0 for an empty total.
func Fraction(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return min(max(float64(done)/float64(total), 0), 1)
}

// Progress renders an optional label, a bar and, with percent set, the
// rounded-down percentage, all within width cells. The bar keeps at least
// four cells however narrow width is.
func Progress(label string, frac float64, width int, percent bool) string {
	var head, tail string
	if label != "" {
		head = theme.Body.Render(label) + "  "
	}
	if percent {
		tail = theme.Hint.Render(fmt.Sprintf("%5d%%", int(frac*100)))
	}

	cells := max(width-lipgloss.Width(head)-lipgloss.Width(tail), 4)
	filled := min(max(int(frac*float64(cells)), 0), cells)

	return head +
		theme.ProgressFilled.Render(strings.Repeat("━", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("━", cells-filled)) +
		tail
}
