package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// GradientText colors text with a linear blend from start to end. Colors
// that are not hex fall back to a single start foreground.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	from, errFrom := colorful.Hex(string(start))
	to, errTo := colorful.Hex(string(end))
	if errFrom != nil || errTo != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	var b strings.Builder
	for i, c := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		col := lipgloss.Color(from.BlendRgb(to, t).Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(col).Render(string(c)))
	}
	return b.String()
}

// ProgressBar renders fraction in [0, 1] as a bar of the given width.
func ProgressBar(fraction float64, width int, th Theme) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(filled, width))

	bar := th.style(th.Secondary).Render(strings.Repeat("━", filled))
	rest := th.style(th.Muted).Render(strings.Repeat("─", width-filled))
	return bar + rest
}

// Separator draws a muted rule with a centered diamond.
func Separator(width int, th Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return th.style(th.Muted).Render(left + " ◆ " + right)
}
