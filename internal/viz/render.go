package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algoviz/internal/algorithms"
)

const (
	cellWidth = 5
	plotLimit = 24
)

// renderValues draws the step's values as a row of cells with an index
// row underneath. Inspected cells take the accent color, settled ones the
// success color, and cells outside an active window are muted.
func renderValues(s algorithms.Step, th Theme) string {
	if len(s.Values) == 0 {
		return th.style(th.Muted).Render("(empty)")
	}

	windowed := s.Low >= 0
	var vals, idx strings.Builder
	for i, v := range s.Values {
		text := fmt.Sprintf("%*d", cellWidth, v)
		if v < 0 {
			text = fmt.Sprintf("%*s", cellWidth, "·")
		}

		style := th.style(th.Text)
		switch {
		case s.IsActive(i):
			style = th.style(th.Accent).Bold(true).Reverse(true)
		case s.IsDone(i):
			style = th.style(th.Success).Bold(true)
		case windowed && !s.InWindow(i):
			style = th.style(th.Muted)
		}
		vals.WriteString(style.Render(text))
		idx.WriteString(th.style(th.Muted).Render(fmt.Sprintf("%*d", cellWidth, i)))
	}
	return vals.String() + "\n" + idx.String()
}

// renderPlot charts the values; long or degenerate rows are skipped.
func renderPlot(s algorithms.Step, th Theme) string {
	if len(s.Values) > plotLimit {
		return ""
	}
	return th.style(th.Secondary).Render(plot(s.Values, 6, len(s.Values)*cellWidth, "values"))
}

// PlotValues renders a plain chart of a step for non-interactive output.
func PlotValues(s algorithms.Step, caption string) string {
	return plot(s.Values, 8, max(len(s.Values)*4, 20), caption)
}

func plot(values []int, height, width int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
