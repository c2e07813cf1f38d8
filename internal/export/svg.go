package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/trace"
)

// Palette colors an SVG frame.
type Palette struct {
	Background string
	Bar        string
	Active     string
	Done       string
	Muted      string
	Text       string
}

var DefaultPalette = Palette{
	Background: "#0a0a0a",
	Bar:        "#00ffff",
	Active:     "#ffff00",
	Done:       "#00ff00",
	Muted:      "#444444",
	Text:       "#cccccc",
}

// StepToSVG draws a frame as a bar chart. Bars under inspection take the
// active color, settled ones the done color, and bars outside a search
// window are muted. Non-positive values draw no bar.
func StepToSVG(step algorithms.Step, width, height int, p Palette) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, p.Background))

	n := len(step.Values)
	if n > 0 {
		peak := 1
		for _, v := range step.Values {
			peak = max(peak, v)
		}

		const top, bottom = 20.0, 24.0
		plotH := float64(height) - top - bottom
		slot := float64(width) / float64(n)
		barW := slot * 0.8
		windowed := step.Low >= 0

		for i, v := range step.Values {
			fill := p.Bar
			switch {
			case step.IsActive(i):
				fill = p.Active
			case step.IsDone(i):
				fill = p.Done
			case windowed && !step.InWindow(i):
				fill = p.Muted
			}

			x := float64(i)*slot + (slot-barW)/2
			if v > 0 {
				h := float64(v) / float64(peak) * plotH
				y := top + plotH - h
				sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barW, h, fill))
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="11" text-anchor="middle">%d</text>
`, x+barW/2, float64(height)-8, p.Text, v))
		}
	}

	if step.Note != "" {
		sb.WriteString(fmt.Sprintf(`<text x="4" y="14" fill="%s" font-size="12">%s</text>
`, p.Text, html.EscapeString(step.Note)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// WriteSVG writes one frame of a trace. A negative index selects the last frame.
func WriteSVG(w io.Writer, tr *trace.Trace[algorithms.Step], index, width, height int) error {
	if index < 0 {
		index = tr.Len() - 1
	}
	step, ok := tr.At(index)
	if !ok {
		return fmt.Errorf("export: no frame %d (trace has %d)", index, tr.Len())
	}
	_, err := io.WriteString(w, StepToSVG(step, width, height, DefaultPalette))
	return err
}
