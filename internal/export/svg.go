package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/accrete/internal/accrete"
)

// PlanetsSVG draws the system along a log-scaled AU axis.
func PlanetsSVG(planets accrete.Planets, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	pad := float64(width) * 0.05
	scale := (float64(width) - 2*pad) / (maxLogAU - minLogAU)
	midY := float64(height) / 2
	topY := float64(height) * 0.1
	toX := func(logAU float64) float64 { return pad + (logAU-minLogAU)*scale }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="#666688" stroke-width="1">
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, toX(minLogAU), topY, toX(maxLogAU), topY))
	for _, t := range ticks() {
		x := toX(t)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x, topY, x, topY+float64(height)*0.025))
	}
	sb.WriteString("</g>\n<g fill=\"#888899\" font-family=\"Helvetica\" font-size=\"12\">\n")
	for _, l := range tickLabels {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, toX(l.LogAU), topY-4, l.Label))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">AU</text>
`, toX(maxLogAU)-24, topY-4))
	sb.WriteString("</g>\n<g stroke=\"#00ff00\" stroke-width=\"1\">\n")

	for _, m := range markers(planets) {
		fill := "none"
		if m.Filled {
			fill = "#00ff00"
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>
`, toX(m.X), midY, m.Radius*scale, fill))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
