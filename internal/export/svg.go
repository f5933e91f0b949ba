// Package export renders stress paths as standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/geosim/internal/stress"
)

// PathSVG renders a p-q stress path as an SVG polyline: mean stress on the
// horizontal axis, deviatoric stress on the vertical. Returns "" for paths
// too short to draw.
func PathSVG(states []stress.State, width, height int, strokeColor string) string {
	if len(states) < 2 {
		return ""
	}
	if strokeColor == "" {
		strokeColor = "#00ff00"
	}

	minP, maxP := states[0].P, states[0].P
	minQ, maxQ := states[0].Q, states[0].Q
	for _, s := range states {
		if s.P < minP {
			minP = s.P
		}
		if s.P > maxP {
			maxP = s.P
		}
		if s.Q < minQ {
			minQ = s.Q
		}
		if s.Q > maxQ {
			maxQ = s.Q
		}
	}

	rangeP := maxP - minP
	rangeQ := maxQ - minQ
	if rangeP == 0 {
		rangeP = 1
	}
	if rangeQ == 0 {
		rangeQ = 1
	}
	minP -= rangeP * 0.1
	minQ -= rangeQ * 0.1
	rangeP *= 1.2
	rangeQ *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="`, strokeColor))
	for i, s := range states {
		x := (s.P - minP) / rangeP * float64(width)
		y := float64(height) - (s.Q-minQ)/rangeQ*float64(height) // flip: q grows upward
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}
	sb.WriteString("\"/>\n")

	// Axis labels at the corners.
	sb.WriteString(fmt.Sprintf(`<text x="5" y="%d" fill="#888" font-size="10">p</text>
<text x="5" y="12" fill="#888" font-size="10">q</text>
</svg>`, height-5))

	return sb.String()
}
