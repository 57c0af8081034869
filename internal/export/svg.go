// Package export renders analysis charts as standalone SVG artifacts.
package export

import (
	"fmt"
	"strings"
)

const (
	background = "#0a0a0a"
	axisColor  = "#333333"
	textColor  = "#aaaaaa"
	refColor   = "#ff4444"
)

// Default series palette, value 0 first.
var Palette = []string{"#4488ff", "#00cc66", "#ffaa00"}

// Series is one named line in a chart.
type Series struct {
	Name   string
	Values []float64
	Color  string
}

type Point struct {
	X, Y float64
}

func svgHeader(sb *strings.Builder, width, height int, title string) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
	if title != "" {
		fmt.Fprintf(sb, `<text x="%d" y="18" fill="%s" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
`, width/2, textColor, title)
	}
}

// BarChart draws one bar per label with an optional horizontal reference
// line at refY (skipped when refY <= 0).
func BarChart(labels []string, values []float64, refY float64, width, height int, title string) string {
	var sb strings.Builder
	svgHeader(&sb, width, height, title)

	if len(values) == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	maxVal := refY
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	top := 30.0
	bottom := float64(height) - 24
	plotH := bottom - top
	slot := float64(width) / float64(len(values))
	barW := slot * 0.6

	for i, v := range values {
		h := v / maxVal * plotH
		x := float64(i)*slot + (slot-barW)/2
		y := bottom - h
		color := Palette[i%len(Palette)]
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barW, h, color)
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11" text-anchor="middle">%s</text>
`, x+barW/2, bottom+14, textColor, labels[i])
	}

	if refY > 0 {
		y := bottom - refY/maxVal*plotH
		fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="1" stroke-dasharray="6,4"/>
`, y, width, y, refColor)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// LineChart draws one polyline per series over a shared [yMin, yMax] range,
// plus a dashed horizontal reference at refY.
func LineChart(series []Series, refY, yMin, yMax float64, width, height int, title string) string {
	var sb strings.Builder
	svgHeader(&sb, width, height, title)

	if yMax <= yMin {
		yMax = yMin + 1
	}

	top := 30.0
	bottom := float64(height) - 12
	plotH := bottom - top
	scaleY := func(v float64) float64 {
		return bottom - (v-yMin)/(yMax-yMin)*plotH
	}

	for si, s := range series {
		if len(s.Values) < 2 {
			continue
		}
		color := s.Color
		if color == "" {
			color = Palette[si%len(Palette)]
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color)
		for i, v := range s.Values {
			x := float64(i) / float64(len(s.Values)-1) * float64(width)
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, scaleY(v))
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, scaleY(v))
			}
		}
		sb.WriteString("\"/>\n")
	}

	if refY >= yMin && refY <= yMax {
		y := scaleY(refY)
		fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s" stroke-width="1" stroke-dasharray="6,4"/>
`, y, width, y, refColor)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ScatterChart plots discrete points; ticks lists the distinct Y levels so
// each outcome band keeps its own color.
func ScatterChart(points []Point, ticks []float64, width, height int, title string) string {
	var sb strings.Builder
	svgHeader(&sb, width, height, title)

	if len(points) == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	maxX := points[0].X
	for _, p := range points {
		if p.X > maxX {
			maxX = p.X
		}
	}
	if maxX == 0 {
		maxX = 1
	}

	yLo, yHi := ticks[0]-0.5, ticks[len(ticks)-1]+0.5
	top := 30.0
	bottom := float64(height) - 12
	plotH := bottom - top

	for _, p := range points {
		x := p.X / maxX * float64(width-12)
		y := bottom - (p.Y-yLo)/(yHi-yLo)*plotH
		color := Palette[int(p.Y)%len(Palette)]
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
`, x+6, y, color)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// Histogram draws frequency bars for run lengths 1..len(counts) with an
// optional theory overlay polyline sharing the same scale.
func Histogram(counts []float64, overlay []float64, width, height int, title string) string {
	var sb strings.Builder
	svgHeader(&sb, width, height, title)

	if len(counts) == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	maxVal := 0.0
	for _, v := range counts {
		if v > maxVal {
			maxVal = v
		}
	}
	for _, v := range overlay {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	top := 30.0
	bottom := float64(height) - 24
	plotH := bottom - top
	slot := float64(width) / float64(len(counts))
	barW := slot * 0.7

	for i, v := range counts {
		h := v / maxVal * plotH
		x := float64(i)*slot + (slot-barW)/2
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, bottom-h, barW, h, Palette[0])
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="11" text-anchor="middle">%d</text>
`, x+barW/2, bottom+14, textColor, i+1)
	}

	if len(overlay) > 1 {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" stroke-dasharray="4,3" d="M`, refColor)
		for i, v := range overlay {
			x := float64(i)*slot + slot/2
			y := bottom - v/maxVal*plotH
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
