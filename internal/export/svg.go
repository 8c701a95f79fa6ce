package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/gravlab/internal/scene"
)

// TrailSVG renders each body's trail as a stroked path and its current
// position as a filled circle, colored from the scene palette.
func TrailSVG(views []scene.BodyView, width, height int) string {
	if len(views) == 0 {
		return ""
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, v := range views {
		grow(v.Position.X, v.Position.Y)
		for _, p := range v.Trail {
			grow(p.X, p.Y)
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	px := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	py := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, v := range views {
		color := string(v.Color())

		if len(v.Trail) > 1 {
			sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="M`, color, v.TrailWidth))
			for i, p := range v.Trail {
				if i == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(p.X), py(p.Y)))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(p.X), py(p.Y)))
				}
			}
			sb.WriteString("\"/>\n")
		}

		r := v.Radius / rangeX * float64(width)
		if r < 1 {
			r = 1
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, px(v.Position.X), py(v.Position.Y), r, color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
