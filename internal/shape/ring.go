// Package shape rasterizes the score ring into braille characters. It is
// stateless: every call draws the ring from scratch.
package shape

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBase is the empty braille pattern U+2800.
const brailleBase = 0x2800

// brailleDots maps (col 0-1, row 0-3) to the braille dot bit offsets.
// Column 0: dots 1,2,3,7 (bits 0,1,2,6)
// Column 1: dots 4,5,6,8 (bits 3,4,5,7)
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// maxScale is the largest scale the canvas leaves room for.
const maxScale = 1.1

// Ring describes one frame of the ring. Radius and StrokeWidth are in
// braille dots; a terminal cell is 2 dots wide and 4 dots tall. Start and
// End are fractions of the circumference measured clockwise from 12
// o'clock.
type Ring struct {
	Radius      float64
	StrokeWidth float64
	Start       float64
	End         float64
	Scale       float64
	StrokeColor lipgloss.TerminalColor
	TrackColor  lipgloss.TerminalColor
}

// Cell is one rasterized character.
type Cell struct {
	Rune   rune
	Stroke bool
	Track  bool
}

// Size returns the canvas size in cells for a ring of the given radius and
// stroke width.
func Size(radius, strokeWidth float64) (cols, rows int) {
	extent := 2 * (radius*maxScale + strokeWidth/2 + 1)
	dots := int(math.Ceil(extent))
	cols = (dots + 1) / 2
	rows = (dots + 3) / 4
	return cols, rows
}

// RadiusFor returns the largest radius whose canvas fits in cols x rows.
func RadiusFor(cols, rows int, strokeWidth float64) float64 {
	dots := math.Min(float64(cols*2), float64(rows*4))
	r := (dots/2 - strokeWidth/2 - 1) / maxScale
	return math.Max(r, 1)
}

// Rasterize draws r onto a grid of cells. Dots on the swept arc are stroke;
// the rest of the circle is track.
func Rasterize(r Ring) [][]Cell {
	cols, rows := Size(r.Radius, r.StrokeWidth)
	grid := make([][]Cell, rows)
	for y := range grid {
		grid[y] = make([]Cell, cols)
		for x := range grid[y] {
			grid[y][x].Rune = brailleBase
		}
	}

	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	radius := r.Radius * scale
	half := math.Max(r.StrokeWidth, 1) / 2
	start, end := clamp01(r.Start), clamp01(r.End)

	cx := float64(cols*2) / 2
	cy := float64(rows*4) / 2
	for dy := 0; dy < rows*4; dy++ {
		for dx := 0; dx < cols*2; dx++ {
			x := float64(dx) + 0.5 - cx
			y := float64(dy) + 0.5 - cy
			if math.Abs(math.Hypot(x, y)-radius) > half {
				continue
			}
			cell := &grid[dy/4][dx/2]
			cell.Rune |= brailleDots[dx%2][dy%4]
			if onArc(sweep(x, y), start, end) {
				cell.Stroke = true
			} else {
				cell.Track = true
			}
		}
	}
	return grid
}

// Render draws r as styled lines. A cell holding any stroke dot takes the
// stroke color.
func Render(r Ring) []string {
	grid := Rasterize(r)
	strokeStyle := lipgloss.NewStyle()
	trackStyle := lipgloss.NewStyle()
	if r.StrokeColor != nil {
		strokeStyle = strokeStyle.Foreground(r.StrokeColor)
	}
	if r.TrackColor != nil {
		trackStyle = trackStyle.Foreground(r.TrackColor)
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			switch {
			case c.Stroke:
				b.WriteString(strokeStyle.Render(string(c.Rune)))
			case c.Track:
				b.WriteString(trackStyle.Render(string(c.Rune)))
			default:
				b.WriteRune(' ')
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// sweep returns the clockwise angle of (x, y) from 12 o'clock as a fraction
// of a full turn. y grows downwards.
func sweep(x, y float64) float64 {
	a := math.Atan2(x, -y) / (2 * math.Pi)
	if a < 0 {
		a++
	}
	return a
}

func onArc(a, start, end float64) bool {
	return end > start && a >= start && a <= end
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
