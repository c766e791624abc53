// Package term hosts the screendown widget in a terminal using tcell.
//
// Each terminal cell shows two vertically stacked pixels through the upper
// half block rune: the foreground paints the top pixel and the background
// paints the bottom one.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/screendown"
)

const halfBlock = '▀'

// Surface rasterizes screendown drawing operations into a pixel grid sized
// cols x rows*2 and flushes it to a tcell screen.
type Surface struct {
	screendown.OffsetStack
	cols, rows int
	pix        []screendown.Color
}

// NewSurface returns a surface for a terminal of cols x rows cells.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Resize changes the cell grid, discarding the current pixels.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	n := s.cols * s.rows * 2
	if cap(s.pix) < n {
		s.pix = make([]screendown.Color, n)
	}
	s.pix = s.pix[:n]
}

// Size implements screendown.Surface, in pixels.
func (s *Surface) Size() (float64, float64) {
	return float64(s.cols), float64(s.rows * 2)
}

// Pixel returns the color at pixel (x, y). Out of range reads return the
// zero color.
func (s *Surface) Pixel(x, y int) screendown.Color {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows*2 {
		return screendown.Color{}
	}
	return s.pix[y*s.cols+x]
}

// Clear implements screendown.Surface.
func (s *Surface) Clear(c screendown.Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// FillRect implements screendown.Surface.
func (s *Surface) FillRect(x0, y0, x1, y1 float64, p *screendown.Paint) {
	s.fill(screendown.RectFan(x0, y0, x1, y1), p.Color)
}

// FillArc implements screendown.Surface.
func (s *Surface) FillArc(cx, cy, r, startDeg, sweepDeg float64, p *screendown.Paint) {
	s.fill(screendown.ArcFan(cx, cy, r, startDeg, sweepDeg), p.Color)
}

// fill sets every pixel whose center lies inside the fan. Pixels outside
// the fan's bounds are rejected before the per-triangle test.
func (s *Surface) fill(f screendown.Fan, c screendown.Color) {
	if f.Triangles() == 0 {
		return
	}
	o := s.Offset()
	f = f.Translate(o.X, o.Y)
	b := f.Bounds()
	w, h := s.Size()
	x0 := max(0, int(math.Floor(b.X)))
	y0 := max(0, int(math.Floor(b.Y)))
	x1 := min(int(w)-1, int(math.Ceil(b.X+b.Width)))
	y1 := min(int(h)-1, int(math.Ceil(b.Y+b.Height)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if b.Contains(px, py) && f.Contains(px, py) {
				s.pix[y*s.cols+x] = c
			}
		}
	}
}

// Flush writes the pixel grid to screen and shows it.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pix[(row*2)*s.cols+col]
			bottom := s.pix[(row*2+1)*s.cols+col]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	screen.Show()
}

func tcellColor(c screendown.Color) tcell.Color {
	return tcell.NewRGBColor(channel8(c.R), channel8(c.G), channel8(c.B))
}

func channel8(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
