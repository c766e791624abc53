package screendown

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

// ensureWhitePixel returns the shared 1x1 white image that untextured fans
// are drawn with; vertex colors supply the fill.
func ensureWhitePixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{1, 1, 1, 1})
	})
	return whitePixel
}

// ImageSurface is a Surface backed by an *ebiten.Image. Rectangles and pies
// are fan-triangulated and submitted with DrawTriangles.
type ImageSurface struct {
	OffsetStack
	dst *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint16
	op    ebiten.DrawTrianglesOptions
}

// NewImageSurface wraps dst.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	s := &ImageSurface{dst: dst}
	s.op.AntiAlias = true
	return s
}

// Target returns the wrapped image.
func (s *ImageSurface) Target() *ebiten.Image {
	return s.dst
}

// Size implements Surface.
func (s *ImageSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear implements Surface.
func (s *ImageSurface) Clear(c Color) {
	s.dst.Fill(c)
}

// FillRect implements Surface.
func (s *ImageSurface) FillRect(x0, y0, x1, y1 float64, p *Paint) {
	s.fill(RectFan(x0, y0, x1, y1), p.Color)
}

// FillArc implements Surface.
func (s *ImageSurface) FillArc(cx, cy, r, startDeg, sweepDeg float64, p *Paint) {
	s.fill(ArcFan(cx, cy, r, startDeg, sweepDeg), p.Color)
}

func (s *ImageSurface) fill(f Fan, c Color) {
	if f.Triangles() == 0 {
		return
	}
	s.verts, s.inds = buildFan(s.verts[:0], s.inds[:0], f, s.Offset(), c)
	s.dst.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &s.op)
}

// buildFan appends vertices and indices for a fan-triangulated shape,
// translated by off and tinted with c. N points give N vertices and
// 3*(N-2) indices.
func buildFan(verts []ebiten.Vertex, inds []uint16, f Fan, off Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	for _, p := range f {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p.X + off.X),
			DstY:   float32(p.Y + off.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A),
		})
	}
	// Vertex 0 is the hub.
	for i := 0; i < f.Triangles(); i++ {
		inds = append(inds, 0, uint16(i+1), uint16(i+2))
	}
	return verts, inds
}
