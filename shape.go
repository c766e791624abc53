package screendown

import "math"

// DrawShape draws one frame of the screen-down-to-ball-up choreography.
//
// The half-sine of scale is sliced into cfg.Parts stages. Stage 0 wipes the
// rectangle's bottom edge down the surface and stage 1 drags its top edge
// after it. Stage 2 sweeps the ball open at the bottom center and stage 3
// lifts it toward the middle. Because the slicing happens after Sinify, a
// scale running 0 to 1 plays the stages forward and then backward.
//
// scale is expected in [0, 1] and colorIndex within cfg.Palette; neither is
// checked. p.Color is overwritten with the palette entry.
func DrawShape(s Surface, cfg *Config, scale float64, colorIndex int, p *Paint) {
	w, h := s.Size()
	size := math.Min(w, h)
	r := size / cfg.RadiusFactor

	sf := Sinify(scale)
	sf1 := DivideScale(sf, 0, cfg.Parts)
	sf2 := DivideScale(sf, 1, cfg.Parts)
	sf3 := DivideScale(sf, 2, cfg.Parts)
	sf4 := DivideScale(sf, 3, cfg.Parts)

	p.Color = cfg.Palette[colorIndex]

	top, bottom := h*sf2, h*sf1
	if bottom > top {
		s.FillRect(0, top, w, bottom, p)
	}

	s.Save()
	s.Translate(w/2, lerp(h-r, h-size/2, sf4))
	if sf3 > 0 {
		s.FillArc(0, 0, r, 0, cfg.SweepDegrees*sf3, p)
	}
	s.Restore()
}
