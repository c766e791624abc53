package screendown

import (
	"errors"
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette lists the node colors in traversal order.
var DefaultPalette = []string{
	"#f44336",
	"#3F51B5",
	"#006064",
	"#FF6F00",
	"#00C853",
}

// DefaultBackColor is the background the view clears to every frame.
const DefaultBackColor = "#BDBDBD"

// Config is the fixed choreography shared by every component of a view.
// Build it once (usually with DefaultConfig) and treat it as read-only.
type Config struct {
	// Palette holds one color per node. Its length is the chain length.
	Palette []Color
	// BackColor is the clear color.
	BackColor Color
	// Parts is the number of sub-stages a shape is split into.
	Parts int
	// Gap is the scale step applied per tick.
	Gap float64
	// RadiusFactor divides min(width, height) to get the ball radius.
	RadiusFactor float64
	// SweepDegrees is the ball's sweep at the end of its stage.
	SweepDegrees float64
	// Delay is the wait between a tick and the next redraw request.
	Delay time.Duration
}

// DefaultConfig returns the widget's fixed constants.
func DefaultConfig() *Config {
	palette, err := ParsePalette(DefaultPalette...)
	if err != nil {
		panic(err)
	}
	back, err := ParseColor(DefaultBackColor)
	if err != nil {
		panic(err)
	}
	const parts = 4
	return &Config{
		Palette:      palette,
		BackColor:    back,
		Parts:        parts,
		Gap:          0.02 / parts,
		RadiusFactor: 8.9,
		SweepDegrees: 360,
		Delay:        20 * time.Millisecond,
	}
}

// ParseColor parses a "#rrggbb" string into an opaque Color.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// ParsePalette parses each hex string with ParseColor, in order.
func ParsePalette(hex ...string) ([]Color, error) {
	out := make([]Color, 0, len(hex))
	for i, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Validate reports the first field that cannot drive a view.
func (c *Config) Validate() error {
	switch {
	case len(c.Palette) == 0:
		return errors.New("config: palette is empty")
	case c.Parts <= 0:
		return fmt.Errorf("config: parts must be positive, got %d", c.Parts)
	case c.Gap <= 0:
		return fmt.Errorf("config: gap must be positive, got %v", c.Gap)
	case c.RadiusFactor <= 0:
		return fmt.Errorf("config: radius factor must be positive, got %v", c.RadiusFactor)
	case c.Delay <= 0:
		return fmt.Errorf("config: delay must be positive, got %v", c.Delay)
	}
	return nil
}
