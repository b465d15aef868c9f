// Package palette holds the color types and the reduction engine that
// boils an image's color population down to a fixed number of
// representative colors.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel RGB color. Channel values are the ground
// truth; hue, saturation and lightness are always derived from them.
type Color struct {
	R, G, B uint8
}

// WeightedColor pairs a color with its prevalence in the source image.
type WeightedColor struct {
	Color
	Weight float64
}

// New builds a Color from integer channels, clamping each to [0, 255].
func New(r, g, b int) Color {
	return Color{clampChannel(r), clampChannel(g), clampChannel(b)}
}

// HSL returns the cylindrical representation of c: hue in [0, 360),
// saturation and lightness in [0, 1].
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// Lightness returns the HSL lightness of c.
func (c Color) Lightness() float64 {
	_, _, l := c.HSL()
	return l
}

// Saturation returns the HSL saturation of c.
func (c Color) Saturation() float64 {
	_, s, _ := c.HSL()
	return s
}

// Hex renders c as six lowercase hex digits with no prefix.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// FromHSL converts an HSL triple back to channel space. Saturation and
// lightness are clamped to [0, 1] first; the result round-trips with HSL
// within one unit per channel.
func FromHSL(h, s, l float64) Color {
	r, g, b := colorful.Hsl(h, clamp01(s), clamp01(l)).Clamped().RGB255()
	return Color{r, g, b}
}

// Distance is the Euclidean norm of the per-channel differences between a
// and b. Plain channel-space distance is used throughout instead of a
// perceptual metric; it is predictable, fast, and a true metric.
func Distance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// less orders colors by channel values, for deterministic tie-breaking.
func (c Color) less(o Color) bool {
	if c.R != o.R {
		return c.R < o.R
	}
	if c.G != o.G {
		return c.G < o.G
	}
	return c.B < o.B
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
