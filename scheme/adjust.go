package scheme

import (
	"math"

	"github.com/aswenson/schemer/palette"
)

// AdjustOptions are the accent-adjustment tunables. Zero values fall back
// to defaults.
type AdjustOptions struct {
	// MinVividness is the usability threshold an accent color must reach.
	MinVividness float64
	// SaturationStep and LightnessStep are the per-iteration increments
	// applied in HSL space while a color is under the threshold.
	SaturationStep float64
	LightnessStep  float64
	// MaxIterations bounds the adjustment loop.
	MaxIterations int
}

const (
	defaultMinVividness   = 0.25
	defaultSaturationStep = 0.1
	defaultLightnessStep  = 0.1
	defaultMaxIterations  = 8
)

func (o AdjustOptions) normalized() AdjustOptions {
	if o.MinVividness <= 0 {
		o.MinVividness = defaultMinVividness
	}
	if o.SaturationStep <= 0 {
		o.SaturationStep = defaultSaturationStep
	}
	if o.LightnessStep <= 0 {
		o.LightnessStep = defaultLightnessStep
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = defaultMaxIterations
	}
	return o
}

// Vividness scores how usable a color is as an accent: its saturation
// weighted by how close its lightness sits to the usable mid range.
// Colors near pure black or pure white score low regardless of
// saturation.
func Vividness(c palette.Color) float64 {
	_, s, l := c.HSL()
	return s * lightnessFit(l)
}

// lightnessFit is 1 at mid lightness and falls off linearly to 0 at the
// extremes.
func lightnessFit(l float64) float64 {
	fit := 1 - 2*math.Abs(l-0.5)
	if fit < 0 {
		return 0
	}
	return fit
}

// adjustAccents boosts every accent slot whose vividness falls under the
// threshold. Shade slots are never touched: background and foreground
// legibility depends on the image's original tonal range.
func adjustAccents(p map[Slot]palette.Color, opts AdjustOptions) {
	opts = opts.normalized()
	for slot, c := range p {
		if slot.Accent() {
			p[slot] = boost(c, opts)
		}
	}
}

// boost steps saturation up and lightness toward the mid range until the
// vividness threshold is met or the iteration budget runs out. An
// achromatic color keeps zero saturation, since its hue is undefined; the
// best achievable lightness fit is accepted instead.
func boost(c palette.Color, opts AdjustOptions) palette.Color {
	h, s, l := c.HSL()
	for i := 0; i < opts.MaxIterations && s*lightnessFit(l) < opts.MinVividness; i++ {
		if s > 0 {
			s = clamp01(s + opts.SaturationStep)
		}
		if l < 0.5 {
			l = math.Min(0.5, l+opts.LightnessStep)
		} else if l > 0.5 {
			l = math.Max(0.5, l-opts.LightnessStep)
		}
	}
	return palette.FromHSL(h, s, l)
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
