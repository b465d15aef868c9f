package scheme

import (
	"fmt"
	"math"
	"sort"

	"github.com/aswenson/schemer/palette"
)

type byLightness []palette.Color

func (cs byLightness) Len() int { return len(cs) }
func (cs byLightness) Less(i, j int) bool {
	li, lj := cs[i].Lightness(), cs[j].Lightness()
	if li != lj {
		return li < lj
	}
	return lessRGB(cs[i], cs[j])
}
func (cs byLightness) Swap(i, j int) { cs[i], cs[j] = cs[j], cs[i] }

type bySaturation []palette.Color

func (cs bySaturation) Len() int { return len(cs) }
func (cs bySaturation) Less(i, j int) bool {
	si, sj := cs[i].Saturation(), cs[j].Saturation()
	if si != sj {
		return si > sj
	}
	li, lj := cs[i].Lightness(), cs[j].Lightness()
	if li != lj {
		return li < lj
	}
	return lessRGB(cs[i], cs[j])
}
func (cs bySaturation) Swap(i, j int) { cs[i], cs[j] = cs[j], cs[i] }

func lessRGB(a, b palette.Color) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}

// assign partitions and orders the representatives over the system's
// slots. The shade ramp base00-base07 spans the full tonal range: base00
// takes the darkest color (Dark variant) or the lightest (Light), base07
// the opposite extreme, with the intermediate slots spread evenly across
// the lightness ranking. The colors left over form the accent pool and
// fill base08 onward ordered by descending saturation, most vivid first.
func assign(reps []palette.Color, system System, variant Variant) (map[Slot]palette.Color, error) {
	slots, err := system.Slots()
	if err != nil {
		return nil, err
	}
	if len(reps) != len(slots) {
		return nil, fmt.Errorf("scheme: need %d representative colors, got %d", len(slots), len(reps))
	}

	ordered := append([]palette.Color(nil), reps...)
	sort.Sort(byLightness(ordered))

	switch variant {
	case Dark:
	case Light:
		for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, string(variant))
	}

	n := len(ordered)
	taken := make([]bool, n)
	out := make(map[Slot]palette.Color, n)

	for i := 0; i < shadeSlots; i++ {
		idx := int(math.Round(float64(i*(n-1)) / float64(shadeSlots-1)))
		out[slots[i]] = ordered[idx]
		taken[idx] = true
	}

	pool := make([]palette.Color, 0, n-shadeSlots)
	for i, c := range ordered {
		if !taken[i] {
			pool = append(pool, c)
		}
	}
	sort.Sort(bySaturation(pool))
	for j, c := range pool {
		out[slots[shadeSlots+j]] = c
	}

	return out, nil
}
