package scheme

import (
	"fmt"
	"io"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/aswenson/schemer/palette"
)

var (
	// for RGB-to-Lab conversion in the diagnostics report
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// Report writes a truecolor preview of every slot and the minimum
// perceptual separation (CIE2000) between accent colors. Diagnostics
// only; the scheme itself is never changed.
func (s *Scheme) Report(w io.Writer) {
	slots, err := s.System.Slots()
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	accents := make([]chromath.Lab, 0, len(slots)-shadeSlots)
	for _, slot := range slots {
		c := s.Palette[slot]
		fmt.Fprintf(w, "\033[38;2;%d;%d;%dm%s = %s\033[0m\n", c.R, c.G, c.B, slot, c.Hex())
		if slot.Accent() {
			accents = append(accents, rgb2Lab(c))
		}
	}

	if minDE, ok := minPairwiseDeltaE(accents); ok {
		fmt.Fprintf(w, "min accent deltaE (CIE2000): %.2f\n", minDE)
	}
}

func rgb2Lab(c palette.Color) chromath.Lab {
	rgb := chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}

func minPairwiseDeltaE(labs []chromath.Lab) (float64, bool) {
	found := false
	best := 0.0
	for i := 0; i < len(labs); i++ {
		for j := i + 1; j < len(labs); j++ {
			de := deltae.CIE2000(labs[i], labs[j], klch)
			if !found || de < best {
				best = de
				found = true
			}
		}
	}
	return best, found
}
