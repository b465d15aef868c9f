package scheme

import (
	"testing"

	"github.com/aswenson/schemer/palette"
)

func TestBoostLiftsWashedOutColor(t *testing.T) {
	t.Parallel()

	washed := palette.FromHSL(200, 0.2, 0.9)
	opts := AdjustOptions{}.normalized()
	if Vividness(washed) >= opts.MinVividness {
		t.Fatalf("fixture is already vivid enough: %v", Vividness(washed))
	}

	got := boost(washed, opts)
	if Vividness(got) < opts.MinVividness {
		t.Fatalf("vividness after boost = %v, want >= %v", Vividness(got), opts.MinVividness)
	}
}

func TestBoostLeavesVividColorAlone(t *testing.T) {
	t.Parallel()

	vivid := palette.FromHSL(10, 0.9, 0.5)
	got := boost(vivid, AdjustOptions{}.normalized())
	if got != vivid {
		t.Fatalf("vivid color changed from %v to %v", vivid, got)
	}
}

func TestBoostKeepsGrayAchromatic(t *testing.T) {
	t.Parallel()

	gray := palette.FromHSL(0, 0, 0.2)
	got := boost(gray, AdjustOptions{}.normalized())
	if got.Saturation() != 0 {
		t.Fatalf("gray gained saturation: %v", got)
	}
	if got.R != got.G || got.G != got.B {
		t.Fatalf("gray is no longer gray: %v", got)
	}
	if got.Lightness() <= gray.Lightness() {
		t.Fatal("gray lightness was not moved toward the mid range")
	}
}

func TestAdjustAccentsNeverTouchesShades(t *testing.T) {
	t.Parallel()

	slots, err := Base16.Slots()
	if err != nil {
		t.Fatalf("slots: %v", err)
	}

	// Every slot gets the same washed-out color, so any shade slot that
	// changes gives the mutation away.
	washed := palette.FromHSL(200, 0.2, 0.9)
	pal := make(map[Slot]palette.Color, len(slots))
	for _, slot := range slots {
		pal[slot] = washed
	}

	adjustAccents(pal, AdjustOptions{})

	for _, slot := range slots {
		if slot.Accent() {
			if pal[slot] == washed {
				t.Fatalf("accent slot %s was not adjusted", slot)
			}
			continue
		}
		if pal[slot] != washed {
			t.Fatalf("shade slot %s was adjusted", slot)
		}
	}
}

func TestVividnessPenalizesExtremeLightness(t *testing.T) {
	t.Parallel()

	nearWhite := palette.FromHSL(120, 1, 0.98)
	mid := palette.FromHSL(120, 1, 0.5)
	if Vividness(nearWhite) >= Vividness(mid) {
		t.Fatal("near-white color should score below a mid-lightness color")
	}
	if Vividness(palette.Color{R: 0, G: 0, B: 0}) != 0 {
		t.Fatal("pure black should have zero vividness")
	}
}
