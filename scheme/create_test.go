package scheme

import (
	"errors"
	"image"
	"image/color"
	"regexp"
	"strings"
	"testing"

	"github.com/aswenson/schemer/palette"
)

// sixteenColorImage draws a 16x16 image holding exactly 16 well-separated
// colors, one 4x4 block each.
func sixteenColorImage() (*image.NRGBA, []palette.Color) {
	var colors []palette.Color
	for _, r := range []uint8{0, 255} {
		for _, g := range []uint8{0, 255} {
			for _, b := range []uint8{0, 90, 180, 255} {
				colors = append(colors, palette.Color{R: r, G: g, B: b})
			}
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i, c := range colors {
		x0 := (i % 4) * 4
		y0 := (i / 4) * 4
		fillRect(img, image.Rect(x0, y0, x0+4, y0+4), color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}
	return img, colors
}

func fillRect(img *image.NRGBA, rect image.Rectangle, fill color.NRGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
}

func TestCreateFromImagePermutesKnownColors(t *testing.T) {
	t.Parallel()

	img, want := sixteenColorImage()
	s, err := CreateFromImage(Params{
		Image:   img,
		Name:    "Test Scheme",
		Author:  "Test Author",
		System:  Base16,
		Variant: Dark,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(s.Palette) != 16 {
		t.Fatalf("palette has %d slots, want 16", len(s.Palette))
	}

	wantSet := make(map[palette.Color]bool, len(want))
	for _, c := range want {
		wantSet[c] = true
	}
	seen := make(map[palette.Color]bool, len(s.Palette))
	for slot, c := range s.Palette {
		if !wantSet[c] {
			t.Fatalf("slot %s holds %v, which is not a source color", slot, c)
		}
		if seen[c] {
			t.Fatalf("color %v assigned to more than one slot", c)
		}
		seen[c] = true
	}
}

func TestCreateFromImageShadeOrdering(t *testing.T) {
	t.Parallel()

	img, _ := sixteenColorImage()
	s, err := CreateFromImage(Params{
		Image:   img,
		Name:    "ordering",
		Author:  "a",
		System:  Base16,
		Variant: Dark,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	prev := -1.0
	for _, slot := range []Slot{"base00", "base01", "base02", "base03", "base04", "base05", "base06", "base07"} {
		l := s.Palette[slot].Lightness()
		if l < prev {
			t.Fatalf("dark shade ramp not increasing at %s", slot)
		}
		prev = l
	}
}

func TestCreateFromImageIsDeterministic(t *testing.T) {
	t.Parallel()

	img, _ := sixteenColorImage()
	params := Params{
		Image:   img,
		Name:    "Determinism",
		Author:  "a",
		System:  Base16,
		Variant: Dark,
	}

	first, err := CreateFromImage(params)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := CreateFromImage(params)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	a, err := first.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := second.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a != b {
		t.Fatal("identical input produced different schemes")
	}
}

func TestCreateFromSolidImageFails(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	fillRect(img, img.Bounds(), color.NRGBA{R: 30, G: 60, B: 90, A: 255})

	_, err := CreateFromImage(Params{
		Image:   img,
		Name:    "solid",
		Author:  "a",
		System:  Base16,
		Variant: Dark,
	})
	if !errors.Is(err, palette.ErrInsufficientColors) {
		t.Fatalf("err = %v, want ErrInsufficientColors", err)
	}
}

func TestCreateFromGrayscaleGradient(t *testing.T) {
	t.Parallel()

	// 16 columns, 16 distinct grays from black to white.
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		v := uint8(x * 17)
		fillRect(img, image.Rect(x, 0, x+1, 16), color.NRGBA{R: v, G: v, B: v, A: 255})
	}

	s, err := CreateFromImage(Params{
		Image:   img,
		Name:    "grays",
		Author:  "a",
		System:  Base16,
		Variant: Dark,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if s.Palette[Slot("base00")] != (palette.Color{R: 0, G: 0, B: 0}) {
		t.Fatalf("base00 = %v, want the darkest gray", s.Palette[Slot("base00")])
	}
	if s.Palette[Slot("base07")] != (palette.Color{R: 255, G: 255, B: 255}) {
		t.Fatalf("base07 = %v, want the lightest gray", s.Palette[Slot("base07")])
	}
}

func TestCreateFromImageBase24(t *testing.T) {
	t.Parallel()

	// 24 distinct, well-separated colors on a 24-block image.
	var colors []palette.Color
	for _, r := range []uint8{10, 128, 245} {
		for _, g := range []uint8{10, 245} {
			for _, b := range []uint8{10, 90, 170, 245} {
				colors = append(colors, palette.Color{R: r, G: g, B: b})
			}
		}
	}
	img := image.NewNRGBA(image.Rect(0, 0, 24, 4))
	for i, c := range colors {
		fillRect(img, image.Rect(i, 0, i+1, 4), color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}

	s, err := CreateFromImage(Params{
		Image:   img,
		Name:    "big",
		Author:  "a",
		System:  Base24,
		Variant: Light,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(s.Palette) != 24 {
		t.Fatalf("palette has %d slots, want 24", len(s.Palette))
	}
	if s.Palette[Slot("base00")].Lightness() < s.Palette[Slot("base07")].Lightness() {
		t.Fatal("light variant should order the shade ramp lightest first")
	}
}

func TestCreateFromImageUnsupportedSystem(t *testing.T) {
	t.Parallel()

	img, _ := sixteenColorImage()
	_, err := CreateFromImage(Params{Image: img, System: System("base32"), Variant: Dark})
	if !errors.Is(err, ErrUnsupportedSystem) {
		t.Fatalf("err = %v, want ErrUnsupportedSystem", err)
	}
}

func TestCreateFromImageUnsupportedVariant(t *testing.T) {
	t.Parallel()

	img, _ := sixteenColorImage()
	_, err := CreateFromImage(Params{Image: img, System: Base16, Variant: Variant("sepia")})
	if !errors.Is(err, ErrUnsupportedVariant) {
		t.Fatalf("err = %v, want ErrUnsupportedVariant", err)
	}
}

func TestCreateDefaultsSlug(t *testing.T) {
	t.Parallel()

	img, _ := sixteenColorImage()
	s, err := CreateFromImage(Params{
		Image:   img,
		Name:    "Ocean Sunset",
		Author:  "a",
		System:  Base16,
		Variant: Dark,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Slug != "ocean-sunset" {
		t.Fatalf("slug = %q, want ocean-sunset", s.Slug)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	img, _ := sixteenColorImage()
	s, err := CreateFromImage(Params{
		Image:       img,
		Name:        "Render Me",
		Author:      "someone",
		Description: "a test scheme",
		System:      Base16,
		Variant:     Dark,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := s.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`system: "base16"`,
		`name: "Render Me"`,
		`slug: "render-me"`,
		`author: "someone"`,
		`description: "a test scheme"`,
		`variant: "dark"`,
		"palette:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered scheme is missing %q:\n%s", want, out)
		}
	}

	hexLine := regexp.MustCompile(`base0[0-9A-F]: "[0-9a-f]{6}"`)
	if got := len(hexLine.FindAllString(out, -1)); got != 16 {
		t.Fatalf("found %d palette lines, want 16:\n%s", got, out)
	}
}

func TestReportWritesOneLinePerSlot(t *testing.T) {
	t.Parallel()

	img, _ := sixteenColorImage()
	s, err := CreateFromImage(Params{
		Image:   img,
		Name:    "report",
		Author:  "a",
		System:  Base16,
		Variant: Dark,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var b strings.Builder
	s.Report(&b)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	// 16 slot previews plus the accent separation line.
	if len(lines) != 17 {
		t.Fatalf("report has %d lines, want 17:\n%s", len(lines), b.String())
	}
	if !strings.Contains(lines[16], "deltaE") {
		t.Fatalf("missing separation diagnostic: %q", lines[16])
	}
}
