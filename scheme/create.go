package scheme

import (
	stdimage "image"
	"os"
	"strings"

	img "github.com/aswenson/schemer/image"
	"github.com/aswenson/schemer/palette"
)

// Params carries everything CreateFromImage needs: the source image, the
// scheme metadata, and the pipeline tunables. Metadata passes through into
// the serialized scheme unchanged.
type Params struct {
	// Image is the decoded pixel grid. When nil, Path is loaded instead.
	Image stdimage.Image
	Path  string

	Name        string
	Slug        string // defaults to a slugified Name
	Author      string
	Description string

	System  System
	Variant Variant

	// Verbose prints a diagnostic report to stdout. It never affects the
	// resulting scheme.
	Verbose bool

	Sample img.SampleOptions
	Reduce palette.ReduceOptions
	Adjust AdjustOptions
}

// Scheme is a finished slot-to-color mapping plus its metadata. It is
// immutable once produced.
type Scheme struct {
	Name        string
	Slug        string
	Author      string
	Description string
	System      System
	Variant     Variant
	Palette     map[Slot]palette.Color
}

// CreateFromImage runs the full pipeline: sample the image's pixels,
// reduce them to one representative color per slot, assign the
// representatives to slots, and adjust washed-out accents. Either a
// complete, valid scheme is returned or an error; there is no partial
// result.
func CreateFromImage(p Params) (*Scheme, error) {
	slots, err := p.System.Slots()
	if err != nil {
		return nil, err
	}
	if _, err := ParseVariant(string(p.Variant)); err != nil {
		return nil, err
	}

	src := p.Image
	if src == nil {
		src, err = img.Load(p.Path)
		if err != nil {
			return nil, err
		}
	}

	weighted := img.Sample(src, p.Sample)
	reps, err := palette.Reduce(weighted, len(slots), p.Reduce)
	if err != nil {
		return nil, err
	}

	pal, err := assign(reps, p.System, p.Variant)
	if err != nil {
		return nil, err
	}
	adjustAccents(pal, p.Adjust)

	s := &Scheme{
		Name:        p.Name,
		Slug:        p.Slug,
		Author:      p.Author,
		Description: p.Description,
		System:      p.System,
		Variant:     p.Variant,
		Palette:     pal,
	}
	if s.Slug == "" {
		s.Slug = Slugify(s.Name)
	}

	if p.Verbose {
		s.Report(os.Stdout)
	}
	return s, nil
}

// Slugify lowercases s and collapses every non-alphanumeric run into a
// single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
