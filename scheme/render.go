package scheme

import (
	"github.com/flosch/pongo2"
)

// schemeTemplate emits the tinted-theming scheme document. Colors are six
// hex digits with no prefix; consumers add their own "#" where needed.
var schemeTemplate = pongo2.Must(pongo2.FromString(`{% autoescape off %}system: "{{ system }}"
name: "{{ name }}"
slug: "{{ slug }}"
author: "{{ author }}"
{% if description %}description: "{{ description }}"
{% endif %}variant: "{{ variant }}"
palette:
{% for entry in entries %}  {{ entry.Slot }}: "{{ entry.Hex }}"
{% endfor %}{% endautoescape %}`))

type paletteEntry struct {
	Slot string
	Hex  string
}

// Render serializes the scheme, slots in their canonical order.
func (s *Scheme) Render() (string, error) {
	slots, err := s.System.Slots()
	if err != nil {
		return "", err
	}

	entries := make([]paletteEntry, 0, len(slots))
	for _, slot := range slots {
		entries = append(entries, paletteEntry{
			Slot: string(slot),
			Hex:  s.Palette[slot].Hex(),
		})
	}

	return schemeTemplate.Execute(pongo2.Context{
		"system":      string(s.System),
		"name":        s.Name,
		"slug":        s.Slug,
		"author":      s.Author,
		"description": s.Description,
		"variant":     string(s.Variant),
		"entries":     entries,
	})
}
