// Package scheme assigns representative colors to the named Base16/Base24
// slots, adjusts washed-out accents, and serializes the finished scheme.
package scheme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// System fixes the slot layout of a scheme.
type System string

const (
	Base16 System = "base16"
	Base24 System = "base24"
)

// Variant governs the ordering direction of the shade ramp.
type Variant string

const (
	Dark  Variant = "dark"
	Light Variant = "light"
)

var (
	// ErrUnsupportedSystem is returned for a System with no defined slot
	// layout.
	ErrUnsupportedSystem = errors.New("unsupported scheme system")
	// ErrUnsupportedVariant is returned for a Variant with no defined
	// ordering rule.
	ErrUnsupportedVariant = errors.New("unsupported scheme variant")
)

// Slot names one position in a scheme: base00..base0F for Base16,
// base00..base17 for Base24.
type Slot string

// shadeSlots is the number of slots forming the background-to-foreground
// tonal ramp (base00-base07); everything after is an accent slot.
const shadeSlots = 8

// ParseSystem maps a string onto a System.
func ParseSystem(s string) (System, error) {
	switch System(strings.ToLower(s)) {
	case Base16:
		return Base16, nil
	case Base24:
		return Base24, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSystem, s)
}

// ParseVariant maps a string onto a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(s)) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedVariant, s)
}

// Slots returns the full, ordered slot list for the system.
func (s System) Slots() ([]Slot, error) {
	var n int
	switch s {
	case Base16:
		n = 16
	case Base24:
		n = 24
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSystem, string(s))
	}

	slots := make([]Slot, n)
	for i := range slots {
		slots[i] = Slot(fmt.Sprintf("base%02X", i))
	}
	return slots, nil
}

// Accent reports whether the slot is an accent slot rather than part of
// the shade ramp.
func (s Slot) Accent() bool {
	v, err := strconv.ParseUint(strings.TrimPrefix(string(s), "base"), 16, 8)
	return err == nil && v >= shadeSlots
}
