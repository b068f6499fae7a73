package qrcode

import (
	"fmt"
	"strings"
)

// SizePreset is one of the three discrete artifact sizes offered by the form.
type SizePreset int

const (
	SizeSmall SizePreset = iota
	SizeMedium
	SizeLarge
)

// DefaultSize is used whenever no preset has been chosen.
const DefaultSize = SizeMedium

var presetPixels = map[SizePreset]int{
	SizeSmall:  120,
	SizeMedium: 180,
	SizeLarge:  240,
}

// Presets lists every preset in display order.
func Presets() []SizePreset {
	return []SizePreset{SizeSmall, SizeMedium, SizeLarge}
}

// Pixels returns the rendered edge length for the preset. Unknown values fall
// back to the medium size.
func (p SizePreset) Pixels() int {
	if px, ok := presetPixels[p]; ok {
		return px
	}
	return presetPixels[DefaultSize]
}

func (p SizePreset) String() string {
	switch p {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	case SizeMedium:
		return "medium"
	default:
		return fmt.Sprintf("SizePreset(%d)", int(p))
	}
}

// Next returns the following preset, wrapping from large back to small.
func (p SizePreset) Next() SizePreset {
	return SizePreset((int(p) + 1) % len(presetPixels))
}

// ParseSizePreset converts a preset name into a SizePreset.
func ParseSizePreset(name string) (SizePreset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "small":
		return SizeSmall, nil
	case "medium", "":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	default:
		return DefaultSize, fmt.Errorf("unknown size preset %q (want small, medium or large)", name)
	}
}
