package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/floralqr/internal/background"
	"github.com/alexisbeaulieu97/floralqr/internal/download"
	"github.com/alexisbeaulieu97/floralqr/internal/notify"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
	"github.com/alexisbeaulieu97/floralqr/internal/raster"
)

// DefaultBrandColor is the default foreground colour of generated codes.
const DefaultBrandColor = "#F9A825"

// Default returns the built-in configuration.
func Default() *Config {
	images := background.DefaultImages()
	entries := make([]Image, 0, len(images))
	for _, img := range images {
		entries = append(entries, Image{URL: img.URL, Tint: img.Tint.Hex()})
	}

	return &Config{
		BrandColor:  DefaultBrandColor,
		DefaultSize: qrcode.DefaultSize.String(),
		Background: Background{
			Interval: background.DefaultInterval,
			Fade:     background.DefaultFade,
			Images:   entries,
		},
		Notification: Notification{Duration: notify.DefaultDuration},
		Download: Download{
			Filename: download.DefaultFilename,
			Padding:  raster.DefaultPadding,
		},
		Clipboard: Clipboard{StrictErrors: true, OSC52: true},
	}
}

// BackdropImages converts the configured images into rotator entries.
func (b Background) BackdropImages() ([]background.Image, error) {
	out := make([]background.Image, 0, len(b.Images))
	for i, img := range b.Images {
		tint, err := qrcode.ParseHexColor(img.Tint)
		if err != nil {
			return nil, fmt.Errorf("background.images[%d].tint: %w", i, err)
		}
		c, _ := colorful.MakeColor(tint)
		out = append(out, background.Image{URL: img.URL, Tint: c})
	}
	return out, nil
}
