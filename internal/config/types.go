package config

import (
	"time"
)

// Config is the root document of a floralqr configuration file.
type Config struct {
	BrandColor   string       `yaml:"brand_color" validate:"required,hex_color"`
	DefaultSize  string       `yaml:"default_size" validate:"required,size_preset"`
	Background   Background   `yaml:"background"`
	Notification Notification `yaml:"notification"`
	Download     Download     `yaml:"download"`
	Clipboard    Clipboard    `yaml:"clipboard"`
}

// Background configures the rotating backdrop.
type Background struct {
	Interval time.Duration `yaml:"interval" validate:"gt=0"`
	Fade     time.Duration `yaml:"fade" validate:"gte=0"`
	Images   []Image       `yaml:"images" validate:"required,min=1,dive"`
}

// Image is a single backdrop entry.
type Image struct {
	URL  string `yaml:"url" validate:"required,url"`
	Tint string `yaml:"tint" validate:"required,hex_color"`
}

// Notification configures the transient message surface.
type Notification struct {
	Duration time.Duration `yaml:"duration" validate:"gt=0"`
}

// Download configures PNG export.
type Download struct {
	Filename  string `yaml:"filename" validate:"required,endswith=.png,excludesall=/\\"`
	Padding   int    `yaml:"padding" validate:"gte=0,lte=512"`
	OutputDir string `yaml:"output_dir"`
}

// Clipboard configures copy behaviour.
type Clipboard struct {
	// StrictErrors surfaces clipboard failures to the user. When false every
	// copy reports success.
	StrictErrors bool `yaml:"strict_errors"`
	// OSC52 enables the terminal escape sequence fallback.
	OSC52 bool `yaml:"osc52"`
}
