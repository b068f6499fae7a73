package qrcode

import (
	"image/color"

	goqrcode "github.com/skip2/go-qrcode"

	floralerrors "github.com/alexisbeaulieu97/floralqr/pkg/errors"
)

// Renderer turns text into a vector QR artifact. Implementations must be pure:
// the same inputs always produce an equivalent artifact.
type Renderer interface {
	Render(content string, size int, fg color.Color) (*Artifact, error)
}

// Artifact is a rendered QR code together with the inputs that produced it.
type Artifact struct {
	Content    string
	Size       int
	Foreground color.RGBA
	// Modules holds the dark/light module grid without a quiet zone.
	Modules [][]bool
	// SVG is the serialised vector form of the artifact.
	SVG string
}

// Dimensions returns the natural pixel size of the vector artifact.
func (a *Artifact) Dimensions() (int, int) {
	if a == nil {
		return 0, 0
	}
	return a.Size, a.Size
}

// ModuleCount returns the number of modules along one edge.
func (a *Artifact) ModuleCount() int {
	if a == nil {
		return 0
	}
	return len(a.Modules)
}

// SkipRenderer renders artifacts using github.com/skip2/go-qrcode.
type SkipRenderer struct {
	Level goqrcode.RecoveryLevel
}

// NewRenderer returns the default renderer using low (L) error correction.
func NewRenderer() *SkipRenderer {
	return &SkipRenderer{Level: goqrcode.Low}
}

// Render encodes content at the given edge length and foreground colour.
func (r *SkipRenderer) Render(content string, size int, fg color.Color) (*Artifact, error) {
	if size <= 0 {
		size = DefaultSize.Pixels()
	}

	code, err := goqrcode.New(content, r.Level)
	if err != nil {
		return nil, floralerrors.NewRenderError(content, size, err)
	}
	code.DisableBorder = true

	modules := code.Bitmap()
	foreground := toRGBA(fg)

	return &Artifact{
		Content:    content,
		Size:       size,
		Foreground: foreground,
		Modules:    modules,
		SVG:        buildSVG(modules, size, foreground),
	}, nil
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

var _ Renderer = (*SkipRenderer)(nil)
