// Package raster converts vector QR artifacts into PNG images.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
	floralerrors "github.com/alexisbeaulieu97/floralqr/pkg/errors"
)

const (
	svgMediaType = "image/svg+xml"
	pngMediaType = "image/png"
)

// DefaultPadding is the white margin added around the code on export.
const DefaultPadding = 16

// Rasterizer paints artifacts onto a pixel canvas and exports them as PNG.
type Rasterizer struct {
	Padding int
}

// New returns a Rasterizer with the supplied padding. Negative padding is
// treated as zero.
func New(padding int) *Rasterizer {
	if padding < 0 {
		padding = 0
	}
	return &Rasterizer{Padding: padding}
}

// Export runs the full pipeline: serialise the artifact to an SVG data URI,
// decode it, paint it onto a canvas of its natural size plus padding and
// encode the canvas as PNG.
func (r *Rasterizer) Export(a *qrcode.Artifact) ([]byte, error) {
	if a == nil || a.SVG == "" {
		return nil, floralerrors.NewDownloadError(floralerrors.StageSerialize, fmt.Errorf("no artifact to export"))
	}

	uri := DataURI(svgMediaType, []byte(a.SVG))
	svg, mediaType, err := DecodeDataURI(uri)
	if err != nil {
		return nil, floralerrors.NewDownloadError(floralerrors.StageSerialize, err)
	}
	if mediaType != svgMediaType {
		return nil, floralerrors.NewDownloadError(floralerrors.StageSerialize, fmt.Errorf("unexpected media type %q", mediaType))
	}

	w, h := a.Dimensions()
	img, err := r.Rasterize(svg, w, h)
	if err != nil {
		return nil, floralerrors.NewDownloadError(floralerrors.StageRasterize, err)
	}

	data, err := EncodePNG(img)
	if err != nil {
		return nil, floralerrors.NewDownloadError(floralerrors.StageEncode, err)
	}
	return data, nil
}

// Rasterize paints svg at w×h pixels, offset by the padding, on a white canvas.
func (r *Rasterizer) Rasterize(svg []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	pad := r.Padding
	canvasW, canvasH := w+pad*2, h+pad*2
	img := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	icon.SetTarget(float64(pad), float64(pad), float64(w), float64(h))
	scanner := rasterx.NewScannerGV(canvasW, canvasH, img, img.Bounds())
	dasher := rasterx.NewDasher(canvasW, canvasH, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNGDataURI wraps PNG bytes in a data URI.
func PNGDataURI(data []byte) string {
	return DataURI(pngMediaType, data)
}

// DataURI builds a base64 data URI for the given media type.
func DataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a base64 data URI and returns its payload and media type.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("data URI has no payload")
	}
	mediaType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return nil, "", fmt.Errorf("data URI is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data URI: %w", err)
	}
	return data, mediaType, nil
}
