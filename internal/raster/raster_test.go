package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
	floralerrors "github.com/alexisbeaulieu97/floralqr/pkg/errors"
)

func renderArtifact(t *testing.T, preset qrcode.SizePreset) *qrcode.Artifact {
	t.Helper()
	artifact, err := qrcode.NewRenderer().Render("https://example.com", preset.Pixels(), color.RGBA{A: 0xFF})
	require.NoError(t, err)
	return artifact
}

func TestExportDimensionsIncludePadding(t *testing.T) {
	for _, preset := range qrcode.Presets() {
		t.Run(preset.String(), func(t *testing.T) {
			data, err := New(DefaultPadding).Export(renderArtifact(t, preset))
			require.NoError(t, err)

			cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, "png", format)
			assert.Equal(t, preset.Pixels()+2*DefaultPadding, cfg.Width)
			assert.Equal(t, preset.Pixels()+2*DefaultPadding, cfg.Height)
		})
	}
}

func TestExportPaintsPaddingWhiteAndFinderDark(t *testing.T) {
	data, err := New(10).Export(renderArtifact(t, qrcode.SizeMedium))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "padding should be white")

	// The top-left finder pattern starts at the artifact origin.
	r, g, b, _ = img.At(13, 13).RGBA()
	assert.Less(t, r, uint32(0x4000))
	assert.Less(t, g, uint32(0x4000))
	assert.Less(t, b, uint32(0x4000))
}

func TestExportWithoutArtifactFails(t *testing.T) {
	_, err := New(0).Export(nil)

	var downloadErr *floralerrors.DownloadError
	require.ErrorAs(t, err, &downloadErr)
	assert.Equal(t, floralerrors.StageSerialize, downloadErr.Stage)
}

func TestExportMalformedSVGFailsAtRasterize(t *testing.T) {
	artifact := &qrcode.Artifact{Size: 120, SVG: "<svg><not-closed"}

	_, err := New(0).Export(artifact)

	var downloadErr *floralerrors.DownloadError
	require.ErrorAs(t, err, &downloadErr)
	assert.Equal(t, floralerrors.StageRasterize, downloadErr.Stage)
}

func TestRasterizeRejectsEmptyTarget(t *testing.T) {
	_, err := New(0).Rasterize([]byte("<svg/>"), 0, 10)
	require.Error(t, err)
}

func TestNewClampsNegativePadding(t *testing.T) {
	assert.Equal(t, 0, New(-4).Padding)
}

func TestDataURIRoundTrip(t *testing.T) {
	uri := DataURI("image/svg+xml", []byte("<svg/>"))
	assert.Equal(t, "data:image/svg+xml;base64,PHN2Zy8+", uri)

	data, mediaType, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", mediaType)
	assert.Equal(t, "<svg/>", string(data))
}

func TestDecodeDataURIErrors(t *testing.T) {
	tests := map[string]string{
		"no scheme":  "image/png;base64,AAAA",
		"no payload": "data:image/png;base64",
		"not base64": "data:image/png,AAAA",
		"bad data":   "data:image/png;base64,***",
	}

	for name, uri := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeDataURI(uri)
			require.Error(t, err)
		})
	}
}

func TestPNGDataURIPrefix(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQI=", PNGDataURI([]byte{1, 2}))
}
