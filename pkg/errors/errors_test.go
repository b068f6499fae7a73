package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("floralqr.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "floralqr.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "floralqr.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("background.images[0].tint", "not a hex colour", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "background.images[0].tint", validationErr.Field)
	require.Contains(t, err.Error(), "not a hex colour")
}

func TestRenderErrorIncludesSize(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("content too long to encode")
	err := NewRenderError("https://example.com", 240, underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, 240, renderErr.Size)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "240px")
}

func TestClipboardErrorIncludesBackend(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no clipboard utility")
	err := NewClipboardError("system", underlying)

	var clipErr *ClipboardError
	require.ErrorAs(t, err, &clipErr)
	require.Equal(t, "system", clipErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestDownloadErrorIncludesStage(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad svg")
	err := NewDownloadError(StageRasterize, underlying)

	var downloadErr *DownloadError
	require.ErrorAs(t, err, &downloadErr)
	require.Equal(t, StageRasterize, downloadErr.Stage)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "rasterize")
}
