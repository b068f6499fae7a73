package download

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
	"github.com/alexisbeaulieu97/floralqr/internal/raster"
	floralerrors "github.com/alexisbeaulieu97/floralqr/pkg/errors"
)

type stubExporter struct {
	data []byte
	err  error
}

func (s stubExporter) Export(*qrcode.Artifact) ([]byte, error) {
	return s.data, s.err
}

func testArtifact(t *testing.T) *qrcode.Artifact {
	t.Helper()
	a, err := qrcode.NewRenderer().Render("https://example.com", 180, color.RGBA{A: 0xFF})
	require.NoError(t, err)
	return a
}

func TestNewRequiresExporter(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestDownloadWritesFixedFilename(t *testing.T) {
	fs := memfs.New()
	d, err := New(Options{Filesystem: fs, Exporter: raster.New(raster.DefaultPadding)})
	require.NoError(t, err)

	path, err := d.Download(context.Background(), testArtifact(t))
	require.NoError(t, err)
	assert.Equal(t, "/floral_qrcode.png", path)
	assert.Equal(t, DefaultFilename, d.Filename())

	data, err := util.ReadFile(fs, DefaultFilename)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 180+2*raster.DefaultPadding, cfg.Width)
}

func TestDownloadOverwritesPreviousFile(t *testing.T) {
	fs := memfs.New()
	d, err := New(Options{Filesystem: fs, Exporter: stubExporter{data: []byte("first")}})
	require.NoError(t, err)
	_, err = d.Download(context.Background(), testArtifact(t))
	require.NoError(t, err)

	d.exporter = stubExporter{data: []byte("second")}
	_, err = d.Download(context.Background(), testArtifact(t))
	require.NoError(t, err)

	data, err := util.ReadFile(fs, DefaultFilename)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestDownloadPropagatesExportFailure(t *testing.T) {
	boom := floralerrors.NewDownloadError(floralerrors.StageRasterize, errors.New("boom"))
	fs := memfs.New()
	d, err := New(Options{Filesystem: fs, Exporter: stubExporter{err: boom}})
	require.NoError(t, err)

	_, err = d.Download(context.Background(), testArtifact(t))
	require.ErrorIs(t, err, boom)

	_, statErr := fs.Stat(DefaultFilename)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownloadHonoursCancelledContext(t *testing.T) {
	d, err := New(Options{Filesystem: memfs.New(), Exporter: stubExporter{data: []byte("x")}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.Download(ctx, testArtifact(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewDirectoryCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	d, err := NewDirectory(dir, "", stubExporter{data: []byte("png")}, nil)
	require.NoError(t, err)

	path, err := d.Download(context.Background(), testArtifact(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
}

func TestNewDirectoryUsesGivenFilename(t *testing.T) {
	dir := t.TempDir()

	d, err := NewDirectory(dir, "custom.png", stubExporter{data: []byte("png")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom.png", d.Filename())

	path, err := d.Download(context.Background(), testArtifact(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom.png"), path)
}

func TestNewDirectoryRejectsFileAsDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewDirectory(file, "", stubExporter{}, nil)
	require.Error(t, err)
}
