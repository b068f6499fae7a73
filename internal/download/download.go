// Package download saves exported QR artifacts as PNG files.
package download

import (
	"context"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/alexisbeaulieu97/floralqr/internal/logger"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
	floralerrors "github.com/alexisbeaulieu97/floralqr/pkg/errors"
)

// DefaultFilename is the name given to every downloaded artifact.
const DefaultFilename = "floral_qrcode.png"

// Exporter converts an artifact into PNG bytes.
type Exporter interface {
	Export(a *qrcode.Artifact) ([]byte, error)
}

// Downloader exports artifacts and writes them into a filesystem.
type Downloader struct {
	fs       billy.Filesystem
	exporter Exporter
	filename string
	log      *logger.Logger
}

// Options configures a Downloader.
type Options struct {
	// Filesystem receives the PNG. Defaults to the current directory.
	Filesystem billy.Filesystem
	Exporter   Exporter
	Filename   string
	Logger     *logger.Logger
}

// New builds a Downloader from Options.
func New(opts Options) (*Downloader, error) {
	if opts.Exporter == nil {
		return nil, fmt.Errorf("download: exporter is required")
	}

	fs := opts.Filesystem
	if fs == nil {
		fs = osfs.New(".")
	}
	filename := opts.Filename
	if filename == "" {
		filename = DefaultFilename
	}

	return &Downloader{
		fs:       fs,
		exporter: opts.Exporter,
		filename: filename,
		log:      opts.Logger,
	}, nil
}

// NewDirectory creates dir if needed and returns a Downloader saving
// filename into it on the OS filesystem. An empty filename uses DefaultFilename.
func NewDirectory(dir, filename string, exporter Exporter, log *logger.Logger) (*Downloader, error) {
	if err := ensureDir(dir); err != nil {
		return nil, fmt.Errorf("download: prepare %s: %w", dir, err)
	}
	return New(Options{Filesystem: osfs.New(dir), Exporter: exporter, Filename: filename, Logger: log})
}

// Download exports the artifact and stores it, returning the written path.
func (d *Downloader) Download(ctx context.Context, a *qrcode.Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := d.exporter.Export(a)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := d.save(data)
	if err != nil {
		return "", floralerrors.NewDownloadError(floralerrors.StageSave, err)
	}

	d.log.WithFields(map[string]any{"path": path, "bytes": len(data)}).Info("artifact downloaded")
	return path, nil
}

func (d *Downloader) save(data []byte) (string, error) {
	if err := util.WriteFile(d.fs, d.filename, data, 0o644); err != nil {
		return "", err
	}
	return d.fs.Join(d.fs.Root(), d.filename), nil
}

// Filename returns the name used for saved artifacts.
func (d *Downloader) Filename() string {
	return d.filename
}

func ensureDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
