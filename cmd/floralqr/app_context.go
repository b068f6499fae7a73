package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"


	"github.com/alexisbeaulieu97/floralqr/internal/config"
	"github.com/alexisbeaulieu97/floralqr/internal/download"
	"github.com/alexisbeaulieu97/floralqr/internal/logger"
	"github.com/alexisbeaulieu97/floralqr/internal/raster"
)

// AppContext bundles the configuration and services shared by commands.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	OutputDir string

	closers []io.Closer
}

// newAppContext loads configuration and builds the session logger. Logs go to
// --log-file when set, otherwise to fallback when --verbose is on.
func newAppContext(flags *rootFlags, command string, fallback io.Writer) (*AppContext, error) {
	app := &AppContext{}

	path, allowMissing := flags.configPath, false
	if path == "" {
		path, allowMissing = defaultConfigPath(), true
	}
	cfg, err := config.Load(path, allowMissing)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	writer := io.Discard
	switch {
	case flags.logFile != "":
		file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closers = append(app.closers, file)
		writer = file
	case flags.verbose && fallback != nil:
		writer = fallback
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: flags.logFile == "",
		Writer:        writer,
		Session:       logger.NewSession(command),
	})
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	app.Logger = log

	app.OutputDir = flags.outputDir
	if app.OutputDir == "" {
		app.OutputDir = cfg.Download.OutputDir
	}
	if app.OutputDir == "" {
		app.OutputDir = "."
	}

	return app, nil
}

// Downloader builds the PNG downloader for the resolved output directory.
func (a *AppContext) Downloader() (*download.Downloader, error) {
	return a.downloaderAt(a.OutputDir, a.Config.Download.Filename)
}

func (a *AppContext) downloaderAt(dir, filename string) (*download.Downloader, error) {
	return download.NewDirectory(dir, filename, raster.New(a.Config.Download.Padding), a.Logger)
}

// Close releases resources opened for the session.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floralqr", "config.yaml")
}
