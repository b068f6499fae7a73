package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
	"github.com/alexisbeaulieu97/floralqr/internal/raster"
)

type generateOptions struct {
	Size    string
	Color   string
	Output  string
	DataURI bool
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <content>",
		Short: "Render a QR code to a PNG without the form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, "generate", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			return runGenerate(cmd.Context(), cmd.OutOrStdout(), app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Size, "size", "s", "", "Size preset: small, medium or large")
	cmd.Flags().StringVar(&opts.Color, "color", "", "Foreground colour as #RRGGBB")
	cmd.Flags().StringVar(&opts.Output, "output", "", "PNG file to write (default <output-dir>/<download.filename>)")
	cmd.Flags().BoolVar(&opts.DataURI, "data-uri", false, "Print the PNG as a data URI instead of saving it")

	return cmd
}

func runGenerate(ctx context.Context, out io.Writer, app *AppContext, content string, opts generateOptions) error {
	cfg := app.Config
	log := app.Logger.Action("generate")

	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content must not be blank")
	}

	sizeName := opts.Size
	if sizeName == "" {
		sizeName = cfg.DefaultSize
	}
	size, err := qrcode.ParseSizePreset(sizeName)
	if err != nil {
		return err
	}

	colour := opts.Color
	if colour == "" {
		colour = cfg.BrandColor
	}
	fg, err := qrcode.ParseHexColor(colour)
	if err != nil {
		return fmt.Errorf("invalid colour %q: %w", colour, err)
	}

	artifact, err := qrcode.NewRenderer().Render(content, size.Pixels(), fg)
	if err != nil {
		log.Error(err, "render failed")
		return err
	}
	log.WithFields(map[string]any{"size": size.String(), "modules": artifact.ModuleCount()}).Debug("artifact rendered")

	if opts.DataURI {
		data, err := raster.New(cfg.Download.Padding).Export(artifact)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, raster.PNGDataURI(data))
		return nil
	}

	dir, filename := app.OutputDir, cfg.Download.Filename
	if opts.Output != "" {
		dir, filename = filepath.Split(opts.Output)
		if dir == "" {
			dir = "."
		}
	}

	downloader, err := app.downloaderAt(dir, filename)
	if err != nil {
		return err
	}
	path, err := downloader.Download(ctx, artifact)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, path)
	return nil
}
