package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/floralqr/internal/background"
	"github.com/alexisbeaulieu97/floralqr/internal/clipboard"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
	"github.com/alexisbeaulieu97/floralqr/internal/tui/form"
)

func runForm(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("the interactive form needs a terminal; use `floralqr generate` instead")
	}

	// Logging to the terminal would corrupt the form, so only --log-file is honoured.
	app, err := newAppContext(flags, "form", nil)
	if err != nil {
		return err
	}
	defer app.Close()

	m, err := buildFormModel(app, os.Stderr)
	if err != nil {
		return err
	}

	app.Logger.Info("launching form")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "form execution failed")
		return fmt.Errorf("failed to run form (session %s): %w", app.Logger.Session().ID, err)
	}
	app.Logger.Info("form closed")

	return nil
}

// buildFormModel wires configured services into the form. terminal receives
// OSC 52 clipboard sequences when that fallback is enabled.
func buildFormModel(app *AppContext, terminal io.Writer) (form.Model, error) {
	cfg := app.Config

	images, err := cfg.Background.BackdropImages()
	if err != nil {
		return form.Model{}, err
	}
	rotator, err := background.NewRotator(images, nil)
	if err != nil {
		return form.Model{}, err
	}

	if !cfg.Clipboard.OSC52 {
		terminal = nil
	}
	clip := clipboard.NewSystem(terminal, app.Logger)
	clip.Tmux = os.Getenv("TMUX") != ""

	downloader, err := app.Downloader()
	if err != nil {
		return form.Model{}, err
	}

	return form.NewModel(cfg, form.Deps{
		Renderer:   qrcode.NewRenderer(),
		Clipboard:  clip,
		Downloader: downloader,
		Rotator:    rotator,
		Logger:     app.Logger,
	})
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
