package form

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floralqr/internal/clipboard"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
)

const (
	copyTimeout     = 2 * time.Second
	downloadTimeout = 30 * time.Second
)

// Downloader exports an artifact to a PNG file and returns where it was saved.
type Downloader interface {
	Download(ctx context.Context, a *qrcode.Artifact) (string, error)
}

// copyCmd writes text to the clipboard off the update loop.
func copyCmd(w clipboard.Writer, text string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()

		err := w.WriteText(ctx, text)
		return CopyResultMsg{Text: text, Seq: seq, Err: err}
	}
}

// downloadCmd rasterises and saves the artifact off the update loop.
func downloadCmd(d Downloader, artifact *qrcode.Artifact) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
		defer cancel()

		path, err := d.Download(ctx, artifact)
		return DownloadResultMsg{Path: path, Err: err}
	}
}
