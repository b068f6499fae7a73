// Package clipboard writes plain text to the user's clipboard.
package clipboard

import (
	"context"
	"errors"
	"io"

	sysclip "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"

	"github.com/alexisbeaulieu97/floralqr/internal/logger"
	floralerrors "github.com/alexisbeaulieu97/floralqr/pkg/errors"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// ErrUnsupported is returned when no clipboard backend is available.
var ErrUnsupported = errors.New("no clipboard backend available")

// System writes through the OS clipboard utilities and falls back to an
// OSC 52 escape sequence, which most terminal emulators forward to the host
// clipboard even over SSH.
type System struct {
	// Terminal receives the OSC 52 sequence. Nil disables the fallback.
	Terminal io.Writer
	// Tmux wraps the sequence for tmux passthrough.
	Tmux bool

	writeAll    func(string) error
	unsupported bool
	log         *logger.Logger
}

// NewSystem returns a System clipboard with the given OSC 52 fallback target.
func NewSystem(terminal io.Writer, log *logger.Logger) *System {
	return &System{
		Terminal:    terminal,
		writeAll:    sysclip.WriteAll,
		unsupported: sysclip.Unsupported,
		log:         log,
	}
}

// WriteText implements Writer.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var systemErr error
	if !s.unsupported && s.writeAll != nil {
		if systemErr = s.writeAll(text); systemErr == nil {
			return nil
		}
		s.log.WithFields(map[string]any{"backend": "system"}).Error(systemErr, "clipboard write failed")
	} else {
		systemErr = ErrUnsupported
	}

	if s.Terminal == nil {
		return floralerrors.NewClipboardError("system", systemErr)
	}

	seq := osc52.New(text)
	if s.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.Terminal); err != nil {
		return floralerrors.NewClipboardError("osc52", errors.Join(systemErr, err))
	}
	s.log.WithFields(map[string]any{"backend": "osc52"}).Warn("clipboard written via terminal escape sequence")
	return nil
}

var _ Writer = (*System)(nil)
