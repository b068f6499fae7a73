package form

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floralqr/internal/background"
	"github.com/alexisbeaulieu97/floralqr/internal/clipboard"
	"github.com/alexisbeaulieu97/floralqr/internal/config"
	"github.com/alexisbeaulieu97/floralqr/internal/logger"
	"github.com/alexisbeaulieu97/floralqr/internal/notify"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
)

// Field identifies which control has keyboard focus.
type Field int

const (
	FieldURL Field = iota
	FieldSize
	FieldColor
)

const fieldCount = 3

// Deps are the collaborators the form delegates to.
type Deps struct {
	Renderer   qrcode.Renderer
	Clipboard  clipboard.Writer
	Downloader Downloader
	Rotator    *background.Rotator
	Logger     *logger.Logger
}

// Model is the code generator form. It owns every piece of UI state.
type Model struct {
	renderer   qrcode.Renderer
	clipboard  clipboard.Writer
	downloader Downloader
	rotator    *background.Rotator
	log        *logger.Logger

	// Form state
	urlInput   textinput.Model
	colorInput textinput.Model
	focus      Field
	rawInput   string
	committed  string
	size       qrcode.SizePreset
	foreground color.RGBA
	artifact   *qrcode.Artifact

	// Backdrop state
	schedule     background.Schedule
	image        background.Image
	fade         background.Fade
	fadeID       int
	fadeDuration time.Duration

	// Feedback state
	notice          notify.Slot
	spinner         spinner.Model
	downloading     bool
	strictClipboard bool

	// Chrome
	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds the form from configuration and collaborators.
func NewModel(cfg *config.Config, deps Deps) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if deps.Renderer == nil {
		return Model{}, fmt.Errorf("form: renderer is required")
	}
	if deps.Clipboard == nil {
		return Model{}, fmt.Errorf("form: clipboard is required")
	}
	if deps.Downloader == nil {
		return Model{}, fmt.Errorf("form: downloader is required")
	}

	fg, err := qrcode.ParseHexColor(cfg.BrandColor)
	if err != nil {
		return Model{}, fmt.Errorf("form: brand colour %q: %w", cfg.BrandColor, err)
	}
	size, err := qrcode.ParseSizePreset(cfg.DefaultSize)
	if err != nil {
		return Model{}, fmt.Errorf("form: %w", err)
	}

	rotator := deps.Rotator
	if rotator == nil {
		rotator, err = background.NewRotator(background.DefaultImages(), nil)
		if err != nil {
			return Model{}, err
		}
	}

	urlInput := textinput.New()
	urlInput.Placeholder = placeholderURL
	urlInput.Prompt = "› "
	urlInput.Focus()

	colorInput := textinput.New()
	colorInput.Placeholder = placeholderColour
	colorInput.Prompt = "# "
	colorInput.CharLimit = 7

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	colorInput.SetValue(qrcode.HexColor(fg))

	image := rotator.Current()

	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	return Model{
		renderer:        deps.Renderer,
		clipboard:       deps.Clipboard,
		downloader:      deps.Downloader,
		rotator:         rotator,
		log:             log,
		urlInput:        urlInput,
		colorInput:      colorInput,
		focus:           FieldURL,
		size:            size,
		foreground:      fg,
		schedule:        background.NewSchedule(cfg.Background.Interval),
		image:           image,
		fade:            background.StaticFade(image.Tint),
		fadeDuration:    cfg.Background.Fade,
		notice:          notify.NewSlot(cfg.Notification.Duration),
		spinner:         s,
		strictClipboard: cfg.Clipboard.StrictErrors,
		keys:            defaultKeyMap(),
		help:            help.New(),
	}, nil
}

// Init starts the backdrop rotation and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.schedule.Arm())
}

// RawInput returns the live value of the URL field.
func (m Model) RawInput() string { return m.rawInput }

// CommittedContent returns the content frozen by the last successful generate.
func (m Model) CommittedContent() string { return m.committed }

// Artifact returns the rendered code, or nil before the first generation.
func (m Model) Artifact() *qrcode.Artifact { return m.artifact }

// SizePreset returns the selected size.
func (m Model) SizePreset() qrcode.SizePreset { return m.size }

// ForegroundColor returns the selected colour as #RRGGBB.
func (m Model) ForegroundColor() string { return qrcode.HexColor(m.foreground) }

// Background returns the backdrop on display.
func (m Model) Background() background.Image { return m.image }

// Notification returns the notification slot.
func (m Model) Notification() notify.Slot { return m.notice }

// Focus returns the focused field.
func (m Model) Focus() Field { return m.focus }

// Downloading reports whether a download is in flight.
func (m Model) Downloading() bool { return m.downloading }

// Schedule returns the rotation handle.
func (m Model) Schedule() background.Schedule { return m.schedule }

// Teardown cancels the rotation timer. It is called when the form quits.
func (m *Model) Teardown() {
	m.schedule.Cancel()
	m.quitting = true
}

func (m *Model) actionLog(action string) *logger.Logger {
	return m.log.Action(action)
}
