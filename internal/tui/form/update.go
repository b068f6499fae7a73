package form

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floralqr/internal/background"
	"github.com/alexisbeaulieu97/floralqr/internal/notify"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.downloading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Backdrop rotation
	case background.TickMsg:
		if !m.schedule.Accept(msg) {
			return m, nil
		}
		from := m.fade.Color()
		m.image = m.rotator.Next()
		m.fadeID++
		m.fade = background.NewFade(m.fadeID, from, m.image.Tint, m.fadeDuration)
		m.log.WithFields(map[string]any{
			"image":   m.image.Name(),
			"next_in": m.schedule.Interval().String(),
		}).Debug("backdrop rotated")
		return m, tea.Batch(m.schedule.Arm(), m.fade.Frame())

	case background.FrameMsg:
		if msg.ID != m.fade.ID() || !m.fade.Running() {
			return m, nil
		}
		m.fade.Step()
		return m, m.fade.Frame()

	// Notifications
	case notify.ExpiredMsg:
		m.notice.Expire(msg)
		return m, nil

	// Async action results
	case CopyResultMsg:
		return m, m.handleCopyResult(msg)

	case DownloadResultMsg:
		return m, m.handleDownloadResult(msg)
	}

	return m.updateFocusedInput(msg)
}

// handleKeyPress handles keyboard input for the focused field
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.DismissNotification()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.CycleSize):
		next := m.size.Next()
		return m, m.SetSizePreset(&next)

	case key.Matches(msg, m.keys.Copy):
		return m, m.Copy()

	case key.Matches(msg, m.keys.Download):
		return m, m.Download()

	case key.Matches(msg, m.keys.Generate):
		if m.focus == FieldColor {
			return m, m.SetForegroundColor(m.colorInput.Value())
		}
		return m, m.Generate()
	}

	if m.focus == FieldSize {
		return m.handleSizeKeys(msg)
	}

	return m.updateFocusedInput(msg)
}

// handleSizeKeys drives the exclusive size toggle while it has focus
func (m Model) handleSizeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := qrcode.Presets()

	switch {
	case key.Matches(msg, m.keys.SizeLeft):
		if m.size > presets[0] {
			prev := m.size - 1
			return m, m.SetSizePreset(&prev)
		}
		return m, nil

	case key.Matches(msg, m.keys.SizeRight):
		if m.size < presets[len(presets)-1] {
			next := m.size + 1
			return m, m.SetSizePreset(&next)
		}
		return m, nil
	}

	switch msg.String() {
	case "1", "2", "3":
		preset := presets[int(msg.String()[0]-'1')]
		return m, m.SetSizePreset(&preset)
	}

	return m, nil
}

// updateFocusedInput forwards a message to the focused text field and syncs
// form state from the new value.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FieldURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
		if value := m.urlInput.Value(); value != m.rawInput {
			m.SetRawInput(value)
		}
		return m, cmd

	case FieldColor:
		m.colorInput, cmd = m.colorInput.Update(msg)
		// Only complete #rrggbb values apply while typing; enter applies the rest.
		if value := m.colorInput.Value(); len(value) == len("#rrggbb") {
			return m, tea.Batch(cmd, m.SetForegroundColor(value))
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) setFocus(field Field) tea.Cmd {
	m.focus = field
	m.urlInput.Blur()
	m.colorInput.Blur()

	switch field {
	case FieldURL:
		return m.urlInput.Focus()
	case FieldColor:
		return m.colorInput.Focus()
	}
	return nil
}
