package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/floralqr/internal/notify"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
)

// SetRawInput replaces the URL field value.
func (m *Model) SetRawInput(text string) {
	m.rawInput = text
	if m.urlInput.Value() != text {
		m.urlInput.SetValue(text)
	}
}

// Generate commits the current input and renders it. Whitespace-only input
// leaves the committed content untouched.
func (m *Model) Generate() tea.Cmd {
	log := m.actionLog("generate")

	if strings.TrimSpace(m.rawInput) == "" {
		log.Debug("generate rejected: empty input")
		return m.notice.Show(MsgInputRequired, notify.KindError)
	}

	artifact, err := m.renderer.Render(m.rawInput, m.size.Pixels(), m.foreground)
	if err != nil {
		log.Error(err, "render failed")
		return m.notice.Show(MsgRenderFailed, notify.KindError)
	}

	m.committed = m.rawInput
	m.artifact = artifact
	log.WithFields(map[string]any{"size": m.size.String(), "modules": artifact.ModuleCount()}).Info("artifact rendered")
	return m.notice.Show(MsgGenerated, notify.KindSuccess)
}

// SetSizePreset selects a size. A nil preset is a deselect and is ignored.
func (m *Model) SetSizePreset(preset *qrcode.SizePreset) tea.Cmd {
	if preset == nil {
		return nil
	}
	if *preset == m.size {
		return nil
	}
	m.size = *preset
	return m.rerender()
}

// SetForegroundColor applies a hex colour. Values the picker cannot parse are
// ignored and the previous colour stays.
func (m *Model) SetForegroundColor(value string) tea.Cmd {
	next, err := qrcode.ParseHexColor(value)
	if err != nil {
		return nil
	}
	if next == m.foreground {
		return nil
	}
	m.foreground = next
	return m.rerender()
}

// Copy writes the live URL field value to the clipboard. Note that it copies
// the raw input, not the committed content.
func (m *Model) Copy() tea.Cmd {
	m.actionLog("copy").Debug("copy requested")
	if m.strictClipboard {
		return copyCmd(m.clipboard, m.rawInput, m.notice.Seq())
	}
	show := m.notice.Show(MsgCopied, notify.KindSuccess)
	return tea.Batch(show, copyCmd(m.clipboard, m.rawInput, m.notice.Seq()))
}

// Download exports the current artifact as a PNG file.
func (m *Model) Download() tea.Cmd {
	log := m.actionLog("download")

	if m.artifact == nil {
		log.Debug("download rejected: no artifact")
		return m.notice.Show(MsgArtifactRequired, notify.KindError)
	}
	if m.downloading {
		return nil
	}

	m.downloading = true
	log.Debug("download started")
	return tea.Batch(m.spinner.Tick, downloadCmd(m.downloader, m.artifact))
}

// DismissNotification hides the notification immediately.
func (m *Model) DismissNotification() {
	m.notice.Dismiss()
}

// rerender redraws an existing artifact after size or colour changes.
func (m *Model) rerender() tea.Cmd {
	if m.committed == "" {
		return nil
	}
	artifact, err := m.renderer.Render(m.committed, m.size.Pixels(), m.foreground)
	if err != nil {
		m.actionLog("rerender").Error(err, "render failed")
		return m.notice.Show(MsgRenderFailed, notify.KindError)
	}
	m.artifact = artifact
	return nil
}

// handleCopyResult reports a finished copy. A result that arrives after
// another action has shown its own message is logged but not displayed.
func (m *Model) handleCopyResult(msg CopyResultMsg) tea.Cmd {
	log := m.actionLog("copy")
	if msg.Err != nil {
		log.Error(msg.Err, "clipboard write failed")
	} else {
		log.Info("copied to clipboard")
	}

	if !m.strictClipboard || msg.Seq != m.notice.Seq() {
		return nil
	}
	if msg.Err != nil {
		return m.notice.Show(MsgCopyFailed, notify.KindError)
	}
	return m.notice.Show(MsgCopied, notify.KindSuccess)
}

func (m *Model) handleDownloadResult(msg DownloadResultMsg) tea.Cmd {
	m.downloading = false
	log := m.actionLog("download")
	if msg.Err != nil {
		log.Error(msg.Err, "download failed")
		return m.notice.Show(MsgDownloadFailed, notify.KindError)
	}

	log.WithFields(map[string]any{"path": msg.Path}).Info("download saved")
	return m.notice.Show(MsgDownloaded, notify.KindSuccess)
}
