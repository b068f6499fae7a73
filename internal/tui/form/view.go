package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/floralqr/internal/notify"
	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
)

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderCard()}
	if m.notice.Visible() {
		sections = append(sections, m.renderNotice())
	}
	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width == 0 || m.height == 0 {
		return content
	}

	tint := lipgloss.Color(m.fade.Color().Hex())
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(tint),
	)
}

// renderCard renders the form controls and the artifact
func (m Model) renderCard() string {
	rows := []string{
		titleStyle.Render("🌼 " + labelTitle),
		labelStyle.Render(labelURL),
		m.renderInput(m.urlInput.View(), m.focus == FieldURL),
		buttonStyle.Render(labelGenerate),
		m.renderSizeToggle(),
		m.renderColorPicker(),
	}

	if m.artifact != nil {
		rows = append(rows, m.renderArtifact())
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (m Model) renderInput(view string, focused bool) string {
	if focused {
		return focusedInputStyle.Render(view)
	}
	return inputStyle.Render(view)
}

// renderSizeToggle renders the exclusive three-way size selector
func (m Model) renderSizeToggle() string {
	labels := map[qrcode.SizePreset]string{
		qrcode.SizeSmall:  labelSizeSmall,
		qrcode.SizeMedium: labelSizeMedium,
		qrcode.SizeLarge:  labelSizeLarge,
	}

	buttons := make([]string, 0, len(labels))
	for _, preset := range qrcode.Presets() {
		style := toggleStyle
		if preset == m.size {
			style = toggleSelectedStyle
		}
		buttons = append(buttons, style.Render(labels[preset]))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	if m.focus == FieldSize {
		return toggleFocusedStyle.Render(row)
	}
	return toggleBlurredStyle.Render(row)
}

// renderColorPicker renders the swatch and, when focused, the hex field
func (m Model) renderColorPicker() string {
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.ForegroundColor())).
		Render("██")

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		"🎨 ",
		labelStyle.Render(labelColor), " ",
		swatchBorderStyle.Render("[")+swatch+swatchBorderStyle.Render("]"), " ",
		m.ForegroundColor(),
	)

	if m.focus != FieldColor {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		line,
		captionStyle.Render(labelColorPicker),
		m.renderInput(m.colorInput.View(), true),
	)
}

// renderArtifact renders the QR preview with its copy/download affordances
func (m Model) renderArtifact() string {
	w, h := m.artifact.Dimensions()

	actions := []string{
		actionStyle.Render("ctrl+y " + labelCopy),
		actionStyle.Render("ctrl+d " + labelDownload),
	}
	if m.downloading {
		actions = append(actions, m.spinner.View()+" "+labelDownloading)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(actions, " ")),
		"",
		qrcode.Preview(m.artifact),
		"",
		captionStyle.Render(fmt.Sprintf("%d×%d px · %s", w, h, m.ForegroundColor())),
	)
	return artifactFrameStyle.Render(body)
}

// renderNotice renders the transient notification banner
func (m Model) renderNotice() string {
	if m.notice.Kind() == notify.KindError {
		return noticeErrorStyle.Render("✗ " + m.notice.Message())
	}
	return noticeStyle.Render("✓ " + m.notice.Message())
}

// renderFooter renders the backdrop caption and key help
func (m Model) renderFooter() string {
	caption := captionStyle.Render(fmt.Sprintf("%s %s", labelBackdrop, m.image.Name()))
	return lipgloss.JoinVertical(lipgloss.Center, caption, m.help.View(m.keys))
}
