package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/floralqr/internal/qrcode"
)

func TestViewShowsFormAndNotification(t *testing.T) {
	m, _ := newTestModel(t)
	m.SetRawInput("https://example.com")
	m.Generate()

	out := m.View()

	assert.Contains(t, out, MsgGenerated)
	assert.Contains(t, out, "180×180 px")
	assert.Contains(t, out, "#F9A825")
}

func TestViewHidesExpiredNotification(t *testing.T) {
	m, _ := newTestModel(t)
	m.Generate()
	require.Contains(t, m.View(), MsgInputRequired)

	m.DismissNotification()
	assert.NotContains(t, m.View(), MsgInputRequired)
}

func TestViewFillsWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})

	assert.NotEmpty(t, m.View())
}

func TestFocusCyclesThroughFields(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldSize, m.Focus())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldColor, m.Focus())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldURL, m.Focus())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldColor, m.Focus())
}

func TestSizeKeysWhileToggleFocused(t *testing.T) {
	m, _ := newTestModel(t)
	m.SetRawInput("https://example.com")
	m.Generate()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	assert.Equal(t, qrcode.SizeLarge, m.SizePreset())
	assert.Equal(t, 240, m.Artifact().Size)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, qrcode.SizeLarge, m.SizePreset(), "right stops at the largest preset")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, qrcode.SizeMedium, m.SizePreset())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	assert.Equal(t, qrcode.SizeSmall, m.SizePreset())
	assert.Equal(t, 120, m.Artifact().Size)
}

func TestCycleSizeFromAnyField(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, qrcode.SizeLarge, m.SizePreset())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, qrcode.SizeSmall, m.SizePreset())
}
