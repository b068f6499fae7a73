package form

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#F9A825") // Marigold
	secondaryColor = lipgloss.Color("#FFF9C4") // Cream
	textColor      = lipgloss.Color("#FFFFFF")
	errorColor     = lipgloss.Color("#C62828")
	mutedColor     = lipgloss.Color("245")
	cardColor      = lipgloss.Color("#FFFDF5")

	// Card holding every control
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Background(cardColor).
			Foreground(lipgloss.Color("#5D4037")).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			Width(40)

	focusedInputStyle = inputStyle.
				BorderForeground(primaryColor)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 3).
			MarginTop(1).
			MarginBottom(1)

	// Size toggle
	toggleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 2)

	toggleSelectedStyle = toggleStyle.
				Foreground(primaryColor).
				Background(secondaryColor)

	toggleFocusedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(primaryColor)

	toggleBlurredStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.HiddenBorder())

	swatchBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000"))

	// Artifact frame
	artifactFrameStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Background(lipgloss.Color("#FFFFFF")).
				Padding(1, 2).
				MarginTop(1)

	actionStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Background(secondaryColor).
			Padding(0, 1)

	captionStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Notification banners
	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(secondaryColor).
			Padding(0, 2).
			MarginTop(1)

	noticeErrorStyle = noticeStyle.
				Foreground(errorColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)
