package form

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Generate  key.Binding
	NextField key.Binding
	PrevField key.Binding
	CycleSize key.Binding
	SizeLeft  key.Binding
	SizeRight key.Binding
	Copy      key.Binding
	Download  key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", labelGenerate),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		CycleSize: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "cycle size"),
		),
		SizeLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "smaller"),
		),
		SizeRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "larger"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", labelCopy),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", labelDownload),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Download, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.NextField, k.PrevField},
		{k.CycleSize, k.SizeLeft, k.SizeRight},
		{k.Copy, k.Download, k.Dismiss},
		{k.Help, k.Quit},
	}
}
