package qrcode

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const previewQuietZone = 2

// Preview draws the artifact for a terminal using upper half blocks, packing
// two module rows into each text line. A light quiet zone surrounds the code
// so phone cameras can pick it up straight off the screen.
func Preview(a *Artifact) string {
	if a == nil || len(a.Modules) == 0 {
		return ""
	}

	dark := lipgloss.Color(HexColor(a.Foreground))
	light := lipgloss.Color("#FFFFFF")

	n := len(a.Modules)
	total := n + previewQuietZone*2
	at := func(x, y int) bool {
		x -= previewQuietZone
		y -= previewQuietZone
		if x < 0 || y < 0 || x >= n || y >= n {
			return false
		}
		return a.Modules[y][x]
	}
	pick := func(on bool) lipgloss.Color {
		if on {
			return dark
		}
		return light
	}

	lines := make([]string, 0, total/2+1)
	for y := 0; y < total; y += 2 {
		var line strings.Builder
		for x := 0; x < total; x++ {
			top := pick(at(x, y))
			bottom := light
			if y+1 < total {
				bottom = pick(at(x, y+1))
			}
			line.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render("▀"))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
