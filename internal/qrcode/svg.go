package qrcode

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// buildSVG draws one unit square per dark module inside an n×n view box that
// is scaled to size pixels. Horizontal runs are merged to keep the path short.
func buildSVG(modules [][]bool, size int, fg color.RGBA) string {
	n := len(modules)

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		size, size, n, n,
	)
	fmt.Fprintf(&sb, `<rect x="0" y="0" width="%d" height="%d" fill="#FFFFFF"/>`, n, n)

	var path strings.Builder
	for y, row := range modules {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&path, "M%d %dh%dv1h-%dz", start, y, x-start, x-start)
		}
	}
	if path.Len() > 0 {
		fmt.Fprintf(&sb, `<path fill="%s" d="%s"/>`, HexColor(fg), path.String())
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// HexColor formats c as an upper-case #RRGGBB string.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses #RGB or #RRGGBB (the leading # is optional) into an
// opaque colour.
func ParseHexColor(value string) (color.RGBA, error) {
	value = strings.TrimSpace(value)
	if value != "" && !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	if len(value) != 4 && len(value) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", value)
	}

	c, err := colorful.Hex(value)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q: %w", value, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
