package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a rendered surface and its top-left position in the base frame.
type Layer struct {
	Content string
	Pos     Point
}

// Composite paints a layer over a base frame by ANSI-aware line splicing.
// Styled sequences in both the base and the layer are preserved. Layer rows
// outside the base frame are dropped; a layer column offset past the end of
// a base line is padded with spaces.
func Composite(base, layer string, pos Point) string {
	if layer == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	layerLines := strings.Split(layer, "\n")

	for i, ll := range layerLines {
		row := pos.Y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], ll, pos.X)
	}
	return strings.Join(baseLines, "\n")
}

// CompositeAll paints layers in order; later layers win on overlap.
func CompositeAll(base string, layers ...Layer) string {
	for _, l := range layers {
		base = Composite(base, l.Content, l.Pos)
	}
	return base
}

// spliceLine overlays seg onto line starting at column x, keeping whatever
// of the original line extends past the segment.
func spliceLine(line, seg string, x int) string {
	if x < 0 {
		seg = ansi.TruncateLeft(seg, -x, "")
		x = 0
	}
	segW := ansi.StringWidth(seg)
	if segW == 0 {
		return line
	}

	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ""
	if ansi.StringWidth(line) > x+segW {
		right = ansi.TruncateLeft(line, x+segW, "")
	}
	return left + seg + right
}
