package overlay

import (
	"strings"
	"testing"
)

func gridBase(w, h int) string {
	row := strings.Repeat(".", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestCompositeBasic(t *testing.T) {
	base := gridBase(10, 4)
	got := Composite(base, "AB\nCD", Point{X: 3, Y: 1})
	want := strings.Join([]string{
		"..........",
		"...AB.....",
		"...CD.....",
		"..........",
	}, "\n")
	if got != want {
		t.Errorf("Composite =\n%s\nwant\n%s", got, want)
	}
}

func TestCompositeClipsRowsOutsideBase(t *testing.T) {
	base := gridBase(6, 2)
	got := Composite(base, "XX\nYY\nZZ", Point{X: 1, Y: 1})
	want := strings.Join([]string{
		"......",
		".XX...",
	}, "\n")
	if got != want {
		t.Errorf("Composite =\n%s\nwant\n%s", got, want)
	}

	// Entirely above the frame.
	if got := Composite(base, "XX", Point{X: 0, Y: -1}); got != base {
		t.Errorf("layer above frame altered base:\n%s", got)
	}
}

func TestCompositeNegativeColumn(t *testing.T) {
	base := gridBase(6, 1)
	got := Composite(base, "ABCD", Point{X: -2, Y: 0})
	if got != "CD...." {
		t.Errorf("Composite = %q, want %q", got, "CD....")
	}
}

func TestCompositePadsShortBaseLine(t *testing.T) {
	got := Composite("ab", "XY", Point{X: 5, Y: 0})
	if got != "ab   XY" {
		t.Errorf("Composite = %q, want %q", got, "ab   XY")
	}
}

func TestCompositeAllLaterLayersWin(t *testing.T) {
	base := gridBase(8, 1)
	got := CompositeAll(base,
		Layer{Content: "AAAA", Pos: Point{X: 1, Y: 0}},
		Layer{Content: "BB", Pos: Point{X: 2, Y: 0}},
	)
	if got != ".ABBA..." {
		t.Errorf("CompositeAll = %q, want %q", got, ".ABBA...")
	}
}

func TestCompositeEmptyLayer(t *testing.T) {
	base := gridBase(4, 2)
	if got := Composite(base, "", Point{X: 1, Y: 1}); got != base {
		t.Errorf("empty layer altered base: %q", got)
	}
}
