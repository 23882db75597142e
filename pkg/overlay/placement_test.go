package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlacementSideAlignRoundtrip(t *testing.T) {
	for _, p := range AllPlacements {
		if got := Compose(p.Side(), p.Align()); got != p {
			t.Errorf("Compose(%v, %v) = %v, want %v", p.Side(), p.Align(), got, p)
		}
	}
}

func TestParsePlacement(t *testing.T) {
	for _, p := range AllPlacements {
		got, err := ParsePlacement(p.String())
		if err != nil {
			t.Fatalf("ParsePlacement(%q) error: %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParsePlacement(%q) = %v, want %v", p.String(), got, p)
		}
	}

	if _, err := ParsePlacement("upper-left"); err == nil {
		t.Error("ParsePlacement(\"upper-left\") should fail")
	}
}

func TestResolveNoAdjustIdentity(t *testing.T) {
	// Geometry chosen so every placement overflows somewhere; with
	// adjustment off the preferred placement must win regardless.
	req := PlacementRequest{
		Anchor:   Rect{X: 0, Y: 0, W: 4, H: 1},
		Popup:    Size{W: 30, H: 10},
		Viewport: Rect{X: 0, Y: 0, W: 20, H: 5},
		Overflow: OverflowOff(),
	}
	for _, p := range AllPlacements {
		req.Preferred = p
		got := ResolvePlacement(req)
		if got.Placement != p {
			t.Errorf("placement %v with adjustment off resolved to %v", p, got.Placement)
		}
	}
}

func TestResolveFlipVertical(t *testing.T) {
	// Anchor near the top edge: insufficient space above, so a top-start
	// placement flips to bottom-start, keeping the horizontal alignment.
	req := PlacementRequest{
		Anchor:    Rect{X: 10, Y: 10, W: 50, H: 20},
		Popup:     Size{W: 20, H: 12},
		Viewport:  Rect{X: 0, Y: 0, W: 400, H: 300},
		Preferred: PlacementTopStart,
		Overflow:  OverflowAuto(),
	}
	got := ResolvePlacement(req)
	want := PlacementResult{Placement: PlacementBottomStart, Pos: Point{X: 10, Y: 30}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolvePlacement mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFlipHorizontal(t *testing.T) {
	// Anchor near the left edge: a left placement flips to the right side.
	req := PlacementRequest{
		Anchor:    Rect{X: 2, Y: 50, W: 10, H: 3},
		Popup:     Size{W: 20, H: 4},
		Viewport:  Rect{X: 0, Y: 0, W: 120, H: 100},
		Preferred: PlacementLeft,
		Overflow:  OverflowAuto(),
	}
	got := ResolvePlacement(req)
	if got.Placement != PlacementRight {
		t.Fatalf("resolved placement = %v, want %v", got.Placement, PlacementRight)
	}
	if got.Pos.X != 12 {
		t.Errorf("pos.X = %d, want 12", got.Pos.X)
	}
}

func TestResolveClampWhenFlipDoesNotFit(t *testing.T) {
	// Neither above nor below fits: keep the preferred side and clamp by
	// shifting, never flip into a worse position.
	req := PlacementRequest{
		Anchor:    Rect{X: 5, Y: 3, W: 5, H: 2},
		Popup:     Size{W: 10, H: 6},
		Viewport:  Rect{X: 0, Y: 0, W: 40, H: 8},
		Preferred: PlacementTop,
		Overflow:  OverflowAuto(),
	}
	got := ResolvePlacement(req)
	if got.Placement != PlacementTop {
		t.Fatalf("resolved placement = %v, want %v (clamp, not flip)", got.Placement, PlacementTop)
	}
	if got.Pos.Y != 0 {
		t.Errorf("pos.Y = %d, want 0 (clamped to viewport top)", got.Pos.Y)
	}
}

func TestResolveAxesIndependent(t *testing.T) {
	// Vertical adjustment disabled: the overflowing Y axis must stay put
	// while X is still clamped into the viewport.
	req := PlacementRequest{
		Anchor:    Rect{X: 0, Y: 1, W: 4, H: 1},
		Popup:     Size{W: 10, H: 5},
		Viewport:  Rect{X: 0, Y: 0, W: 8, H: 40},
		Preferred: PlacementTopEnd,
		Overflow:  OverflowAxes(true, false),
	}
	got := ResolvePlacement(req)
	if got.Pos.Y != -4 {
		t.Errorf("pos.Y = %d, want -4 (vertical adjustment off)", got.Pos.Y)
	}
	if got.Pos.X < 0 {
		t.Errorf("pos.X = %d, want clamped >= 0", got.Pos.X)
	}
}

func TestResolveDegenerateViewport(t *testing.T) {
	// Popup larger than the viewport in both axes: best-effort clamp to the
	// viewport origin, no error, placement still canonical.
	req := PlacementRequest{
		Anchor:    Rect{X: 2, Y: 2, W: 2, H: 1},
		Popup:     Size{W: 50, H: 50},
		Viewport:  Rect{X: 0, Y: 0, W: 10, H: 5},
		Preferred: PlacementBottom,
		Overflow:  OverflowAuto(),
	}
	got := ResolvePlacement(req)
	if got.Pos != (Point{X: 0, Y: 0}) {
		t.Errorf("pos = %+v, want viewport origin", got.Pos)
	}
}

func TestResolveDeterministic(t *testing.T) {
	req := PlacementRequest{
		Anchor:    Rect{X: 10, Y: 10, W: 50, H: 20},
		Popup:     Size{W: 20, H: 12},
		Viewport:  Rect{X: 0, Y: 0, W: 400, H: 300},
		Preferred: PlacementTopStart,
		Overflow:  OverflowAuto(),
	}
	first := ResolvePlacement(req)
	for i := 0; i < 5; i++ {
		if got := ResolvePlacement(req); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestArrowOffset(t *testing.T) {
	req := PlacementRequest{
		Anchor: Rect{X: 10, Y: 20, W: 6, H: 1},
		Popup:  Size{W: 12, H: 4},
	}

	tests := []struct {
		name          string
		res           PlacementResult
		pointAtCenter bool
		want          Point
	}{
		{
			name: "top center arrow on bottom edge",
			res:  PlacementResult{Placement: PlacementTop, Pos: Point{X: 7, Y: 16}},
			want: Point{X: 6, Y: 3},
		},
		{
			name: "top-start arrow near start",
			res:  PlacementResult{Placement: PlacementTopStart, Pos: Point{X: 10, Y: 16}},
			want: Point{X: 1, Y: 3},
		},
		{
			name:          "point at center aims at anchor center",
			res:           PlacementResult{Placement: PlacementTopStart, Pos: Point{X: 10, Y: 16}},
			pointAtCenter: true,
			// anchor center x=13, popup at x=10 -> offset 3
			want: Point{X: 3, Y: 3},
		},
		{
			name: "right placement arrow on left edge",
			res:  PlacementResult{Placement: PlacementRight, Pos: Point{X: 16, Y: 19}},
			want: Point{X: 0, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArrowOffset(tt.res, req, tt.pointAtCenter)
			if got != tt.want {
				t.Errorf("ArrowOffset = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestArrowOffsetNeverChangesPlacement(t *testing.T) {
	// The arrow is a rendering offset only: resolving with and without
	// point-at-center must produce the same placement.
	req := PlacementRequest{
		Anchor:    Rect{X: 10, Y: 10, W: 50, H: 20},
		Popup:     Size{W: 20, H: 12},
		Viewport:  Rect{X: 0, Y: 0, W: 400, H: 300},
		Preferred: PlacementTopStart,
		Overflow:  OverflowAuto(),
	}
	res := ResolvePlacement(req)
	_ = ArrowOffset(res, req, true)
	again := ResolvePlacement(req)
	if diff := cmp.Diff(res, again); diff != "" {
		t.Errorf("placement changed after arrow computation (-want +got):\n%s", diff)
	}
}
