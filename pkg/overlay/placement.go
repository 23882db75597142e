package overlay

import "fmt"

// Side is the edge of the anchor a floating surface attaches to.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Opposite returns the mirrored side on the same axis.
func (s Side) Opposite() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Vertical reports whether the side sits above or below the anchor.
func (s Side) Vertical() bool { return s == SideTop || s == SideBottom }

// Align positions the surface along the anchor edge it attaches to.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Mirror returns the mirrored alignment. Center mirrors to itself.
func (a Align) Mirror() Align {
	switch a {
	case AlignStart:
		return AlignEnd
	case AlignEnd:
		return AlignStart
	default:
		return AlignCenter
	}
}

// Placement is one of the 12 canonical positions of a floating surface
// relative to its anchor: four sides, each with start/center/end alignment.
type Placement int

const (
	PlacementTop Placement = iota
	PlacementTopStart
	PlacementTopEnd
	PlacementBottom
	PlacementBottomStart
	PlacementBottomEnd
	PlacementLeft
	PlacementLeftStart
	PlacementLeftEnd
	PlacementRight
	PlacementRightStart
	PlacementRightEnd
)

// AllPlacements lists the 12 canonical placements in declaration order.
var AllPlacements = []Placement{
	PlacementTop, PlacementTopStart, PlacementTopEnd,
	PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
	PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
	PlacementRight, PlacementRightStart, PlacementRightEnd,
}

// Side returns the anchor edge of the placement.
func (p Placement) Side() Side {
	switch p {
	case PlacementTop, PlacementTopStart, PlacementTopEnd:
		return SideTop
	case PlacementBottom, PlacementBottomStart, PlacementBottomEnd:
		return SideBottom
	case PlacementLeft, PlacementLeftStart, PlacementLeftEnd:
		return SideLeft
	default:
		return SideRight
	}
}

// Align returns the edge alignment of the placement.
func (p Placement) Align() Align {
	switch p {
	case PlacementTopStart, PlacementBottomStart, PlacementLeftStart, PlacementRightStart:
		return AlignStart
	case PlacementTopEnd, PlacementBottomEnd, PlacementLeftEnd, PlacementRightEnd:
		return AlignEnd
	default:
		return AlignCenter
	}
}

// Compose builds the placement for a side/alignment pair.
func Compose(s Side, a Align) Placement {
	base := map[Side]Placement{
		SideTop:    PlacementTop,
		SideBottom: PlacementBottom,
		SideLeft:   PlacementLeft,
		SideRight:  PlacementRight,
	}[s]
	switch a {
	case AlignStart:
		return base + 1
	case AlignEnd:
		return base + 2
	default:
		return base
	}
}

var placementNames = map[Placement]string{
	PlacementTop:         "top",
	PlacementTopStart:    "top-start",
	PlacementTopEnd:      "top-end",
	PlacementBottom:      "bottom",
	PlacementBottomStart: "bottom-start",
	PlacementBottomEnd:   "bottom-end",
	PlacementLeft:        "left",
	PlacementLeftStart:   "left-start",
	PlacementLeftEnd:     "left-end",
	PlacementRight:       "right",
	PlacementRightStart:  "right-start",
	PlacementRightEnd:    "right-end",
}

func (p Placement) String() string {
	if name, ok := placementNames[p]; ok {
		return name
	}
	return fmt.Sprintf("placement(%d)", int(p))
}

// ParsePlacement parses a placement name such as "top" or "bottom-end".
func ParsePlacement(s string) (Placement, error) {
	for p, name := range placementNames {
		if name == s {
			return p, nil
		}
	}
	return PlacementTop, fmt.Errorf("unknown placement %q", s)
}

// OverflowPolicy controls whether the resolver may reposition a surface
// that would overflow the viewport. It replaces the usual bool-or-object
// prop with an explicit variant: off, both axes, or per-axis.
type OverflowPolicy struct {
	x, y bool
}

// OverflowOff disables repositioning: the preferred placement is used
// unconditionally.
func OverflowOff() OverflowPolicy { return OverflowPolicy{} }

// OverflowAuto enables flip-then-clamp adjustment on both axes.
func OverflowAuto() OverflowPolicy { return OverflowPolicy{x: true, y: true} }

// OverflowAxes enables adjustment independently per axis.
func OverflowAxes(adjustX, adjustY bool) OverflowPolicy {
	return OverflowPolicy{x: adjustX, y: adjustY}
}

// AdjustX reports whether horizontal adjustment is enabled.
func (p OverflowPolicy) AdjustX() bool { return p.x }

// AdjustY reports whether vertical adjustment is enabled.
func (p OverflowPolicy) AdjustY() bool { return p.y }

// PlacementRequest carries the geometry needed to position a surface.
type PlacementRequest struct {
	Anchor    Rect
	Popup     Size
	Viewport  Rect
	Preferred Placement
	Overflow  OverflowPolicy
}

// PlacementResult is the resolved placement and the surface's top-left
// position in viewport coordinates.
type PlacementResult struct {
	Placement Placement
	Pos       Point
}

// naiveOrigin computes the surface top-left for a placement with the popup
// edge flush against the anchor edge and the alignment applied on the
// cross axis.
func naiveOrigin(p Placement, anchor Rect, popup Size) Point {
	var pt Point
	switch p.Side() {
	case SideTop:
		pt.Y = anchor.Y - popup.H
	case SideBottom:
		pt.Y = anchor.Bottom()
	case SideLeft:
		pt.X = anchor.X - popup.W
	case SideRight:
		pt.X = anchor.Right()
	}
	if p.Side().Vertical() {
		switch p.Align() {
		case AlignStart:
			pt.X = anchor.X
		case AlignEnd:
			pt.X = anchor.Right() - popup.W
		default:
			pt.X = anchor.X + (anchor.W-popup.W)/2
		}
	} else {
		switch p.Align() {
		case AlignStart:
			pt.Y = anchor.Y
		case AlignEnd:
			pt.Y = anchor.Bottom() - popup.H
		default:
			pt.Y = anchor.Y + (anchor.H-popup.H)/2
		}
	}
	return pt
}

// overflowsX reports whether the surface would exceed the viewport
// horizontally at the given origin.
func overflowsX(x int, popup Size, vp Rect) bool {
	return x < vp.X || x+popup.W > vp.Right()
}

func overflowsY(y int, popup Size, vp Rect) bool {
	return y < vp.Y || y+popup.H > vp.Bottom()
}

// flipX mirrors the horizontal component of a placement: the side for
// left/right placements, the alignment for top/bottom placements.
func flipX(p Placement) Placement {
	if p.Side().Vertical() {
		return Compose(p.Side(), p.Align().Mirror())
	}
	return Compose(p.Side().Opposite(), p.Align())
}

// flipY mirrors the vertical component of a placement.
func flipY(p Placement) Placement {
	if p.Side().Vertical() {
		return Compose(p.Side().Opposite(), p.Align())
	}
	return Compose(p.Side(), p.Align().Mirror())
}

// ResolvePlacement computes the final placement and position for a floating
// surface. When overflow adjustment is enabled for an axis and the naive
// position overflows the viewport on that axis, the placement's component on
// that axis is flipped once; if the flipped position still overflows (or the
// flip would not help) the surface is clamped into the viewport by shifting.
// The two axes are adjusted independently. The result is deterministic:
// flipping is always preferred over clamping, and a placement is never
// flipped twice on the same axis.
func ResolvePlacement(req PlacementRequest) PlacementResult {
	p := req.Preferred
	pos := naiveOrigin(p, req.Anchor, req.Popup)

	if req.Overflow.AdjustX() && overflowsX(pos.X, req.Popup, req.Viewport) {
		flipped := flipX(p)
		fpos := naiveOrigin(flipped, req.Anchor, req.Popup)
		if !overflowsX(fpos.X, req.Popup, req.Viewport) {
			p, pos = flipped, fpos
		}
	}
	if req.Overflow.AdjustY() && overflowsY(pos.Y, req.Popup, req.Viewport) {
		flipped := flipY(p)
		fpos := naiveOrigin(flipped, req.Anchor, req.Popup)
		if !overflowsY(fpos.Y, req.Popup, req.Viewport) {
			p, pos = flipped, fpos
		}
	}

	// Clamp whatever still overflows. A surface larger than the viewport
	// clamps toward the viewport origin; degenerate geometry is best-effort,
	// never an error.
	if req.Overflow.AdjustX() {
		maxX := req.Viewport.Right() - req.Popup.W
		if maxX < req.Viewport.X {
			maxX = req.Viewport.X
		}
		pos.X = clamp(pos.X, req.Viewport.X, maxX)
	}
	if req.Overflow.AdjustY() {
		maxY := req.Viewport.Bottom() - req.Popup.H
		if maxY < req.Viewport.Y {
			maxY = req.Viewport.Y
		}
		pos.Y = clamp(pos.Y, req.Viewport.Y, maxY)
	}

	return PlacementResult{Placement: p, Pos: pos}
}

// ArrowOffset computes the popup-relative cell where the arrow glyph should
// be drawn. It is a rendering concern layered on the resolved placement and
// never changes which placement was chosen. With pointAtCenter the arrow
// aims at the anchor's center; otherwise it follows the placement's own
// alignment point. The offset is clamped one cell in from the surface
// corners so the arrow never lands on a border corner.
func ArrowOffset(res PlacementResult, req PlacementRequest, pointAtCenter bool) Point {
	var pt Point
	side := res.Placement.Side()

	// Row/column the arrow sits on: the surface edge facing the anchor.
	switch side {
	case SideTop:
		pt.Y = req.Popup.H - 1
	case SideBottom:
		pt.Y = 0
	case SideLeft:
		pt.X = req.Popup.W - 1
	case SideRight:
		pt.X = 0
	}

	if side.Vertical() {
		target := 0
		if pointAtCenter {
			target = req.Anchor.CenterX() - res.Pos.X
		} else {
			switch res.Placement.Align() {
			case AlignStart:
				target = 1
			case AlignEnd:
				target = req.Popup.W - 2
			default:
				target = req.Popup.W / 2
			}
		}
		pt.X = clamp(target, 1, max(1, req.Popup.W-2))
	} else {
		target := 0
		if pointAtCenter {
			target = req.Anchor.CenterY() - res.Pos.Y
		} else {
			switch res.Placement.Align() {
			case AlignStart:
				target = 1
			case AlignEnd:
				target = req.Popup.H - 2
			default:
				target = req.Popup.H / 2
			}
		}
		pt.Y = clamp(target, 1, max(1, req.Popup.H-2))
	}
	return pt
}
