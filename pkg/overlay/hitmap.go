package overlay

// Region is an anchor hit rectangle registered after the layout pass.
type Region struct {
	ID     string
	Bounds Rect
	Data   any
}

// HitMap routes absolute pointer coordinates to anchor regions and
// synthesizes enter/leave transitions. Regions are re-registered each
// render pass (render-then-measure), so hit rectangles always match what
// was actually drawn. On overlap the most recently added region wins.
type HitMap struct {
	regions []Region
	hoverID string
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// Clear drops all regions. Hover tracking is kept so a re-registered region
// under the pointer does not produce a spurious enter.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add registers a region.
func (h *HitMap) Add(id string, bounds Rect, data any) {
	h.regions = append(h.regions, Region{ID: id, Bounds: bounds, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Bounds.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// HoverID returns the id of the region under the pointer, or "".
func (h *HitMap) HoverID() string { return h.hoverID }

// Motion records a pointer position and returns the regions that were
// entered and left, either of which may be nil.
func (h *HitMap) Motion(x, y int) (entered, left *Region) {
	hit := h.Test(x, y)
	hitID := ""
	if hit != nil {
		hitID = hit.ID
	}
	if hitID == h.hoverID {
		return nil, nil
	}
	if h.hoverID != "" {
		left = h.find(h.hoverID)
	}
	h.hoverID = hitID
	return hit, left
}

func (h *HitMap) find(id string) *Region {
	for i := range h.regions {
		if h.regions[i].ID == id {
			return &h.regions[i]
		}
	}
	return nil
}
