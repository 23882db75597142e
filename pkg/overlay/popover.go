package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Popover is a bordered surface with an optional title and an arrow glyph
// pointing at its anchor. It defaults to click triggering with
// close-on-outside-click.
type Popover struct {
	host  *Overlay
	title string

	// content builds the body. It is re-invoked when the content epoch
	// changes (fresh policy), so stale cached bodies are discarded.
	content func() string

	cached      string
	cachedEpoch int
	hasCache    bool
}

// NewPopover creates a popover whose body is built by content.
func NewPopover(id, title string, content func() string, opts ...Option) *Popover {
	base := []Option{
		WithTrigger(TriggerClick),
		WithCloseOnOutsideClick(true),
		WithPlacement(PlacementTop),
	}
	return &Popover{
		host:    New(id, append(base, opts...)...),
		title:   title,
		content: content,
	}
}

// Host exposes the underlying overlay.
func (p *Popover) Host() *Overlay { return p.host }

// Update routes timer and transition messages.
func (p *Popover) Update(msg tea.Msg) tea.Cmd { return p.host.Update(msg) }

// body returns the popover body, rebuilding the cache when the content
// epoch moved.
func (p *Popover) body() string {
	if !p.hasCache || p.cachedEpoch != p.host.Epoch() {
		p.cached = p.content()
		p.cachedEpoch = p.host.Epoch()
		p.hasCache = true
	}
	return p.cached
}

// Invalidate drops the cached body regardless of epoch.
func (p *Popover) Invalidate() { p.hasCache = false }

// Render composites the popover over the base frame when visible, then
// paints the arrow glyph on the border cell facing the anchor.
func (p *Popover) Render(base string) string {
	if !p.host.Mounted() {
		return base
	}
	body := p.body()
	if p.title != "" {
		body = PopoverTitle.Render(p.title) + "\n" + body
	}
	box := PopoverStyle.Render(body)

	out := p.host.RenderInto(base, box)
	if out == base || !p.host.gate.Settled() {
		// Hidden, or mid-transition with a partially revealed box: the
		// border row carrying the arrow may not be painted yet.
		return out
	}

	size := Size{W: lipgloss.Width(box), H: lipgloss.Height(box)}
	cell := p.host.ArrowCell(size)
	glyph := ArrowStyle.Render(arrowGlyphs[p.host.Placement().Placement.Side()])
	return Composite(out, glyph, cell)
}
