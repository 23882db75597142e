package overlay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tooltip is a short text surface shown on hover. It defaults to the top
// placement with 100ms enter/leave delays.
type Tooltip struct {
	host *Overlay
	text string
}

// NewTooltip creates a tooltip around the given text.
func NewTooltip(id, text string, opts ...Option) *Tooltip {
	base := []Option{
		WithTrigger(TriggerHover),
		WithEnterDelay(100 * time.Millisecond),
		WithLeaveDelay(100 * time.Millisecond),
	}
	return &Tooltip{
		host: New(id, append(base, opts...)...),
		text: text,
	}
}

// Host exposes the underlying overlay for event routing and geometry.
func (t *Tooltip) Host() *Overlay { return t.host }

// SetText replaces the tooltip text.
func (t *Tooltip) SetText(text string) { t.text = text }

// Update routes timer and transition messages.
func (t *Tooltip) Update(msg tea.Msg) tea.Cmd { return t.host.Update(msg) }

// Render composites the tooltip over the base frame when visible.
func (t *Tooltip) Render(base string) string {
	if !t.host.Mounted() {
		return base
	}
	return t.host.RenderInto(base, TooltipStyle.Render(t.text))
}
