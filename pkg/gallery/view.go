package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/overlay/internal/theme"
	"github.com/marcus/overlay/pkg/overlay"
)

// styles holds the lipgloss styles derived from the active theme.
type styles struct {
	title  lipgloss.Style
	button lipgloss.Style
	status lipgloss.Style
	muted  lipgloss.Style
	frame  lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(th.PrimaryColor()),
		button: lipgloss.NewStyle().
			Foreground(th.TextColor()).
			Background(th.SurfaceColor()).
			Padding(0, 2),
		status: lipgloss.NewStyle().
			Foreground(th.AccentColor()),
		muted: lipgloss.NewStyle().
			Foreground(th.MutedColor()),
		frame: lipgloss.NewStyle().
			Foreground(th.TextColor()),
	}
}

// Row where the anchor buttons are drawn.
const buttonRow = 4

// View implements tea.Model. The anchor hit regions are re-registered from
// the rendered layout each pass so they always match what is on screen.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	base := m.renderBase()
	m.registerAnchors()

	// Overlays paint over the base frame; the dropdown is topmost.
	out := m.tooltip.Render(base)
	out = m.popover.Render(out)
	out = m.dropdown.Render(out)

	if m.settings != nil {
		out = m.renderSettings(out)
	}
	return out
}

// renderBase builds the frame the overlays composite onto.
func (m *Model) renderBase() string {
	lines := make([]string, m.height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", m.width)
	}
	frame := strings.Join(lines, "\n")

	title := m.styles.title.Render(" overlay gallery ") +
		m.styles.muted.Render(" hover, click, or use the keys below")
	frame = overlay.Composite(frame, title, overlay.Point{X: 2, Y: 1})

	row := m.buttonRowContent()
	frame = overlay.Composite(frame, row, overlay.Point{X: 2, Y: buttonRow})

	if m.status != "" {
		frame = overlay.Composite(frame, m.styles.status.Render(m.status),
			overlay.Point{X: 2, Y: m.height - 4})
	}
	if m.settled != "" {
		frame = overlay.Composite(frame, m.styles.muted.Render(m.settled),
			overlay.Point{X: 2, Y: m.height - 3})
	}

	frame = overlay.Composite(frame, m.help.View(m.keys),
		overlay.Point{X: 2, Y: m.height - 1})
	return frame
}

// buttonRowContent renders the three anchor buttons.
func (m *Model) buttonRowContent() string {
	return strings.Join([]string{
		m.styles.button.Render("Hover me"),
		m.styles.button.Render("Click me"),
		m.styles.button.Render("Menu ▾"),
	}, "  ")
}

// registerAnchors measures the rendered button row and registers hit
// regions plus overlay anchors from the measured bounds.
func (m *Model) registerAnchors() {
	m.hits.Clear()

	hover := m.styles.button.Render("Hover me")
	click := m.styles.button.Render("Click me")
	menu := m.styles.button.Render("Menu ▾")

	x := 2
	bounds := func(content string) overlay.Rect {
		w := lipgloss.Width(content)
		r := overlay.Rect{X: x, Y: buttonRow, W: w, H: 1}
		x += w + 2
		return r
	}

	tipRect := bounds(hover)
	popRect := bounds(click)
	menuRect := bounds(menu)

	m.hits.Add(regionTooltip, tipRect, nil)
	m.hits.Add(regionPopover, popRect, nil)
	m.hits.Add(regionDropdown, menuRect, nil)

	m.tooltip.Host().SetAnchor(tipRect)
	m.popover.Host().SetAnchor(popRect)
	m.dropdown.Host().SetAnchor(menuRect)
}

// renderSettings centers the settings form over the frame.
func (m *Model) renderSettings(base string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor()).
		Padding(1, 2).
		Render(m.settings.view())
	pos := overlay.Point{
		X: (m.width - lipgloss.Width(box)) / 2,
		Y: (m.height - lipgloss.Height(box)) / 2,
	}
	return overlay.Composite(base, box, pos)
}

// popoverBody renders the popover markdown. It is called once per content
// epoch: with the fresh policy every open rebuilds it, which the render
// counter makes visible.
func (m *Model) popoverBody() string {
	m.renders++
	md := fmt.Sprintf(`Overlays attach to an **anchor** and pick one of
twelve placements, flipping away from the viewport edge when the
preferred side does not fit.

*Body built %d time(s): destroyOnHide+fresh rebuild it on every open.*
`, m.renders)
	return renderMarkdown(md, m.theme)
}
