package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// MenuItem is one entry in a dropdown menu.
type MenuItem struct {
	ID       string
	Label    string
	Disabled bool
}

// Dropdown is a menu surface anchored below its trigger. It supports
// keyboard navigation, an optional fuzzy filter line, and closes on select
// or outside click.
type Dropdown struct {
	host  *Overlay
	items []MenuItem

	filtered   []int // indexes into items, in match order
	cursor     int
	filterable bool
	filter     textinput.Model

	// OnSelect fires with the chosen item before the menu closes.
	OnSelect func(MenuItem)
}

// DropdownOption configures a dropdown beyond the shared overlay options.
type DropdownOption func(*Dropdown)

// WithFilter enables the fuzzy filter line.
func WithFilter() DropdownOption {
	return func(d *Dropdown) { d.filterable = true }
}

// WithOnSelect registers the selection callback.
func WithOnSelect(fn func(MenuItem)) DropdownOption {
	return func(d *Dropdown) { d.OnSelect = fn }
}

// NewDropdown creates a dropdown menu. Overlay behavior is configured with
// opts; dropdown-specific behavior with dopts.
func NewDropdown(id string, items []MenuItem, opts []Option, dopts ...DropdownOption) *Dropdown {
	base := []Option{
		WithTrigger(TriggerClick),
		WithCloseOnOutsideClick(true),
		WithPlacement(PlacementBottomStart),
	}
	d := &Dropdown{
		host:  New(id, append(base, opts...)...),
		items: items,
	}
	for _, opt := range dopts {
		opt(d)
	}
	if d.filterable {
		ti := textinput.New()
		ti.Prompt = "/ "
		ti.Placeholder = "filter"
		ti.Focus()
		d.filter = ti
	}
	d.resetFilter()
	return d
}

// Host exposes the underlying overlay.
func (d *Dropdown) Host() *Overlay { return d.host }

// SetItems replaces the menu items and reapplies the filter.
func (d *Dropdown) SetItems(items []MenuItem) {
	d.items = items
	d.applyFilter()
}

// Selected returns the item under the cursor, or nil when the menu is
// empty.
func (d *Dropdown) Selected() *MenuItem {
	if d.cursor < 0 || d.cursor >= len(d.filtered) {
		return nil
	}
	return &d.items[d.filtered[d.cursor]]
}

func (d *Dropdown) resetFilter() {
	d.filtered = d.filtered[:0]
	for i := range d.items {
		d.filtered = append(d.filtered, i)
	}
	d.cursor = 0
}

// applyFilter narrows the visible items by fuzzy-matching the filter text
// against item labels, best matches first.
func (d *Dropdown) applyFilter() {
	query := ""
	if d.filterable {
		query = d.filter.Value()
	}
	if query == "" {
		d.resetFilter()
		return
	}
	labels := make([]string, len(d.items))
	for i, it := range d.items {
		labels[i] = it.Label
	}
	matches := fuzzy.Find(query, labels)
	d.filtered = d.filtered[:0]
	for _, m := range matches {
		d.filtered = append(d.filtered, m.Index)
	}
	if d.cursor >= len(d.filtered) {
		d.cursor = 0
	}
}

// Update handles keyboard input while open and routes timer/transition
// messages to the host.
func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	if cmd := d.host.Update(msg); cmd != nil {
		return cmd
	}
	if !d.host.IsOpen() {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "up", "ctrl+p":
		d.moveCursor(-1)
		return nil
	case "down", "ctrl+n":
		d.moveCursor(1)
		return nil
	case "enter":
		item := d.Selected()
		if item == nil || item.Disabled {
			return nil
		}
		if d.OnSelect != nil {
			d.OnSelect(*item)
		}
		return d.host.RequestOpen(false)
	case "esc":
		return d.host.RequestOpen(false)
	}

	if d.filterable {
		var cmd tea.Cmd
		d.filter, cmd = d.filter.Update(msg)
		d.applyFilter()
		return cmd
	}
	return nil
}

// moveCursor steps the cursor over enabled items, clamping at the ends.
func (d *Dropdown) moveCursor(delta int) {
	next := d.cursor + delta
	for next >= 0 && next < len(d.filtered) && d.items[d.filtered[next]].Disabled {
		next += delta
	}
	if next >= 0 && next < len(d.filtered) {
		d.cursor = next
	}
}

// Render composites the menu over the base frame when visible.
func (d *Dropdown) Render(base string) string {
	if !d.host.Mounted() {
		return base
	}
	var sb strings.Builder
	if d.filterable {
		sb.WriteString(d.filter.View())
		sb.WriteString("\n")
	}
	if len(d.filtered) == 0 {
		sb.WriteString(DropdownItemDisabled.Render("(no matches)"))
	}
	for vi, idx := range d.filtered {
		if vi > 0 || d.filterable {
			sb.WriteString("\n")
		}
		item := d.items[idx]
		cursor := "  "
		style := DropdownItemNormal
		switch {
		case item.Disabled:
			style = DropdownItemDisabled
		case vi == d.cursor:
			style = DropdownItemSelected
			cursor = DropdownCursor.Render("> ")
		}
		sb.WriteString(cursor + style.Render(item.Label))
	}
	return d.host.RenderInto(base, DropdownStyle.Render(sb.String()))
}
