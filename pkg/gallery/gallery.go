// Package gallery is an interactive showcase of the overlay components:
// a hover tooltip, a click popover with markdown content, and a dropdown
// menu, wired to mouse and keyboard input.
package gallery

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/overlay/internal/theme"
	"github.com/marcus/overlay/pkg/overlay"
)

// Anchor region ids, stable across render passes.
const (
	regionTooltip  = "anchor-tooltip"
	regionPopover  = "anchor-popover"
	regionDropdown = "anchor-dropdown"
)

// keyMap defines the gallery key bindings.
type keyMap struct {
	Tooltip  key.Binding
	Popover  key.Binding
	Dropdown key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Tooltip:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle tooltip")),
		Popover:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle popover")),
		Dropdown: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle menu")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tooltip, k.Popover, k.Dropdown, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tooltip, k.Popover, k.Dropdown},
		{k.Settings, k.Help, k.Quit},
	}
}

// Model is the gallery application state.
type Model struct {
	theme  theme.Theme
	styles styles

	width  int
	height int

	hits     *overlay.HitMap
	tooltip  *overlay.Tooltip
	popover  *overlay.Popover
	dropdown *overlay.Dropdown

	keys keyMap
	help help.Model

	settings *settingsForm

	renders int // popover body rebuild count, shows the fresh policy

	status  string
	settled string
}

// New creates the gallery around an explicit theme.
func New(th theme.Theme) *Model {
	m := &Model{
		theme:  th,
		styles: newStyles(th),
		hits:   overlay.NewHitMap(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}

	m.tooltip = overlay.NewTooltip("tooltip", "Saves the current document",
		overlay.WithPlacement(overlay.PlacementTop),
		overlay.WithEnterDelay(100*time.Millisecond),
		overlay.WithLeaveDelay(100*time.Millisecond),
		overlay.WithTransition(120*time.Millisecond),
		overlay.WithOnOpenChange(func(open bool) {
			m.status = fmt.Sprintf("tooltip onOpenChange(%v)", open)
		}),
		overlay.WithAfterOpenChange(func(open bool) {
			m.settled = fmt.Sprintf("tooltip afterOpenChange(%v)", open)
		}),
	)

	m.popover = overlay.NewPopover("popover", "About overlays", m.popoverBody,
		overlay.WithPlacement(overlay.PlacementBottomStart),
		overlay.WithFresh(true),
		overlay.WithDestroyOnHide(true),
		overlay.WithArrowPointAtCenter(true),
		overlay.WithOnOpenChange(func(open bool) {
			m.status = fmt.Sprintf("popover onOpenChange(%v)", open)
		}),
		overlay.WithAfterOpenChange(func(open bool) {
			m.settled = fmt.Sprintf("popover afterOpenChange(%v)", open)
		}),
	)

	m.dropdown = overlay.NewDropdown("menu",
		[]overlay.MenuItem{
			{ID: "new", Label: "New file"},
			{ID: "open", Label: "Open…"},
			{ID: "save", Label: "Save"},
			{ID: "export", Label: "Export", Disabled: true},
			{ID: "quit", Label: "Quit"},
		},
		[]overlay.Option{
			overlay.WithPlacement(overlay.PlacementBottomStart),
			overlay.WithTrigger(overlay.TriggerClick, overlay.TriggerContextMenu),
			overlay.WithCloseOnOutsideClick(true),
		},
		overlay.WithFilter(),
		overlay.WithOnSelect(func(it overlay.MenuItem) {
			m.status = fmt.Sprintf("menu selected %q", it.ID)
		}),
	)

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vp := overlay.Rect{W: msg.Width, H: msg.Height}
		m.tooltip.Host().SetViewport(vp)
		m.popover.Host().SetViewport(vp)
		m.dropdown.Host().SetViewport(vp)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(tea.MouseEvent(msg))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Timer and transition messages route to every host; each filters by id.
	cmds := []tea.Cmd{
		m.tooltip.Update(msg),
		m.popover.Update(msg),
		m.dropdown.Update(msg),
	}
	if m.settings != nil {
		cmd, done := m.settings.update(msg)
		if done {
			m.applySettings()
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleMouse converts pointer input into trigger events for whichever
// anchor the pointer touches.
func (m *Model) handleMouse(ev tea.MouseEvent) tea.Cmd {
	var cmds []tea.Cmd

	switch ev.Action {
	case tea.MouseActionMotion:
		entered, left := m.hits.Motion(ev.X, ev.Y)
		if left != nil && left.ID == regionTooltip {
			cmds = append(cmds, m.tooltip.Host().HandleEvent(overlay.EventPointerLeave))
		}
		if entered != nil && entered.ID == regionTooltip {
			cmds = append(cmds, m.tooltip.Host().HandleEvent(overlay.EventPointerEnter))
		}

	case tea.MouseActionPress:
		hit := m.hits.Test(ev.X, ev.Y)
		switch {
		case ev.Button == tea.MouseButtonRight && hit != nil && hit.ID == regionDropdown:
			cmds = append(cmds, m.dropdown.Host().HandleEvent(overlay.EventLongPress))
		case ev.Button == tea.MouseButtonLeft && hit != nil:
			switch hit.ID {
			case regionPopover:
				cmds = append(cmds, m.popover.Host().HandleEvent(overlay.EventClick))
			case regionDropdown:
				cmds = append(cmds, m.dropdown.Host().HandleEvent(overlay.EventClick))
			}
		case ev.Button == tea.MouseButtonLeft:
			// A press on empty space is an outside interaction.
			cmds = append(cmds,
				m.popover.Host().HandleEvent(overlay.EventOutsideClick),
				m.dropdown.Host().HandleEvent(overlay.EventOutsideClick),
			)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The settings form captures all keys while open.
	if m.settings != nil {
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		cmd, done := m.settings.update(msg)
		if done {
			m.applySettings()
		}
		return m, cmd
	}

	// An open dropdown consumes navigation and filter keys.
	if m.dropdown.Host().IsOpen() {
		if cmd := m.dropdown.Update(msg); cmd != nil {
			return m, cmd
		}
		if !m.dropdown.Host().IsOpen() {
			return m, nil
		}
		// Filter input may have consumed the key.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tooltip):
		return m, m.tooltip.Host().Toggle()
	case key.Matches(msg, m.keys.Popover):
		return m, m.popover.Host().Toggle()
	case key.Matches(msg, m.keys.Dropdown):
		return m, m.dropdown.Host().Toggle()
	case key.Matches(msg, m.keys.Settings):
		m.settings = newSettingsForm(m.theme.Name)
		return m, m.settings.init()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// applySettings installs the theme chosen in the settings form.
func (m *Model) applySettings() {
	chosen := m.settings.chosenTheme()
	m.settings = nil
	th, err := theme.Builtin(chosen)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.theme = th
	m.styles = newStyles(th)
	m.status = fmt.Sprintf("theme set to %q", th.Name)
}
