package overlay

import "github.com/charmbracelet/lipgloss"

// Colors shared by the built-in surfaces.
var (
	Primary      = lipgloss.Color("212")
	Muted        = lipgloss.Color("241")
	SurfaceBg    = lipgloss.Color("235")
	SurfaceFg    = lipgloss.Color("252")
	InverseBg    = lipgloss.Color("252")
	InverseFg    = lipgloss.Color("235")
	BorderNormal = lipgloss.Color("240")
)

// Tooltip styles: inverse-video single block, no border.
var (
	TooltipStyle = lipgloss.NewStyle().
		Foreground(InverseFg).
		Background(InverseBg).
		Padding(0, 1)
)

// Popover styles.
var (
	PopoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Background(SurfaceBg).
			Foreground(SurfaceFg).
			Padding(0, 1)

	PopoverTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	ArrowStyle = lipgloss.NewStyle().
			Foreground(BorderNormal).
			Background(SurfaceBg)
)

// Dropdown styles.
var (
	DropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Padding(0, 1)

	DropdownItemNormal = lipgloss.NewStyle().
				Foreground(SurfaceFg)

	DropdownItemSelected = lipgloss.NewStyle().
				Background(lipgloss.Color("237")).
				Foreground(lipgloss.Color("255")).
				Bold(true)

	DropdownItemDisabled = lipgloss.NewStyle().
				Foreground(Muted)

	DropdownCursor = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// arrowGlyphs maps the side a surface attaches to onto the glyph pointing
// back at the anchor.
var arrowGlyphs = map[Side]string{
	SideTop:    "▼",
	SideBottom: "▲",
	SideLeft:   "▶",
	SideRight:  "◀",
}
