package gallery

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"

	"github.com/marcus/overlay/internal/theme"
)

// settingsForm wraps the huh form used to pick a theme.
type settingsForm struct {
	form  *huh.Form
	theme string
}

func newSettingsForm(current string) *settingsForm {
	s := &settingsForm{theme: current}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions("dark", "light")...).
				Value(&s.theme),
		),
	).WithShowHelp(false)
	return s
}

func (s *settingsForm) init() tea.Cmd {
	return s.form.Init()
}

// update advances the form; done reports completion or abort.
func (s *settingsForm) update(msg tea.Msg) (tea.Cmd, bool) {
	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}
	done := s.form.State == huh.StateCompleted || s.form.State == huh.StateAborted
	return cmd, done
}

func (s *settingsForm) view() string {
	return s.form.View()
}

func (s *settingsForm) chosenTheme() string {
	return s.theme
}

// renderMarkdown renders popover markdown with the glamour style matching
// the theme, falling back to the raw text when rendering fails.
func renderMarkdown(md string, th theme.Theme) string {
	style := "dark"
	if th.Name == "light" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
