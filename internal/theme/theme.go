// Package theme defines the color tokens shared by the gallery surfaces.
// Tokens are carried as an explicit value passed down through constructors
// rather than resolved through ambient lookup, so every consumer names its
// dependency.
package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme is a set of named color tokens. Values are terminal color strings
// accepted by lipgloss (ANSI indexes or hex).
type Theme struct {
	Name    string `yaml:"name"`
	Primary string `yaml:"primary"`
	Surface string `yaml:"surface"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Border  string `yaml:"border"`
	Accent  string `yaml:"accent"`
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{
		Name:    "dark",
		Primary: "212",
		Surface: "235",
		Text:    "252",
		Muted:   "241",
		Border:  "240",
		Accent:  "45",
	}
}

// Light returns the built-in light theme.
func Light() Theme {
	return Theme{
		Name:    "light",
		Primary: "162",
		Surface: "254",
		Text:    "235",
		Muted:   "245",
		Border:  "250",
		Accent:  "31",
	}
}

// Builtin returns a built-in theme by name.
func Builtin(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return Default(), nil
	case "light":
		return Light(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// Load reads theme tokens from a YAML file, overriding the defaults for
// any token the file sets.
func Load(path string) (Theme, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

// PrimaryColor returns the primary token as a lipgloss color.
func (t Theme) PrimaryColor() lipgloss.Color { return lipgloss.Color(t.Primary) }

// SurfaceColor returns the surface background token.
func (t Theme) SurfaceColor() lipgloss.Color { return lipgloss.Color(t.Surface) }

// TextColor returns the body text token.
func (t Theme) TextColor() lipgloss.Color { return lipgloss.Color(t.Text) }

// MutedColor returns the muted text token.
func (t Theme) MutedColor() lipgloss.Color { return lipgloss.Color(t.Muted) }

// BorderColor returns the border token.
func (t Theme) BorderColor() lipgloss.Color { return lipgloss.Color(t.Border) }

// AccentColor returns the accent token.
func (t Theme) AccentColor() lipgloss.Color { return lipgloss.Color(t.Accent) }
