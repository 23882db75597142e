package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/overlay/internal/theme"
	"github.com/marcus/overlay/pkg/gallery"
)

var (
	galleryThemeName string
	galleryThemeFile string
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Run the interactive component gallery",
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := loadGalleryTheme()
		if err != nil {
			return err
		}

		p := tea.NewProgram(gallery.New(th),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return nil
	},
}

// loadGalleryTheme resolves the theme flags: an explicit file wins over a
// built-in name.
func loadGalleryTheme() (theme.Theme, error) {
	if galleryThemeFile != "" {
		return theme.Load(galleryThemeFile)
	}
	return theme.Builtin(galleryThemeName)
}

func init() {
	galleryCmd.Flags().StringVar(&galleryThemeName, "theme", "dark", "built-in theme name (dark, light)")
	galleryCmd.Flags().StringVar(&galleryThemeFile, "theme-file", "", "YAML file with theme token overrides")
	rootCmd.AddCommand(galleryCmd)
}
