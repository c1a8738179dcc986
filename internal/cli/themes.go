package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/themes"
)

// newThemesCmd creates the themes command listing the available deck themes
// with color swatches.
func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes with color swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Available Themes"))
			fmt.Println()

			for _, th := range themes.All() {
				name := th.Name
				if name == themes.DefaultTheme {
					name += StyleDim.Render(" (default)")
				}
				fmt.Printf("%s %s  %s\n",
					swatches(th),
					StyleValue.Render(fmt.Sprintf("%-18s", name)),
					StyleDim.Render(th.Description))
			}

			fmt.Println()
			printNextStep("Use a theme", "deckforge generate --topic \"...\" --theme <name>")
			return nil
		},
	}
}

// swatches renders a theme's primary, secondary, and accent colors as colored
// blocks.
func swatches(th themes.Theme) string {
	out := ""
	for _, hex := range []string{th.Colors.Primary, th.Colors.Secondary, th.Colors.Accent} {
		out += lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	}
	return out
}
