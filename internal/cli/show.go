package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/palettekit/palette"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [theme]",
	Short: "Show a theme's colors",
	Long:  "Show the colors of the named theme, or of the active theme when no name is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		theme := reg.Active()
		if len(args) == 1 {
			found := false
			for _, t := range reg.Themes() {
				if t.Name == args[0] {
					theme, found = t, true
					break
				}
			}
			if !found {
				return &palette.ThemeNotFoundError{Name: args[0]}
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTheme(theme, isTerminal()))
		return nil
	},
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// renderTheme formats a theme for display, with lipgloss swatches when
// stdout is a terminal and plain text otherwise.
func renderTheme(theme palette.Theme, color bool) string {
	var b strings.Builder
	b.WriteString(theme.Name)
	b.WriteString("\n")
	for _, name := range theme.ColorNames() {
		c, _ := theme.Color(name)
		if color {
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.String())).Render("   ")
			fmt.Fprintf(&b, "  %s %-16s %s\n", swatch, name, c.String())
		} else {
			fmt.Fprintf(&b, "  %-16s %s\n", name, c.String())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
