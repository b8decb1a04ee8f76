package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/palettekit/palette/internal/tui"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a theme interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal() {
			return errors.New("pick requires an interactive terminal; use 'palette set' instead")
		}

		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		return tui.RunPicker(reg)
	},
}
