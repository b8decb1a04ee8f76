package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Switch the active theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := reg.SetActiveName(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "active theme is now %s\n", reg.Active().Name)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset to the default theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, cleanup, err := openRegistry()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := reg.ResetToDefault(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "active theme is now %s\n", reg.Active().Name)
		return nil
	},
}
