package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/palettekit/palette"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a themes document without activating anything",
	Long:  "Run the full load-and-validate pipeline on a themes document. Exits non-zero when the document is invalid.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.ThemesFile
		}

		dir, file := filepath.Split(path)
		if dir == "" {
			dir = "."
		}
		themes, err := palette.ValidateDocument(file, palette.DirSource(dir))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d theme(s) OK\n", path, len(themes))
		for _, t := range themes {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d colors)\n", t.Name, len(t.Colors))
		}
		return nil
	},
}
