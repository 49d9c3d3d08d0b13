package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|system]",
	Short:     "Show or set the theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "system"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stdout)
		if err != nil {
			return err
		}
		defer s.Close()

		if len(args) == 1 {
			p, err := theme.ParsePreference(args[0])
			if err != nil {
				return err
			}
			s.ctrl.SetPreference(p)
			if s.ctrl.MemoryOnly() {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: preference could not be saved")
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.ctrl.Label())
		return nil
	},
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the colour palettes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := theme.LoadDir(cfg.Theme.PaletteDir); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), listPalettes(cfg.Theme.Palette))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(palettesCmd)
}
