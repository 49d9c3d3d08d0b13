// Package cli is the folio command line.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	verbose     bool
	contentPath string
	palette     string
	motion      string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "An animated personal portfolio for the terminal",
	Long: `folio renders a personal portfolio as one scrolling terminal page:
hero, about, experience, projects, skills and contact sections with a
navigation bar, a floating toolkit and light, dark or system theming.

When stdout is not a terminal the fully revealed page is printed once.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			return runRender(cmd.OutOrStdout(), 0)
		}
		return runTUI(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: search XDG config dirs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "portfolio YAML document (default: embedded sample)")
	rootCmd.PersistentFlags().StringVar(&palette, "palette", "", "colour palette name")
	rootCmd.PersistentFlags().StringVar(&motion, "motion", "", "animation preset: standard, brisk, calm or instant")
}
