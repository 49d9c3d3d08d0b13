package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/folio/pkg/app"
	"gitlab.com/tinyland/lab/folio/pkg/terminal"
)

var renderWidth int

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the fully revealed page once",
	Long: `Render lays out every section with its animations finished and
prints the result. Colours follow the output: plain text when piped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.OutOrStdout(), renderWidth)
	},
}

func init() {
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "columns (default: terminal width, or 80)")
	rootCmd.AddCommand(renderCmd)
}

// runRender prints the static page to out. A width of zero measures the
// terminal.
func runRender(out io.Writer, width int) error {
	s, err := openSession(out)
	if err != nil {
		return err
	}
	defer s.Close()

	if width <= 0 {
		width = terminal.NewSizer().Size().Cols
	}
	_, err = fmt.Fprint(out, app.RenderStatic(s.options(false), width))
	return err
}
