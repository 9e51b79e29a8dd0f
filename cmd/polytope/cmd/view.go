package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/polytope/internal/tui/astviewer"
)

var viewWatch bool

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse the syntax tree of a file interactively",
	Long: `Open an interactive viewer for the syntax tree of a Polytope file.

Views (switch with tab):
  outline - foldable node tree with source positions
  sexpr   - indented S-expression
  source  - the file itself

With --watch the tree is rebuilt whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVarP(&viewWatch, "watch", "w", false, "reload when the file changes")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	return astviewer.Run(cmd.Context(), astviewer.Config{
		Path:   args[0],
		Engine: engine,
		Watch:  viewWatch,
		Logger: logger,
	})
}
