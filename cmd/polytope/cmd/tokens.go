package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope/parser"
	"github.com/msto63/polytope/foundation/utils/filex"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream of a file",
	Long: `Print every token of a Polytope file with its position and type.
Scanning stops at the first lexical error, which is reported with its
source line.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	limit := int64(engine.Parser().Options().MaxInputLength)
	data, err := filex.ReadFileLimit(args[0], limit)
	if err != nil {
		return err
	}
	source := string(data)

	var rows [][]string
	for tok, err := range parser.NewLexer(source).All() {
		if err != nil {
			_ = writeTokenTable(cmd.OutOrStdout(), rows)
			if d, ok := parser.AsDiagnostic(err); ok {
				fmt.Fprint(cmd.ErrOrStderr(), renderDiagnostic(args[0], source, d))
				return errReported
			}
			return err
		}
		rows = append(rows, []string{tok.Pos.String(), tok.Type.String(), tok.Value})
	}
	if err := writeTokenTable(cmd.OutOrStdout(), rows); err != nil {
		return err
	}
	logger.Debug("Tokenized source", mdwlog.Fields{"path": args[0], "tokens": len(rows)})
	return nil
}

// writeTokenTable prints one borderless row per token: position, type
// and text
func writeTokenTable(w io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			switch col {
			case 0:
				return gutterStyle.PaddingRight(2)
			case 1:
				return hintStyle.PaddingRight(2)
			default:
				return lipgloss.NewStyle()
			}
		}).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}
