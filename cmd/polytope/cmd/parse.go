package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
	"github.com/msto63/polytope/foundation/polytope"
	"github.com/msto63/polytope/foundation/polytope/ast"
	"github.com/msto63/polytope/foundation/polytope/parser"
)

var (
	parseFormat string
	parseSpans  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse files and print the syntax tree",
	Long: `Parse one or more Polytope files and print their syntax trees.

Without arguments, or with "-", the source is read from standard input.

Formats:
  pretty - indented S-expression (default)
  sexp   - single-line S-expression
  json   - node tree as JSON
  yaml   - node tree as YAML`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "pretty", "output format: pretty, sexp, json, yaml")
	parseCmd.Flags().BoolVar(&parseSpans, "spans", false, "include source spans in json and yaml output")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	switch parseFormat {
	case "pretty", "sexp", "json", "yaml":
	default:
		return mdwerror.Newf("unknown format %q", parseFormat).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parse")
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	results, err := collectResults(cmd, engine, args)
	if err != nil {
		return err
	}

	failed := 0
	var ok []polytope.Result
	for _, r := range results {
		if !r.OK() {
			failed++
			reportFailure(cmd.ErrOrStderr(), r)
			continue
		}
		ok = append(ok, r)
	}

	if err := writePrograms(cmd.OutOrStdout(), ok, len(results) > 1); err != nil {
		return err
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

// collectResults parses the named files, or standard input when there
// are none
func collectResults(cmd *cobra.Command, engine *polytope.Engine, args []string) ([]polytope.Result, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		r, err := parseStdin(cmd.InOrStdin(), engine)
		if err != nil {
			return nil, err
		}
		return []polytope.Result{r}, nil
	}
	return engine.ParseFiles(cmd.Context(), args), nil
}

func parseStdin(in io.Reader, engine *polytope.Engine) (polytope.Result, error) {
	limit := int64(engine.Parser().Options().MaxInputLength)
	data, err := io.ReadAll(io.LimitReader(in, limit+1))
	if err != nil {
		return polytope.Result{}, mdwerror.Wrap(err, "failed to read standard input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parse")
	}
	source := string(data)
	prog, err := engine.Parse(source)
	return polytope.Result{Path: "<stdin>", Source: source, Program: prog, Err: err}, nil
}

// reportFailure prints a failed result, rendering parse diagnostics with
// their source line
func reportFailure(w io.Writer, r polytope.Result) {
	if d, ok := parser.AsDiagnostic(r.Err); ok {
		fmt.Fprint(w, renderDiagnostic(r.Path, r.Source, d))
		return
	}
	fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("error:"), r.Path, r.Err)
}

func writePrograms(w io.Writer, results []polytope.Result, labeled bool) error {
	switch parseFormat {
	case "json":
		return writeJSON(w, results, labeled)
	case "yaml":
		return writeYAML(w, results, labeled)
	}

	for i, r := range results {
		if labeled {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, mutedStyle.Render(";; "+r.Path))
		}
		if parseFormat == "sexp" {
			fmt.Fprintln(w, ast.SExpr(r.Program))
		} else {
			fmt.Fprintln(w, ast.Pretty(r.Program))
		}
	}
	return nil
}

func exportProgram(r polytope.Result, labeled bool) interface{} {
	tree := ast.ToMapWithOptions(r.Program, ast.ExportOptions{OmitSpans: !parseSpans})
	if !labeled {
		return tree
	}
	return map[string]interface{}{"path": r.Path, "program": tree}
}

func writeJSON(w io.Writer, results []polytope.Result, labeled bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if !labeled {
		if len(results) == 0 {
			return nil
		}
		return enc.Encode(exportProgram(results[0], false))
	}
	list := make([]interface{}, 0, len(results))
	for _, r := range results {
		list = append(list, exportProgram(r, true))
	}
	return enc.Encode(list)
}

func writeYAML(w io.Writer, results []polytope.Result, labeled bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range results {
		if err := enc.Encode(exportProgram(r, labeled)); err != nil {
			return mdwerror.Wrap(err, "failed to encode yaml").
				WithCode(mdwerror.CodeInternal).
				WithOperation("cmd.parse")
		}
	}
	return enc.Close()
}
