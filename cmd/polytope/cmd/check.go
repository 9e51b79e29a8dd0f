package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope"
	"github.com/msto63/polytope/foundation/polytope/ast"
	"github.com/msto63/polytope/foundation/utils/filex"
)

// SourceExt is the file extension of Polytope sources
const SourceExt = ".poly"

var (
	checkWatch bool
	checkQuiet bool
)

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Validate Polytope files",
	Long: `Parse the given files and report every diagnostic. Directories are
searched recursively for *.poly files; without arguments the current
directory is checked.

With --watch the files are checked again whenever one of them changes,
until interrupted.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "re-check files when they change")
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "only print failures")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	paths, err := filex.ExpandSources(args, SourceExt)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	failed := checkFiles(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), engine, paths)
	if !checkWatch {
		if failed > 0 {
			return errReported
		}
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render(fmt.Sprintf("watching %d files, press ctrl+c to stop", len(paths))))
	err = filex.Watch(ctx, paths,
		func(path string) {
			logger.Debug("Source changed", mdwlog.Fields{"path": path})
			checkFiles(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), engine, []string{path})
		},
		func(err error) {
			logger.WarnWithErr("Watch error", err)
		})
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// checkFiles parses paths and prints a line per file; it returns the
// number of failures
func checkFiles(ctx context.Context, out, errOut io.Writer, engine *polytope.Engine, paths []string) int {
	failed := 0
	for _, r := range engine.ParseFiles(ctx, paths) {
		if !r.OK() {
			failed++
			reportFailure(errOut, r)
			continue
		}
		if !checkQuiet {
			fmt.Fprint(out, renderOK(r.Path, ast.Count(r.Program), r.Duration))
		}
	}

	logger.Info("Check completed", mdwlog.Fields{
		"files":  len(paths),
		"failed": failed,
	})
	return failed
}
