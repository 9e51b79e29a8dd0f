// ============================================================================
// Polytope - Problem description language toolkit
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration discovery and logging setup
// Author:      msto63
// Created:     2025-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	mdwconfig "github.com/msto63/polytope/foundation/core/config"
	mdwerror "github.com/msto63/polytope/foundation/core/error"
	mdwlog "github.com/msto63/polytope/foundation/core/log"
	"github.com/msto63/polytope/foundation/polytope"
	"github.com/msto63/polytope/foundation/polytope/parser"
	"github.com/msto63/polytope/pkg/core/cache"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	noColor  bool

	appConfig *mdwconfig.Config
	logger    *mdwlog.Logger
	requestID string
)

var rootCmd = &cobra.Command{
	Use:   "polytope",
	Short: "Polytope - parser toolkit for judge problem descriptions",
	Long: `Polytope parses problem descriptions written in the Polytope language:
an input section with optional restrictions, an output section and a
reference solution.

Commands:
  parse    - Parse files and print the syntax tree
  tokens   - Print the token stream of a file
  check    - Validate files, optionally re-checking on change
  view     - Browse the syntax tree of a file interactively
  config   - Show or create the configuration file
  version  - Show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError("polytope", err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errReported):
		return 1
	}
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return code.ExitCode()
	}
	return 1
}

// errReported marks failures whose details were already printed
var errReported = errors.New("errors reported")

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", env.Str("POLYTOPE_CONFIG"),
		"config file (default: polytope.toml or polytope.yaml in . or ~/.config/polytope)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", env.Str("POLYTOPE_LOG_LEVEL"),
		"log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", env.Bool("NO_COLOR"), "disable colored output")
}

// setup loads the configuration and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Set(polytope.KeyLogLevel, logLevel)
	}
	if verbose {
		cfg.Set(polytope.KeyLogLevel, "debug")
	}
	appConfig = cfg

	base, err := polytope.LoggerFromConfig(cfg, os.Stderr)
	if err != nil {
		return err
	}
	requestID = uuid.NewString()
	logger = base.WithRequestID(requestID).WithField("command", cmd.Name())
	logger.Debug("Configuration loaded", mdwlog.Fields{
		"config": cfg.FilePath(),
	})
	return nil
}

func loadConfig() (*mdwconfig.Config, error) {
	if cfgFile != "" {
		return mdwconfig.LoadWithOptions(cfgFile, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: polytope.EnvPrefix,
			Defaults:  polytope.DefaultConfig(),
		})
	}

	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "polytope"))
	}
	return mdwconfig.Discover(mdwconfig.DiscoveryOptions{
		Paths:     paths,
		Filenames: []string{"polytope", ".polytope"},
		EnvPrefix: polytope.EnvPrefix,
		Defaults:  polytope.DefaultConfig(),
	})
}

// newEngine builds an engine from the loaded configuration. A cache.size
// of 0 disables the program cache.
func newEngine() (*polytope.Engine, error) {
	opts, err := polytope.OptionsFromConfig(appConfig)
	if err != nil {
		return nil, err
	}
	opts.Logger = logger

	if size := appConfig.GetInt(polytope.KeyCacheSize); size > 0 {
		programs, err := cache.New(cache.Config{
			MaxItems: size,
			TTL:      appConfig.GetDuration(polytope.KeyCacheTTL),
		})
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to create program cache").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("cmd.newEngine")
		}
		opts.Cache = programs
	}
	return polytope.NewEngine(opts)
}

func printError(msg string, err error) {
	if d, ok := parser.AsDiagnostic(err); ok {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:")+" "+d.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", errorStyle.Render("error:"), msg, err)
}
