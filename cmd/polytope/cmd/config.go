package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/polytope/foundation/core/error"
	"github.com/msto63/polytope/foundation/polytope"
	"github.com/msto63/polytope/foundation/utils/filex"
)

var (
	configForce  bool
	configFormat string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		if path := appConfig.FilePath(); path != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "# "+path)
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(appConfig.GetAll()); err != nil {
			return err
		}
		return enc.Close()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a configuration file with the default values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configInitCmd.Flags().StringVar(&configFormat, "format", "toml", "file format: toml or yaml")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "polytope." + configFormat
	if len(args) == 1 {
		path = args[0]
	}
	if filex.Exists(path) && !configForce {
		return mdwerror.Newf("%s already exists, use --force to overwrite", path).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.config.init")
	}

	f, err := os.Create(path)
	if err != nil {
		return mdwerror.Wrap(err, "failed to create config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("cmd.config.init")
	}
	defer f.Close()

	switch configFormat {
	case "toml":
		err = toml.NewEncoder(f).Encode(polytope.DefaultConfig())
	case "yaml":
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err = enc.Encode(polytope.DefaultConfig()); err == nil {
			err = enc.Close()
		}
	default:
		err = mdwerror.Newf("unknown config format %q", configFormat).
			WithCode(mdwerror.CodeInvalidInput)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("created"), path)
	return nil
}
