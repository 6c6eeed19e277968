package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotpep/calc-tax-salary-kz/core/ui"
	"github.com/dotpep/calc-tax-salary-kz/internal/config"
	"github.com/dotpep/calc-tax-salary-kz/internal/errors"
	"github.com/dotpep/calc-tax-salary-kz/internal/logging"
)

var forceInit bool

// configCmd manages configuration. It does not read any config file itself,
// so a broken file can still be replaced with `config init --force`.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configSource = "defaults"
		return applyConfig(config.Default())
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// configInitCmd writes the default configuration
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration as JSON",
	Long: `Write the default configuration as JSON.

The target is, in order: the path argument, --config, or
$HOME/.calc-tax-salary-kz.json. An existing file is kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return errors.Config("cannot determine a config path, pass one explicitly", nil)
	}
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return errors.Newf(errors.TypeConfig, "config init writes JSON, got %s", path)
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return errors.Newf(errors.TypeConfig, "config file already exists: %s (use --force to overwrite)", path).
			WithContext("path", path)
	}

	if err := config.Default().Save(path); err != nil {
		return errors.Config("failed to write config", err).WithContext("path", path)
	}
	logging.Named("config").Debug("wrote default config", zap.String("path", path))

	ui.NewWriter(cmd.OutOrStdout(), true).Success("Wrote default config to %s", path)
	return nil
}
