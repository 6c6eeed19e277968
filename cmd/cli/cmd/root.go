// Package cmd provides the CLI commands for calc-tax-salary-kz.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotpep/calc-tax-salary-kz/internal/config"
	"github.com/dotpep/calc-tax-salary-kz/internal/logging"
)

// Version is the tool version, overridden at build time with -ldflags
var Version = "0.1.0"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	noColor      bool
	summaryOnly  bool

	// configSource names where the active configuration came from
	configSource string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "calc-tax-salary-kz",
	Short: "Calculate Kazakhstan payroll taxes for a monthly salary",
	Long: `calc-tax-salary-kz asks for a gross monthly salary in tenge and prints
ОПВ, ВОСМС, ИПН, СО, СН and ОСМС with the arithmetic behind each,
followed by the take-home pay.

Examples:
  calc-tax-salary-kz
  echo 500000 | calc-tax-salary-kz --format json
  calc-tax-salary-kz config init`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runCalculate,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.json or .hcl, default is $HOME/.calc-tax-salary-kz.json if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json, yaml)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&summaryOnly, "summary", false, "print a summary table instead of each formula")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig loads --config, or the default file when it exists, and sets up
// logging from it. An explicit --config that cannot be read is an error.
func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	configSource = "defaults"

	path := cfgFile
	if path == "" {
		if p := config.DefaultPath(); p != "" {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		configSource = path
	}

	return applyConfig(cfg)
}

func applyConfig(cfg *config.Config) error {
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "calc-tax-salary-kz version %s\n", Version)
	},
}
