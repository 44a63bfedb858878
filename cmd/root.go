package cmd

import (
	"errors"
	"os"

	"create-starter/internal/config"
	"create-starter/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the optional YAML configuration file, set via `--config` or `-c`.
var configPath string

// fsys is the filesystem every command works against.
var fsys = afero.NewOsFs()

// rootCmd is the base command for the CLI tool `create-starter`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:           "create-starter",
	Short:         "Create a new project from a starter repository",
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
}

// Execute runs the requested subcommand and exits non-zero when it fails.
// Failures of a project run were already reported to the user by the time they get here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			logger.Error("[ERROR] %v\n", err)
		}
		os.Exit(1)
	}
}

// loadConfig resolves configuration for the current invocation.
func loadConfig() (config.Config, error) {
	return config.LoadConfig(fsys, configPath)
}

// reportedError marks an error the reporter has already shown.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }
