package cmd

import (
	"create-starter/internal/prefs"
	"create-starter/internal/report"
	"create-starter/internal/runner"
	"create-starter/internal/starter"
	"github.com/spf13/cobra"
)

// gitInit requests a fresh repository with an initial commit after install.
var gitInit bool

// newCmd creates a project: clone, rewrite package.json, install.
var newCmd = &cobra.Command{
	Use:   "new <starter> <directory> [packages...]",
	Short: "Create a project from a starter and install its dependencies",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("git-init") {
			cfg.Git.Init = gitInit
		}

		s := starter.New(
			runner.NewExec(),
			fsys,
			report.Console{},
			prefs.Open(fsys, cfg.PreferencesFile),
			starter.Options{
				PackageManagerHint: cfg.PackageManagerHint,
				Manifest:           cfg.ManifestOptions(),
				SetAuthor:          cfg.Git.SetAuthor,
				GitInit:            cfg.Git.Init,
			},
		)

		spec := starter.Spec{Source: args[0], Destination: args[1], Packages: args[2:]}
		if err := s.Init(cmd.Context(), spec); err != nil {
			return reportedError{err}
		}
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVar(&gitInit, "git-init", false, "Initialize a git repository with an initial commit")
	rootCmd.AddCommand(newCmd)
}
