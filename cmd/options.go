package cmd

import (
	"fmt"

	"create-starter/internal/logger"
	"create-starter/internal/pm"
	"create-starter/internal/prefs"
	"github.com/spf13/cobra"
)

// optionKeys maps user-facing option names to preference store keys.
var optionKeys = map[string]string{
	"pm": pm.PreferenceKey,
}

// optionsCmd groups commands that read and write saved preferences.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "View or change saved preferences",
}

// optionsSetCmd saves a preference, e.g. `options set pm yarn`.
var optionsSetCmd = &cobra.Command{
	Use:   "set <option> <value>",
	Short: "Save a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := optionKey(args[0])
		if err != nil {
			return err
		}
		manager, err := pm.Parse(args[1])
		if err != nil {
			return err
		}

		store, err := openPrefs()
		if err != nil {
			return err
		}
		if err := store.Set(key, string(manager)); err != nil {
			return err
		}
		logger.Info("[INFO] Preferred package manager set to %s\n", manager)
		return nil
	},
}

// optionsGetCmd prints a saved preference.
var optionsGetCmd = &cobra.Command{
	Use:   "get <option>",
	Short: "Show a saved preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := optionKey(args[0])
		if err != nil {
			return err
		}
		store, err := openPrefs()
		if err != nil {
			return err
		}

		value, ok := store.Get(key)
		if !ok {
			value = "(not set)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

func optionKey(name string) (string, error) {
	key, ok := optionKeys[name]
	if !ok {
		return "", fmt.Errorf("unknown option %q (supported: pm)", name)
	}
	return key, nil
}

func openPrefs() (*prefs.FileStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return prefs.Open(fsys, cfg.PreferencesFile), nil
}

func init() {
	optionsCmd.AddCommand(optionsSetCmd)
	optionsCmd.AddCommand(optionsGetCmd)
	rootCmd.AddCommand(optionsCmd)
}
