package config

import (
	"fmt"
	"os"
	"path/filepath"

	"create-starter/internal/logger"
	"create-starter/internal/manifest"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file or environment overrides exist.
func Default() Config {
	opts := manifest.DefaultOptions()
	return Config{
		PreferencesFile: defaultPreferencesFile(),
		Manifest: ManifestConfig{
			Description:  opts.Description,
			StripFields:  opts.StripFields,
			StripScripts: opts.StripScripts,
		},
		Git: GitConfig{SetAuthor: true},
	}
}

// LoadConfig resolves the configuration.
// configFile is optional; when given it must exist and parse. Fields it leaves out
// keep their defaults. Environment variables are applied last.
func LoadConfig(fsys afero.Fs, configFile string) (Config, error) {
	cfg := Default()

	if configFile != "" {
		// Read and parse the YAML config on top of the defaults
		raw, err := afero.ReadFile(fsys, configFile)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config %s: %w", configFile, err)
		}
		logger.Debug("[DEBUG] Loaded config from %s\n", configFile)
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overlays environment variables onto target.
// Variables that are not set leave the existing field values alone.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ManifestOptions converts the manifest section into rewrite options.
func (c Config) ManifestOptions() manifest.Options {
	return manifest.Options{
		Description:  c.Manifest.Description,
		StripFields:  c.Manifest.StripFields,
		StripScripts: c.Manifest.StripScripts,
	}
}

// defaultPreferencesFile places preferences under the user's config directory,
// falling back to the working directory when none is known.
func defaultPreferencesFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".create-starter.json"
	}
	return filepath.Join(dir, "create-starter", "config.json")
}
