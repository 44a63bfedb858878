package config

// Config is the fully resolved configuration for one invocation.
// Values come from defaults, then the optional YAML file, then the environment.
type Config struct {
	// PreferencesFile is where saved preferences (like the package manager) live.
	PreferencesFile string `yaml:"preferences_file" env:"CREATE_STARTER_PREFERENCES"`

	// PackageManagerHint identifies the agent that launched us,
	// e.g. "yarn/1.22.19 npm/? node/v18.17.0". Only read from the environment.
	PackageManagerHint string `yaml:"-" env:"npm_config_user_agent"`

	Manifest ManifestConfig `yaml:"manifest"`
	Git      GitConfig      `yaml:"git"`
}

// ManifestConfig controls how the starter's package.json is rewritten.
// - Description: replaces the starter's description.
// - StripFields: top-level keys removed from the manifest.
// - StripScripts: entries removed from "scripts".
type ManifestConfig struct {
	Description  string   `yaml:"description"`
	StripFields  []string `yaml:"strip_fields"`
	StripScripts []string `yaml:"strip_scripts"`
}

// GitConfig controls the optional git steps after install.
// - Init: create a fresh repository with an initial commit.
// - SetAuthor: copy `git config user.name` into the manifest's author field.
type GitConfig struct {
	Init      bool `yaml:"init" env:"CREATE_STARTER_GIT_INIT"`
	SetAuthor bool `yaml:"set_author"`
}
