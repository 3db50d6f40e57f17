package config

import (
	_ "embed"
)

//go:embed defaults/rps.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		UI: UIConfig{
			Color:    true,
			ASCIIArt: true,
		},
		Defaults: DefaultsConfig{
			Ruleset:    "classic",
			Format:     "best_of",
			Count:      3,
			Difficulty: "normal",
		},
		Storage: StorageConfig{
			DBPath: "~/.rpsarena/rps.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
