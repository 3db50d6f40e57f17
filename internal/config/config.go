// Package config provides YAML-based application configuration for the
// rps platform: UI preferences, default match settings, and storage paths.
package config

import (
	"fmt"

	"github.com/vovakirdan/rps-arena/internal/game"
	"github.com/vovakirdan/rps-arena/internal/match"
)

// AppConfig contains all configuration for the rps platform.
type AppConfig struct {
	UI       UIConfig       `yaml:"ui"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Storage  StorageConfig  `yaml:"storage"`
}

// UIConfig defines presentation preferences.
type UIConfig struct {
	Color    bool `yaml:"color"`     // Colored output (NO_COLOR env still wins)
	ASCIIArt bool `yaml:"ascii_art"` // Hand-shape art in round summaries
}

// DefaultsConfig pre-fills the match setup wizard.
type DefaultsConfig struct {
	Ruleset    string `yaml:"ruleset"`    // "classic" or "extended"
	Format     string `yaml:"format"`     // "single_round", "best_of", "first_to"
	Count      int    `yaml:"count"`      // N for best_of, K for first_to
	Difficulty string `yaml:"difficulty"` // "easy", "normal", "hard"
}

// StorageConfig defines persistence paths.
type StorageConfig struct {
	DBPath string `yaml:"db"` // Scoreboard + saved-match database
}

// Validate checks that the configured defaults name real variants and a
// constructible format.
func (c AppConfig) Validate() error {
	if !game.Ruleset(c.Defaults.Ruleset).Valid() {
		return fmt.Errorf("config: unknown default ruleset %q", c.Defaults.Ruleset)
	}
	if !game.Difficulty(c.Defaults.Difficulty).Valid() {
		return fmt.Errorf("config: unknown default difficulty %q", c.Defaults.Difficulty)
	}
	if _, err := c.DefaultFormat(); err != nil {
		return fmt.Errorf("config: invalid default format: %w", err)
	}
	return nil
}

// DefaultFormat builds the configured default match format, running it
// through the same construction-time validation as the setup wizard.
func (c AppConfig) DefaultFormat() (match.Format, error) {
	switch match.FormatKind(c.Defaults.Format) {
	case match.FormatSingleRound:
		return match.SingleRound(), nil
	case match.FormatBestOfN:
		return match.BestOf(c.Defaults.Count)
	case match.FormatFirstToK:
		return match.FirstTo(c.Defaults.Count)
	default:
		return match.Format{}, fmt.Errorf("config: unknown format %q", c.Defaults.Format)
	}
}
