// Package config loads training configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cutoffs holds the vocabulary-freezing thresholds.
type Cutoffs struct {
	// Label drops labels seen fewer than this many times.
	Label int `yaml:"label"`
	// Feature drops features seen fewer than this many times.
	Feature int `yaml:"feature"`
	// DocumentFrequency drops words from the ambiguity lexicon when they
	// occur in fewer documents than this.
	DocumentFrequency int `yaml:"document_frequency"`
	// DocumentBoundary chunks the corpus into pseudo documents of this
	// many sentences for frequency counting.
	DocumentBoundary int `yaml:"document_boundary"`
	// AmbiguityThreshold is the minimum relative tag frequency for a tag
	// to enter a word's ambiguity class.
	AmbiguityThreshold float64 `yaml:"ambiguity_threshold"`
}

// Trainer holds the online learner hyperparameters.
type Trainer struct {
	Alpha      float64 `yaml:"alpha"`
	Rho        float64 `yaml:"rho"`
	Average    bool    `yaml:"average"`
	Epochs     int     `yaml:"epochs"`
	Bootstraps int     `yaml:"bootstraps"`
}

// Config is the full training configuration.
type Config struct {
	Cutoffs Cutoffs `yaml:"cutoffs"`
	Trainer Trainer `yaml:"trainer"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Cutoffs: Cutoffs{
			Label:              1,
			Feature:            2,
			DocumentFrequency:  2,
			DocumentBoundary:   1000,
			AmbiguityThreshold: 0.4,
		},
		Trainer: Trainer{
			Alpha:   0.02,
			Rho:     0.1,
			Average: true,
			Epochs:  5,
		},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the trainer cannot run with.
func (c Config) Validate() error {
	if c.Trainer.Rho <= 0 {
		return fmt.Errorf("config: trainer.rho must be > 0, got %g", c.Trainer.Rho)
	}
	if c.Trainer.Alpha <= 0 {
		return fmt.Errorf("config: trainer.alpha must be > 0, got %g", c.Trainer.Alpha)
	}
	if c.Trainer.Epochs < 1 {
		return fmt.Errorf("config: trainer.epochs must be >= 1, got %d", c.Trainer.Epochs)
	}
	if c.Trainer.Bootstraps < 0 {
		return fmt.Errorf("config: trainer.bootstraps must be >= 0, got %d", c.Trainer.Bootstraps)
	}
	if c.Cutoffs.AmbiguityThreshold < 0 || c.Cutoffs.AmbiguityThreshold > 1 {
		return fmt.Errorf("config: cutoffs.ambiguity_threshold must be in [0,1], got %g", c.Cutoffs.AmbiguityThreshold)
	}
	return nil
}
