package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jsnanigans/respell/pkg/morph"
)

// fileConfig mirrors the YAML player configuration. Durations are plain
// millisecond integers so config files stay unit-free and obvious.
type fileConfig struct {
	Threshold int `yaml:"threshold"`
	Durations struct {
		IdleMs      int `yaml:"idle_ms"`
		DeletingMs  int `yaml:"deleting_ms"`
		MovingMs    int `yaml:"moving_ms"`
		InsertingMs int `yaml:"inserting_ms"`
		FinalMs     int `yaml:"final_ms"`
	} `yaml:"durations"`
	DeletionHoldMs int `yaml:"deletion_hold_ms"`
}

// loadConfig reads the YAML config at path, layering it over the defaults.
// An empty path returns the defaults untouched.
func loadConfig(path string) (morph.Options, morph.ScriptConfig, error) {
	opts := morph.Options{}
	script := morph.DefaultScriptConfig()
	if path == "" {
		return opts, script, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, script, fmt.Errorf("reading config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return opts, script, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Threshold > 0 {
		opts.HighlightThreshold = cfg.Threshold
	}
	overrideMs(&script.Durations.Idle, cfg.Durations.IdleMs)
	overrideMs(&script.Durations.Deleting, cfg.Durations.DeletingMs)
	overrideMs(&script.Durations.Moving, cfg.Durations.MovingMs)
	overrideMs(&script.Durations.Inserting, cfg.Durations.InsertingMs)
	overrideMs(&script.Durations.Final, cfg.Durations.FinalMs)
	overrideMs(&script.DeletionHold, cfg.DeletionHoldMs)
	return opts, script, nil
}

func overrideMs(d *time.Duration, ms int) {
	if ms > 0 {
		*d = time.Duration(ms) * time.Millisecond
	}
}
