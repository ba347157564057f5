package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario configures a stress run. Values loaded from YAML are overridden
// by any flag set explicitly on the command line.
type Scenario struct {
	Duration       time.Duration `yaml:"-"`
	RawDuration    string        `yaml:"duration"`
	Entities       int           `yaml:"entities"`
	MaxComponents  int           `yaml:"max_components_per_entity"`
	ChurnPerFrame  int           `yaml:"churn_per_frame"`
	Profile        string        `yaml:"profile"`
	GCPauseMetrics bool          `yaml:"gc_pause_metrics"`
}

func DefaultScenario() Scenario {
	return Scenario{
		Duration:      10 * time.Second,
		Entities:      10000,
		MaxComponents: 5,
	}
}

func LoadScenario(path string) (Scenario, error) {
	scn := DefaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		return scn, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &scn); err != nil {
		return scn, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if scn.RawDuration != "" {
		d, err := time.ParseDuration(scn.RawDuration)
		if err != nil {
			return scn, fmt.Errorf("parse scenario duration %q: %w", scn.RawDuration, err)
		}
		scn.Duration = d
	}
	if scn.Entities <= 0 {
		return scn, fmt.Errorf("scenario: entities must be positive, got %d", scn.Entities)
	}
	if scn.MaxComponents <= 0 || scn.MaxComponents > generatedComponentCount {
		return scn, fmt.Errorf("scenario: max_components_per_entity must be in [1, %d], got %d",
			generatedComponentCount, scn.MaxComponents)
	}
	return scn, nil
}
