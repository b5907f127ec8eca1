// Package config provides application configuration loading for Breakdown.
// It handles strict YAML parsing, profile file discovery, and extraction of
// the directive/layer pattern sources.
package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DefaultProfile is the profile used when none is requested.
const DefaultProfile = "breakdown"

// DefaultConfigDir is where profile configuration files live by default.
const DefaultConfigDir = ".breakdown/config"

// supportedVersions is the config schema versions this build understands.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// AppConfig is a profile's application configuration.
type AppConfig struct {
	Version   string        `yaml:"version,omitempty"`
	Params    ParamsConfig  `yaml:"params"`
	AppPrompt BaseDirConfig `yaml:"app_prompt,omitempty"`
	AppSchema BaseDirConfig `yaml:"app_schema,omitempty"`
	Output    BaseDirConfig `yaml:"output,omitempty"`
}

// ParamsConfig nests the per-arity parameter rules.
type ParamsConfig struct {
	Two TwoParamsConfig `yaml:"two"`
}

// TwoParamsConfig holds the directive/layer pattern sources for the
// two-parameter form.
type TwoParamsConfig struct {
	DirectiveType PatternConfig `yaml:"directive_type"`
	LayerType     PatternConfig `yaml:"layer_type"`
}

// PatternConfig wraps a regular-expression-style pattern source.
type PatternConfig struct {
	Pattern string `yaml:"pattern"`
}

// BaseDirConfig is an optional base-directory override.
type BaseDirConfig struct {
	BaseDir string `yaml:"base_dir,omitempty"`
}

// DefaultConfig returns the built-in breakdown profile configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Version: "1.0.0",
		Params: ParamsConfig{
			Two: TwoParamsConfig{
				DirectiveType: PatternConfig{Pattern: "^(to|summary|defect)$"},
				LayerType:     PatternConfig{Pattern: "^(project|issue|task)$"},
			},
		},
	}
}

// Validate checks the structural consistency of the configuration.
// Pattern presence is checked by the validator (strict mode decides whether
// absence is fatal); version compatibility is checked here.
func (c *AppConfig) Validate() error {
	if c.Version == "" {
		return nil
	}

	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return &InvalidConfigurationError{
			Reason: fmt.Sprintf("invalid version %q", c.Version),
			Cause:  err,
		}
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("building version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return &InvalidConfigurationError{
			Reason: fmt.Sprintf("config version %s is outside the supported range %s", c.Version, supportedVersions),
		}
	}
	return nil
}
