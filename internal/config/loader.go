package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Load loads and parses an application configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	// resolving symlinks or escaping the intended directory.
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config directory: %w", err)
	}
	defer root.Close()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader loads and parses a configuration from an io.Reader.
// This is useful for testing with in-memory YAML data.
func LoadFromReader(r io.Reader) (*AppConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg AppConfig
	// Strict parsing - reject unknown fields and duplicate keys
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, &InvalidConfigurationError{Reason: "failed to parse YAML", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadProfile discovers and loads the configuration for a named profile
// inside configDir. The default profile reads app.yml; any other profile
// reads {profile}-app.yml with {profile}/app.yml as a fallback.
func LoadProfile(configDir, profile string) (*AppConfig, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	var candidates []string
	if profile == DefaultProfile {
		candidates = []string{
			filepath.Join(configDir, "app.yml"),
			filepath.Join(configDir, "app.yaml"),
		}
	} else {
		candidates = []string{
			filepath.Join(configDir, profile+"-app.yml"),
			filepath.Join(configDir, profile+"-app.yaml"),
			filepath.Join(configDir, profile, "app.yml"),
		}
	}

	attempted := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		attempted = append(attempted, candidate)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return Load(candidate)
	}

	return nil, &ConfigurationNotFoundError{Profile: profile, Attempted: attempted}
}
