package config

import "fmt"

// ConfigurationNotFoundError indicates no configuration file exists for
// the requested profile.
type ConfigurationNotFoundError struct {
	Profile   string
	Attempted []string
}

func (e *ConfigurationNotFoundError) Error() string {
	return fmt.Sprintf("no configuration found for profile %q (looked in %d locations)", e.Profile, len(e.Attempted))
}

// InvalidConfigurationError indicates a configuration file that exists
// but cannot be used.
type InvalidConfigurationError struct {
	Reason string
	Cause  error
}

func (e *InvalidConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Reason, e.Cause)
	}
	return "invalid configuration: " + e.Reason
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Cause
}
