package services

import (
	"fmt"
	"strings"
)

// InvalidParameterCountError indicates the wrong number of positional tokens.
type InvalidParameterCountError struct {
	Received int
	Expected int
}

func (e *InvalidParameterCountError) Error() string {
	return fmt.Sprintf("expected %d parameters, received %d", e.Expected, e.Received)
}

// PatternNotDefinedError indicates a configuration that lacks a required
// pattern key for the requested profile.
type PatternNotDefinedError struct {
	Profile string
	Key     string
}

func (e *PatternNotDefinedError) Error() string {
	return fmt.Sprintf("profile %q does not define %s", e.Profile, e.Key)
}

// ConfigurationNotFoundError indicates the validator has neither a supplied
// configuration nor cached patterns for the profile.
type ConfigurationNotFoundError struct {
	Profile string
}

func (e *ConfigurationNotFoundError) Error() string {
	return fmt.Sprintf("no configuration available for profile %q", e.Profile)
}

// DuplicateVariableError indicates a second attempt to install a name the
// builder already holds.
type DuplicateVariableError struct {
	Name string
}

func (e *DuplicateVariableError) Error() string {
	return fmt.Sprintf("duplicate variable name %q (first entry kept)", e.Name)
}

// BuildErrors aggregates every problem found during a build session.
type BuildErrors struct {
	Errors []error
}

func (e *BuildErrors) Error() string {
	if len(e.Errors) == 1 {
		return "variable build failed: " + e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("variable build failed with %d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the aggregated errors to errors.Is/errors.As.
func (e *BuildErrors) Unwrap() []error {
	return e.Errors
}
