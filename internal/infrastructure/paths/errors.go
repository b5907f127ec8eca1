package paths

import (
	"fmt"
	"strings"
)

// InvalidParameterCombinationError indicates resolve parameters that are
// missing or internally inconsistent.
type InvalidParameterCombinationError struct {
	Reason string
}

func (e *InvalidParameterCombinationError) Error() string {
	return "invalid parameter combination: " + e.Reason
}

// BaseDirectoryNotFoundError indicates the configured base directory
// cannot be statted.
type BaseDirectoryNotFoundError struct {
	BaseDir string
	Cause   error
}

func (e *BaseDirectoryNotFoundError) Error() string {
	return fmt.Sprintf("base directory not found: %s: %v", e.BaseDir, e.Cause)
}

func (e *BaseDirectoryNotFoundError) Unwrap() error {
	return e.Cause
}

// TemplateNotFoundError indicates no prompt/schema file exists at any of
// the attempted locations.
type TemplateNotFoundError struct {
	Attempted []string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found; attempted: %s", strings.Join(e.Attempted, ", "))
}

// NoValidFallbackError indicates the primary resolution and every
// configured fallback failed validation.
type NoValidFallbackError struct {
	Attempted []string
}

func (e *NoValidFallbackError) Error() string {
	return fmt.Sprintf("no candidate passed validation; attempted: %s", strings.Join(e.Attempted, ", "))
}

// RuleViolationError indicates a single validation rule rejected a path.
type RuleViolationError struct {
	Path   string
	Rule   string
	Reason string
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("path %s failed %s: %s", e.Path, e.Rule, e.Reason)
}
