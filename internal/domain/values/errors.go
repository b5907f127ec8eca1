package values

import (
	"fmt"
	"strings"
)

// InvalidPatternError indicates a pattern source that could not be compiled.
type InvalidPatternError struct {
	Source string
	Reason string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Source, e.Reason)
}

// InvalidDirectiveError indicates a directive token outside the configured set.
type InvalidDirectiveError struct {
	Value      string
	Pattern    string
	Reason     string
	ValidTypes []string
}

func (e *InvalidDirectiveError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid directive type %q: %s", e.Value, e.Reason)
	}
	if len(e.ValidTypes) > 0 {
		return fmt.Sprintf("invalid directive type %q (valid: %s)", e.Value, strings.Join(e.ValidTypes, ", "))
	}
	return fmt.Sprintf("invalid directive type %q (pattern: %s)", e.Value, e.Pattern)
}

// InvalidLayerError indicates a layer token outside the configured set.
type InvalidLayerError struct {
	Value      string
	Pattern    string
	Reason     string
	ValidTypes []string
}

func (e *InvalidLayerError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid layer type %q: %s", e.Value, e.Reason)
	}
	if len(e.ValidTypes) > 0 {
		return fmt.Sprintf("invalid layer type %q (valid: %s)", e.Value, strings.Join(e.ValidTypes, ", "))
	}
	return fmt.Sprintf("invalid layer type %q (pattern: %s)", e.Value, e.Pattern)
}

// InvalidPathError indicates a ResolvedPath construction failure.
type InvalidPathError struct {
	Value  string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Value, e.Reason)
}

// InvalidVariableNameError indicates a variable name rejected by its kind.
type InvalidVariableNameError struct {
	Kind    VariableKind
	Name    string
	Reason  string
	Allowed []string
}

func (e *InvalidVariableNameError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s variable name %q: %s (allowed: %s)",
			e.Kind, e.Name, e.Reason, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("invalid %s variable name %q: %s", e.Kind, e.Name, e.Reason)
}
