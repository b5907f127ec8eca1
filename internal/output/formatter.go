// Package output formats pipeline results for the CLI.
package output

import (
	"fmt"
	"io"

	"github.com/breakdown-dev/breakdown/internal/application/services"
)

// Formatter writes a pipeline result to its destination.
type Formatter interface {
	Format(result *services.Result) error
}

// NewFormatter creates a formatter for the named format.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "text", "":
		return NewTextFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected text, json, or yaml)", format)
	}
}
