package output

import (
	"io"

	"github.com/breakdown-dev/breakdown/internal/application/services"
	"github.com/goccy/go-yaml"
)

// YAMLFormatter formats pipeline results as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the pipeline result as YAML.
func (f *YAMLFormatter) Format(result *services.Result) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(result); err != nil {
		return err
	}

	return encoder.Close()
}
