package output

import (
	"io"

	"github.com/breakdown-dev/breakdown/internal/application/services"
)

// TextFormatter writes the rendered prompt as-is, the form piped into
// downstream tools.
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes the rendered prompt text.
func (f *TextFormatter) Format(result *services.Result) error {
	_, err := io.WriteString(f.writer, result.Prompt)
	if err != nil {
		return err
	}
	if len(result.Prompt) > 0 && result.Prompt[len(result.Prompt)-1] != '\n' {
		_, err = io.WriteString(f.writer, "\n")
	}
	return err
}
