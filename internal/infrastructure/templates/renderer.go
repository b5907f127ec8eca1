// Package templates reads prompt templates from disk and substitutes
// {name} placeholders from an assembled variable record.
package templates

import (
	"fmt"
	"os"
	"regexp"
)

// placeholderPattern matches {name} placeholders. Names follow the
// template-record keys: uv- prefixes are already stripped by the caller.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_][a-zA-Z0-9_-]*)\}`)

// Renderer substitutes variables into prompt templates.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render reads the template file and substitutes every known
// placeholder. Unknown placeholders are left intact; the renderer is a
// substitution engine, not a validator.
func (r *Renderer) Render(path string, vars map[string]string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return r.RenderString(string(data), vars), nil
}

// RenderString substitutes placeholders in an in-memory template body.
func (r *Renderer) RenderString(body string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		name := match[1 : len(match)-1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}
