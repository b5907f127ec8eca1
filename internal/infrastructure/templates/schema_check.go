package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CheckSchema compiles the schema file at path and reports whether it is
// a usable JSON schema. Schema bodies may be JSON or YAML; YAML is
// converted before compilation.
func CheckSchema(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading schema %s: %w", path, err)
	}

	if !json.Valid(data) {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return fmt.Errorf("schema %s is neither JSON nor YAML: %w", path, err)
		}
		data = converted
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("loading schema %s: %w", path, err)
	}
	if _, err := compiler.Compile(path); err != nil {
		return fmt.Errorf("compiling schema %s: %w", path, err)
	}
	return nil
}
