package values

import "strings"

// VariableKind discriminates the closed set of template-variable kinds.
type VariableKind string

const (
	VariableKindStandard VariableKind = "standard"
	VariableKindFilePath VariableKind = "file-path"
	VariableKindStdin    VariableKind = "stdin"
	VariableKindUser     VariableKind = "user"
)

// StdinVariableName is the fixed name of the stdin-text variable.
const StdinVariableName = "input_text"

// UserVariablePrefix is the reserved prefix for user-defined variables.
const UserVariablePrefix = "uv-"

// StandardVariableNames is the allow-list for standard variables.
var StandardVariableNames = []string{
	"destination_path",
	"input_text_file",
	"base_prompt_dir",
}

// FilePathVariableNames is the allow-list for file-path variables.
var FilePathVariableNames = []string{
	"schema_file",
	"input_text_file",
}

// Variable is a named template variable of one of the closed kinds.
// An empty value is permitted for every kind; an empty name never is.
type Variable struct {
	kind  VariableKind
	name  string
	value string
}

// NewStandardVariable creates a standard-kind variable. The name must
// belong to StandardVariableNames.
func NewStandardVariable(name, value string) (Variable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Variable{}, &InvalidVariableNameError{Kind: VariableKindStandard, Name: name, Reason: "name cannot be empty"}
	}
	if !contains(StandardVariableNames, name) {
		return Variable{}, &InvalidVariableNameError{
			Kind:    VariableKindStandard,
			Name:    name,
			Reason:  "name is not a recognized standard variable",
			Allowed: StandardVariableNames,
		}
	}
	return Variable{kind: VariableKindStandard, name: name, value: value}, nil
}

// NewFilePathVariable creates a file-path-kind variable. The name must
// belong to FilePathVariableNames.
func NewFilePathVariable(name, value string) (Variable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Variable{}, &InvalidVariableNameError{Kind: VariableKindFilePath, Name: name, Reason: "name cannot be empty"}
	}
	if !contains(FilePathVariableNames, name) {
		return Variable{}, &InvalidVariableNameError{
			Kind:    VariableKindFilePath,
			Name:    name,
			Reason:  "name is not a recognized file-path variable",
			Allowed: FilePathVariableNames,
		}
	}
	return Variable{kind: VariableKindFilePath, name: name, value: value}, nil
}

// NewStdinVariable creates the stdin-text variable. Its name is fixed.
func NewStdinVariable(value string) (Variable, error) {
	return Variable{kind: VariableKindStdin, name: StdinVariableName, value: value}, nil
}

// NewUserVariable creates a user-defined variable. The name must carry
// the uv- prefix followed by a non-empty suffix.
func NewUserVariable(name, value string) (Variable, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Variable{}, &InvalidVariableNameError{Kind: VariableKindUser, Name: name, Reason: "name cannot be empty"}
	}
	if !strings.HasPrefix(name, UserVariablePrefix) {
		return Variable{}, &InvalidVariableNameError{
			Kind:   VariableKindUser,
			Name:   name,
			Reason: "name must start with the " + UserVariablePrefix + " prefix",
		}
	}
	if strings.TrimSpace(strings.TrimPrefix(name, UserVariablePrefix)) == "" {
		return Variable{}, &InvalidVariableNameError{
			Kind:   VariableKindUser,
			Name:   name,
			Reason: "name must have a non-empty suffix after the " + UserVariablePrefix + " prefix",
		}
	}
	return Variable{kind: VariableKindUser, name: name, value: value}, nil
}

// Kind returns the variable kind.
func (v Variable) Kind() VariableKind {
	return v.kind
}

// Name returns the variable name, uv- prefix included for user variables.
func (v Variable) Name() string {
	return v.name
}

// Value returns the variable value.
func (v Variable) Value() string {
	return v.value
}

// TemplateName returns the name used for template substitution: user
// variables lose their uv- prefix, all other kinds keep their name.
func (v Variable) TemplateName() string {
	if v.kind == VariableKindUser {
		return strings.TrimPrefix(v.name, UserVariablePrefix)
	}
	return v.name
}

// IsEmpty returns true if this is the zero value
func (v Variable) IsEmpty() bool {
	return v.name == ""
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
