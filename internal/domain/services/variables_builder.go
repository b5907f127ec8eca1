package services

import (
	"path/filepath"
	"sort"

	"github.com/breakdown-dev/breakdown/internal/domain/values"
)

// testModeFallbackText is substituted for an empty stdin value when the
// factory values were produced in test mode.
const testModeFallbackText = "# Test input\n\nThis is test input text.\n"

// FactoryValues is the bulk "resolved values" input for the builder.
// Entries with an empty source value are skipped silently.
type FactoryValues struct {
	InputFilePath  string
	OutputFilePath string
	SchemaFilePath string
	PromptBaseDir  string
	InputText      string
	UserVariables  map[string]string
	// TestMode substitutes a fixed fallback text for an empty InputText.
	TestMode bool
}

// VariablesBuilder accumulates template variables from direct calls and
// from factory values. Construction failures and duplicate names are
// recorded instead of thrown; Build reports every accumulated error at
// once. A name, once installed, is never replaced (first-write-wins).
type VariablesBuilder struct {
	vars  []values.Variable
	index map[string]int
	errs  []error
}

// NewVariablesBuilder creates an empty builder.
func NewVariablesBuilder() *VariablesBuilder {
	return &VariablesBuilder{index: make(map[string]int)}
}

// AddStandardVariable adds a standard-kind variable.
func (b *VariablesBuilder) AddStandardVariable(name, value string) *VariablesBuilder {
	v, err := values.NewStandardVariable(name, value)
	return b.install(v, err)
}

// AddFilePathVariable adds a file-path-kind variable. The value is stored
// as given; callers decide between a full path and a basename.
func (b *VariablesBuilder) AddFilePathVariable(name, value string) *VariablesBuilder {
	v, err := values.NewFilePathVariable(name, value)
	return b.install(v, err)
}

// AddStdinVariable adds the stdin-text variable.
func (b *VariablesBuilder) AddStdinVariable(value string) *VariablesBuilder {
	v, err := values.NewStdinVariable(value)
	return b.install(v, err)
}

// AddUserVariable adds a uv- prefixed user variable.
func (b *VariablesBuilder) AddUserVariable(name, value string) *VariablesBuilder {
	v, err := values.NewUserVariable(name, value)
	return b.install(v, err)
}

// AddUserVariables adds every entry of the map as a user variable, in
// name order so error reports are stable.
func (b *VariablesBuilder) AddUserVariables(vars map[string]string) *VariablesBuilder {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.AddUserVariable(name, vars[name])
	}
	return b
}

// AddFromFactoryValues routes each non-empty resolved value to its
// variable kind. The input file is installed under its basename; use
// AddFilePathVariable directly to keep a full path.
func (b *VariablesBuilder) AddFromFactoryValues(fv FactoryValues) *VariablesBuilder {
	if fv.InputFilePath != "" {
		b.AddFilePathVariable("input_text_file", filepath.Base(fv.InputFilePath))
	}
	if fv.OutputFilePath != "" {
		b.AddStandardVariable("destination_path", fv.OutputFilePath)
	}
	if fv.SchemaFilePath != "" {
		b.AddFilePathVariable("schema_file", fv.SchemaFilePath)
	}
	if fv.PromptBaseDir != "" {
		b.AddStandardVariable("base_prompt_dir", fv.PromptBaseDir)
	}
	if fv.InputText != "" {
		b.AddStdinVariable(fv.InputText)
	} else if fv.TestMode {
		b.AddStdinVariable(testModeFallbackText)
	}
	if len(fv.UserVariables) > 0 {
		b.AddUserVariables(fv.UserVariables)
	}
	return b
}

// Build yields the immutable collection when no errors accumulated, or
// the complete error list otherwise. It never returns a partial record.
func (b *VariablesBuilder) Build() (*VariableCollection, error) {
	if len(b.errs) > 0 {
		errs := make([]error, len(b.errs))
		copy(errs, b.errs)
		return nil, &BuildErrors{Errors: errs}
	}
	vars := make([]values.Variable, len(b.vars))
	copy(vars, b.vars)
	return &VariableCollection{vars: vars}, nil
}

// VariableCount returns the number of installed variables.
func (b *VariablesBuilder) VariableCount() int {
	return len(b.vars)
}

// ErrorCount returns the number of accumulated errors.
func (b *VariablesBuilder) ErrorCount() int {
	return len(b.errs)
}

// HasVariable reports whether a name is already installed.
func (b *VariablesBuilder) HasVariable(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Errors returns a copy of the accumulated error list.
func (b *VariablesBuilder) Errors() []error {
	errs := make([]error, len(b.errs))
	copy(errs, b.errs)
	return errs
}

// Clear resets the builder for reuse.
func (b *VariablesBuilder) Clear() {
	b.vars = nil
	b.index = make(map[string]int)
	b.errs = nil
}

func (b *VariablesBuilder) install(v values.Variable, err error) *VariablesBuilder {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if _, exists := b.index[v.Name()]; exists {
		b.errs = append(b.errs, &DuplicateVariableError{Name: v.Name()})
		return b
	}
	b.index[v.Name()] = len(b.vars)
	b.vars = append(b.vars, v)
	return b
}

// VariableCollection is the immutable outcome of a successful build.
// Insertion order is preserved.
type VariableCollection struct {
	vars []values.Variable
}

// Variables returns the variables in insertion order.
func (c *VariableCollection) Variables() []values.Variable {
	out := make([]values.Variable, len(c.vars))
	copy(out, c.vars)
	return out
}

// Len returns the number of variables.
func (c *VariableCollection) Len() int {
	return len(c.vars)
}

// ToRecord returns the full name-to-value map, uv- prefixes retained.
func (c *VariableCollection) ToRecord() map[string]string {
	record := make(map[string]string, len(c.vars))
	for _, v := range c.vars {
		record[v.Name()] = v.Value()
	}
	return record
}

// ToTemplateRecord returns the map keyed for template substitution:
// user variables lose their uv- prefix.
func (c *VariableCollection) ToTemplateRecord() map[string]string {
	record := make(map[string]string, len(c.vars))
	for _, v := range c.vars {
		record[v.TemplateName()] = v.Value()
	}
	return record
}
