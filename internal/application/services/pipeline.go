// Package services orchestrates the validation, path-resolution, and
// variable-assembly pipeline behind a single entry point.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/breakdown-dev/breakdown/internal/config"
	domainservices "github.com/breakdown-dev/breakdown/internal/domain/services"
	"github.com/breakdown-dev/breakdown/internal/infrastructure/paths"
	"github.com/breakdown-dev/breakdown/internal/infrastructure/templates"
)

// TemplateRenderer is the external rendering collaborator: given a path
// and a variable map it returns the substituted template body.
type TemplateRenderer interface {
	Render(path string, vars map[string]string) (string, error)
}

// Request carries one CLI invocation's raw inputs.
type Request struct {
	// Args is the raw (directive, layer) token pair.
	Args []string
	// Profile selects the pattern configuration; empty means the default.
	Profile string
	// Config is the loaded profile configuration; nil means none found.
	Config *config.AppConfig

	FromFile    string
	FromLayer   string
	Adaptation  string
	Destination string

	// InputText is the stdin content, already read by the caller.
	InputText string
	// UserVariables are the uv- prefixed custom variables.
	UserVariables map[string]string

	PromptBaseDir string
	SchemaBaseDir string
	OutputBaseDir string

	// WorkDir overrides the process working directory (for tests).
	WorkDir string
	// TestMode substitutes fallback text for empty stdin input.
	TestMode bool
}

// Result is the CLI-facing success value: the three resolved paths, the
// assembled variable record, and the rendered prompt.
type Result struct {
	Directive  string            `json:"directive" yaml:"directive"`
	Layer      string            `json:"layer" yaml:"layer"`
	PromptPath string            `json:"prompt_path" yaml:"prompt_path"`
	SchemaPath string            `json:"schema_path" yaml:"schema_path"`
	OutputPath string            `json:"output_path" yaml:"output_path"`
	Variables  map[string]string `json:"variables" yaml:"variables"`
	Prompt     string            `json:"prompt" yaml:"prompt"`
}

// PipelineError aggregates every failure of one invocation. The pipeline
// never emits a partial result alongside errors.
type PipelineError struct {
	Errors []error
}

func (e *PipelineError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the aggregated errors to errors.Is/errors.As.
func (e *PipelineError) Unwrap() []error {
	return e.Errors
}

// Pipeline wires the validator, the three path resolvers, the variables
// builder, and the renderer.
type Pipeline struct {
	validator *domainservices.ParameterValidator
	renderer  TemplateRenderer
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithRenderer overrides the template renderer.
func WithRenderer(r TemplateRenderer) PipelineOption {
	return func(p *Pipeline) { p.renderer = r }
}

// NewPipeline creates a Pipeline with the default renderer.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		validator: domainservices.NewParameterValidator(),
		renderer:  templates.NewRenderer(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one invocation: validate tokens, resolve the three paths,
// assemble the variable record, render the prompt. On failure it returns
// a PipelineError carrying every problem found.
func (p *Pipeline) Run(req Request) (*Result, error) {
	validated, err := p.validator.Validate(req.Args, req.Config, req.Profile)
	if err != nil {
		return nil, &PipelineError{Errors: []error{err}}
	}

	base := paths.ResolveParams{
		Directive:  validated.Directive,
		Layer:      validated.Layer,
		Tokens:     validated.Tokens(),
		FromFile:   req.FromFile,
		FromLayer:  req.FromLayer,
		Adaptation: req.Adaptation,
		WorkDir:    req.WorkDir,
	}

	var errs []error

	promptParams := base
	promptParams.BaseDirOverride = req.PromptBaseDir
	promptPath, err := paths.NewPromptPathResolver(req.Config).Resolve(promptParams)
	if err != nil {
		errs = append(errs, err)
	}

	schemaParams := base
	schemaParams.BaseDirOverride = req.SchemaBaseDir
	schemaPath, err := paths.NewSchemaPathResolver(req.Config).Resolve(schemaParams)
	if err != nil {
		errs = append(errs, err)
	}

	outputParams := base
	outputParams.BaseDirOverride = req.OutputBaseDir
	outputParams.Destination = req.Destination
	outputPath, err := paths.NewOutputPathResolver(req.Config).Resolve(outputParams)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, &PipelineError{Errors: errs}
	}

	builder := domainservices.NewVariablesBuilder()
	builder.AddFromFactoryValues(domainservices.FactoryValues{
		InputFilePath:  req.FromFile,
		OutputFilePath: outputPath.Value(),
		SchemaFilePath: schemaPath.Value(),
		PromptBaseDir:  promptPath.Metadata().BaseDir,
		InputText:      req.InputText,
		UserVariables:  req.UserVariables,
		TestMode:       req.TestMode,
	})

	collection, err := builder.Build()
	if err != nil {
		var buildErrs *domainservices.BuildErrors
		if errors.As(err, &buildErrs) {
			return nil, &PipelineError{Errors: buildErrs.Errors}
		}
		return nil, &PipelineError{Errors: []error{err}}
	}

	rendered, err := p.renderer.Render(promptPath.Value(), collection.ToTemplateRecord())
	if err != nil {
		return nil, &PipelineError{Errors: []error{err}}
	}

	return &Result{
		Directive:  validated.Directive.String(),
		Layer:      validated.Layer.String(),
		PromptPath: promptPath.Value(),
		SchemaPath: schemaPath.Value(),
		OutputPath: outputPath.Value(),
		Variables:  collection.ToRecord(),
		Prompt:     rendered,
	}, nil
}
