package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakdown-dev/breakdown/internal/config"
	domainservices "github.com/breakdown-dev/breakdown/internal/domain/services"
	"github.com/breakdown-dev/breakdown/internal/domain/values"
	"github.com/breakdown-dev/breakdown/internal/infrastructure/paths"
)

// pipelineFixture creates a work dir with prompt, schema, and output
// trees for to/project.
func pipelineFixture(t *testing.T) (string, *config.AppConfig) {
	t.Helper()
	workDir := t.TempDir()

	promptPath := filepath.Join(workDir, "prompts", "to", "project", "f_project.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(promptPath), 0o755))
	require.NoError(t, os.WriteFile(promptPath,
		[]byte("# Breakdown\n\nInput: {input_text_file}\nOutput: {destination_path}\n\n{input_text}\n"), 0o644))

	schemaPath := filepath.Join(workDir, "schema", "to", "project", "base.schema.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(schemaPath), 0o755))
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object"}`), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "out"), 0o755))

	cfg := &config.AppConfig{
		Params: config.ParamsConfig{
			Two: config.TwoParamsConfig{
				DirectiveType: config.PatternConfig{Pattern: "^(to|summary)$"},
				LayerType:     config.PatternConfig{Pattern: "^(project|task)$"},
			},
		},
		AppPrompt: config.BaseDirConfig{BaseDir: "prompts"},
		AppSchema: config.BaseDirConfig{BaseDir: "schema"},
		Output:    config.BaseDirConfig{BaseDir: "out"},
	}
	return workDir, cfg
}

func Test_Pipeline_Run(t *testing.T) {
	workDir, cfg := pipelineFixture(t)

	result, err := NewPipeline().Run(Request{
		Args:        []string{"to", "project"},
		Config:      cfg,
		FromFile:    "/input/project_plan.md",
		Destination: "result.md",
		InputText:   "build a parser",
		WorkDir:     workDir,
	})
	require.NoError(t, err)

	assert.Equal(t, "to", result.Directive)
	assert.Equal(t, "project", result.Layer)
	assert.Equal(t, filepath.Join(workDir, "prompts", "to", "project", "f_project.md"), result.PromptPath)
	assert.Equal(t, filepath.Join(workDir, "schema", "to", "project", "base.schema.md"), result.SchemaPath)
	assert.Equal(t, filepath.Join(workDir, "out", "to", "project", "result.md"), result.OutputPath)

	assert.Equal(t, "project_plan.md", result.Variables["input_text_file"])
	assert.Equal(t, result.OutputPath, result.Variables["destination_path"])
	assert.Equal(t, result.SchemaPath, result.Variables["schema_file"])
	assert.Equal(t, "build a parser", result.Variables["input_text"])

	assert.Contains(t, result.Prompt, "Input: project_plan.md")
	assert.Contains(t, result.Prompt, "build a parser")
}

func Test_Pipeline_Run_UserVariables(t *testing.T) {
	workDir, cfg := pipelineFixture(t)

	promptPath := filepath.Join(workDir, "prompts", "to", "project", "f_project.md")
	require.NoError(t, os.WriteFile(promptPath, []byte("owner: {owner}\n"), 0o644))

	result, err := NewPipeline().Run(Request{
		Args:          []string{"to", "project"},
		Config:        cfg,
		UserVariables: map[string]string{"uv-owner": "alice"},
		WorkDir:       workDir,
	})
	require.NoError(t, err)

	// The record keeps the prefix, the rendered template does not.
	assert.Equal(t, "alice", result.Variables["uv-owner"])
	assert.Contains(t, result.Prompt, "owner: alice")
}

func Test_Pipeline_Run_InvalidDirective(t *testing.T) {
	workDir, cfg := pipelineFixture(t)

	_, err := NewPipeline().Run(Request{
		Args:    []string{"convert", "project"},
		Config:  cfg,
		WorkDir: workDir,
	})
	require.Error(t, err)

	var pipeErr *PipelineError
	require.ErrorAs(t, err, &pipeErr)
	require.Len(t, pipeErr.Errors, 1)

	var dirErr *values.InvalidDirectiveError
	require.ErrorAs(t, pipeErr.Errors[0], &dirErr)
	assert.Equal(t, []string{"to", "summary"}, dirErr.ValidTypes)
}

func Test_Pipeline_Run_AggregatesResolutionErrors(t *testing.T) {
	workDir, cfg := pipelineFixture(t)

	// Break prompt and schema resolution at once; both failures must be
	// reported together.
	cfg.AppPrompt.BaseDir = "missing-prompts"
	cfg.AppSchema.BaseDir = "missing-schema"

	_, err := NewPipeline().Run(Request{
		Args:    []string{"to", "project"},
		Config:  cfg,
		WorkDir: workDir,
	})
	require.Error(t, err)

	var pipeErr *PipelineError
	require.ErrorAs(t, err, &pipeErr)
	assert.Len(t, pipeErr.Errors, 2)
}

func Test_Pipeline_Run_NoPartialResultOnError(t *testing.T) {
	workDir, cfg := pipelineFixture(t)
	cfg.AppSchema.BaseDir = "missing-schema"

	result, err := NewPipeline().Run(Request{
		Args:    []string{"to", "project"},
		Config:  cfg,
		WorkDir: workDir,
	})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func Test_Pipeline_Run_NoConfiguration(t *testing.T) {
	_, err := NewPipeline().Run(Request{
		Args: []string{"to", "project"},
	})
	require.Error(t, err)

	var pipeErr *PipelineError
	require.ErrorAs(t, err, &pipeErr)

	var notFound *domainservices.ConfigurationNotFoundError
	assert.ErrorAs(t, pipeErr.Errors[0], &notFound)
}

func Test_Pipeline_Run_EmptyOptionalInputs(t *testing.T) {
	workDir, cfg := pipelineFixture(t)

	result, err := NewPipeline().Run(Request{
		Args:    []string{"to", "project"},
		Config:  cfg,
		WorkDir: workDir,
	})
	require.NoError(t, err)

	// No input file and no stdin: those variables are simply absent.
	assert.NotContains(t, result.Variables, "input_text_file")
	assert.NotContains(t, result.Variables, "input_text")
	assert.Contains(t, result.Variables, "destination_path")
	assert.Contains(t, result.Variables, "schema_file")
}

func Test_Pipeline_Run_TemplateNotFoundCarriesAttempts(t *testing.T) {
	workDir, cfg := pipelineFixture(t)
	require.NoError(t, os.Remove(filepath.Join(workDir, "prompts", "to", "project", "f_project.md")))

	_, err := NewPipeline().Run(Request{
		Args:    []string{"to", "project"},
		Config:  cfg,
		WorkDir: workDir,
	})
	require.Error(t, err)

	var pipeErr *PipelineError
	require.ErrorAs(t, err, &pipeErr)

	var notFound *paths.TemplateNotFoundError
	require.ErrorAs(t, pipeErr.Errors[0], &notFound)
	assert.NotEmpty(t, notFound.Attempted)
}
