package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
version: "1.2.0"
params:
  two:
    directive_type:
      pattern: "^(to|summary|defect)$"
    layer_type:
      pattern: "^(project|issue|task)$"
app_prompt:
  base_dir: ./prompts
app_schema:
  base_dir: ./schema
`

func Test_LoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(validConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "^(to|summary|defect)$", cfg.Params.Two.DirectiveType.Pattern)
	assert.Equal(t, "^(project|issue|task)$", cfg.Params.Two.LayerType.Pattern)
	assert.Equal(t, "./prompts", cfg.AppPrompt.BaseDir)
	assert.Equal(t, "./schema", cfg.AppSchema.BaseDir)
}

func Test_LoadFromReader_RejectsUnknownFields(t *testing.T) {
	yaml := `
params:
  two:
    directive_type:
      pattern: "^(to)$"
    layer_type:
      pattern: "^(project)$"
unknown_section:
  key: value
`
	_, err := LoadFromReader(strings.NewReader(yaml))
	require.Error(t, err)

	var invalidErr *InvalidConfigurationError
	assert.ErrorAs(t, err, &invalidErr)
}

func Test_LoadFromReader_MalformedYAML(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("params: [unclosed"))
	require.Error(t, err)

	var invalidErr *InvalidConfigurationError
	assert.ErrorAs(t, err, &invalidErr)
}

func Test_AppConfig_Validate_Version(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"no version", "", false},
		{"supported version", "1.0.0", false},
		{"supported minor", "1.9.3", false},
		{"unsupported major", "2.0.0", true},
		{"not semver", "one-point-oh", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Version = tt.version

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_LoadProfile_Default(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yml"), []byte(validConfigYAML), 0o644))

	cfg, err := LoadProfile(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "^(to|summary|defect)$", cfg.Params.Two.DirectiveType.Pattern)
}

func Test_LoadProfile_Named(t *testing.T) {
	dir := t.TempDir()
	searchYAML := strings.Replace(validConfigYAML, "to|summary|defect", "search|find", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "search-app.yml"), []byte(searchYAML), 0o644))

	cfg, err := LoadProfile(dir, "search")
	require.NoError(t, err)
	assert.Equal(t, "^(search|find)$", cfg.Params.Two.DirectiveType.Pattern)
}

func Test_LoadProfile_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadProfile(dir, "missing")
	require.Error(t, err)

	var notFound *ConfigurationNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Profile)
	assert.NotEmpty(t, notFound.Attempted)
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "^(to|summary|defect)$", cfg.Params.Two.DirectiveType.Pattern)
	assert.Equal(t, "^(project|issue|task)$", cfg.Params.Two.LayerType.Pattern)
}
