package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakdown-dev/breakdown/internal/application/services"
)

func sampleResult() *services.Result {
	return &services.Result{
		Directive:  "to",
		Layer:      "project",
		PromptPath: "/work/prompts/to/project/f_project.md",
		SchemaPath: "/work/schema/to/project/base.schema.md",
		OutputPath: "/work/out/to/project/result.md",
		Variables: map[string]string{
			"destination_path": "/work/out/to/project/result.md",
			"input_text":       "hello",
		},
		Prompt: "# Breakdown\n\nhello\n",
	}
}

func Test_NewFormatter(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		format  string
		want    any
		wantErr bool
	}{
		{"text", &TextFormatter{}, false},
		{"", &TextFormatter{}, false},
		{"json", &JSONFormatter{}, false},
		{"yaml", &YAMLFormatter{}, false},
		{"xml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := NewFormatter(tt.format, &buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func Test_TextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextFormatter(&buf).Format(sampleResult()))
	assert.Equal(t, "# Breakdown\n\nhello\n", buf.String())
}

func Test_TextFormatter_AppendsMissingNewline(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult()
	result.Prompt = "no trailing newline"

	require.NoError(t, NewTextFormatter(&buf).Format(result))
	assert.Equal(t, "no trailing newline\n", buf.String())
}

func Test_JSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "to", decoded["directive"])
	assert.Equal(t, "project", decoded["layer"])
	assert.Equal(t, "/work/prompts/to/project/f_project.md", decoded["prompt_path"])
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func Test_JSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).Format(sampleResult()))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"),
		"compact output is a single line plus the trailing newline")
}

func Test_YAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(sampleResult()))

	var decoded services.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "to", decoded.Directive)
	assert.Equal(t, "/work/schema/to/project/base.schema.md", decoded.SchemaPath)
	assert.Equal(t, "hello", decoded.Variables["input_text"])
}
