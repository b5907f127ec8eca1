package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewResolvedPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"absolute path", "/test/prompts/to/project/f_project.md", "/test/prompts/to/project/f_project.md", false},
		{"cleans path", "/test//prompts/../prompts/f.md", "/test/prompts/f.md", false},
		{"relative path rejected", "prompts/f.md", "", true},
		{"empty string", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewResolvedPath(tt.input, PathMetadata{})

			if tt.wantErr {
				assert.Error(t, err)

				var pathErr *InvalidPathError
				assert.ErrorAs(t, err, &pathErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, p.Value())
			}
		})
	}
}

func Test_ResolvedPath_Metadata(t *testing.T) {
	meta := PathMetadata{
		BaseDir:   "/test/prompts",
		Directive: "to",
		Layer:     "project",
		FileName:  "f_project.md",
	}

	p, err := NewResolvedPath("/test/prompts/to/project/f_project.md", meta)
	require.NoError(t, err)
	assert.Equal(t, meta, p.Metadata())
}

func Test_ResolvedPath_Equals(t *testing.T) {
	p1 := MustNewResolvedPath("/a/b.md", PathMetadata{Directive: "to"})
	p2 := MustNewResolvedPath("/a/b.md", PathMetadata{Directive: "summary"})
	p3 := MustNewResolvedPath("/a/c.md", PathMetadata{})

	// Equality is by path value only.
	assert.True(t, p1.Equals(p2))
	assert.False(t, p1.Equals(p3))
}
