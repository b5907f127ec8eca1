package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakdown-dev/breakdown/internal/config"
)

func outputConfig() *config.AppConfig {
	return &config.AppConfig{Output: config.BaseDirConfig{BaseDir: "out"}}
}

func outputWorkDir(t *testing.T) string {
	t.Helper()
	workDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "out"), 0o755))
	return workDir
}

func Test_OutputPathResolver_Destination(t *testing.T) {
	workDir := outputWorkDir(t)

	params := promptParams(workDir, "to", "project")
	params.Destination = "result.md"

	resolved, err := NewOutputPathResolver(outputConfig()).Resolve(params)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "out", "to", "project", "result.md"), resolved.Value())
}

func Test_OutputPathResolver_AppendsExtension(t *testing.T) {
	workDir := outputWorkDir(t)

	params := promptParams(workDir, "to", "project")
	params.Destination = "result"

	resolved, err := NewOutputPathResolver(outputConfig()).Resolve(params)
	require.NoError(t, err)
	assert.Equal(t, "result.md", resolved.Metadata().FileName)
}

func Test_OutputPathResolver_KeepsExistingExtension(t *testing.T) {
	workDir := outputWorkDir(t)

	params := promptParams(workDir, "to", "project")
	params.Destination = "report.txt"

	resolved, err := NewOutputPathResolver(outputConfig()).Resolve(params)
	require.NoError(t, err)
	assert.Equal(t, "report.txt", resolved.Metadata().FileName)
}

func Test_OutputPathResolver_SanitizesDangerousCharacters(t *testing.T) {
	workDir := outputWorkDir(t)

	params := promptParams(workDir, "to", "project")
	params.Destination = `re<su>lt:"x"|?*.md`

	resolved, err := NewOutputPathResolver(outputConfig()).Resolve(params)
	require.NoError(t, err)
	assert.Equal(t, "re_su_lt__x____.md", resolved.Metadata().FileName)
}

func Test_OutputPathResolver_AutoGeneratedName(t *testing.T) {
	workDir := outputWorkDir(t)
	namePattern := regexp.MustCompile(`^\d{8}_[0-9a-f]{8}\.md$`)

	for _, destination := range []string{"", "-", "   "} {
		params := promptParams(workDir, "to", "project")
		params.Destination = destination

		resolved, err := NewOutputPathResolver(outputConfig()).Resolve(params)
		require.NoError(t, err)
		assert.Regexp(t, namePattern, resolved.Metadata().FileName)
	}
}

func Test_OutputPathResolver_AutoGeneratedNamesDoNotCollide(t *testing.T) {
	workDir := outputWorkDir(t)
	r := NewOutputPathResolver(outputConfig())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		resolved, err := r.Resolve(promptParams(workDir, "to", "project"))
		require.NoError(t, err)
		assert.False(t, seen[resolved.Value()], "generated name repeated: %s", resolved.Value())
		seen[resolved.Value()] = true
	}
}

func Test_OutputPathResolver_DefaultBaseDir(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "output"), 0o755))

	params := promptParams(workDir, "to", "project")
	params.Destination = "x.md"

	resolved, err := NewOutputPathResolver(nil).Resolve(params)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "output", "to", "project", "x.md"), resolved.Value())
}

func Test_OutputPathResolver_BaseDirectoryNotFound(t *testing.T) {
	workDir := t.TempDir()

	params := promptParams(workDir, "to", "project")
	params.Destination = "x.md"

	_, err := NewOutputPathResolver(outputConfig()).Resolve(params)
	var baseErr *BaseDirectoryNotFoundError
	require.ErrorAs(t, err, &baseErr)
}
