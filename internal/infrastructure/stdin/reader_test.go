package stdin

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openInput(t *testing.T, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func Test_Read_File(t *testing.T) {
	f := openInput(t, "# Project\n\nbuild a parser\n")
	got, err := Read(f, Options{})
	require.NoError(t, err)
	assert.Equal(t, "# Project\n\nbuild a parser\n", got)
}

func Test_Read_Empty(t *testing.T) {
	f := openInput(t, "")
	got, err := Read(f, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func Test_Read_WithinTimeout(t *testing.T) {
	f := openInput(t, "content")
	got, err := Read(f, Options{Timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "content", got)
}

func Test_Read_Timeout(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	// Nothing written and the writer stays open, so the read blocks.
	_, err = Read(r, Options{Timeout: 50 * time.Millisecond})
	assert.ErrorContains(t, err, "timed out")
}
