// Package stdin reads piped standard input for the pipeline. The only
// timeout in the system lives here.
package stdin

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Options configures a read.
type Options struct {
	// Timeout bounds the read; zero means no bound.
	Timeout time.Duration
}

// Read returns the full content of f when it is a pipe or file, and an
// empty string when it is an interactive terminal.
func Read(f *os.File, opts Options) (string, error) {
	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat stdin: %w", err)
	}
	if info.Mode()&os.ModeCharDevice != 0 {
		// Interactive terminal, nothing piped.
		return "", nil
	}

	if opts.Timeout <= 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(f)
		ch <- result{data: data, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return "", fmt.Errorf("reading stdin: %w", res.err)
		}
		return string(res.data), nil
	case <-time.After(opts.Timeout):
		return "", fmt.Errorf("reading stdin: timed out after %s", opts.Timeout)
	}
}
