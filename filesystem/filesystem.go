// Package filesystem holds the afero backend every file access goes through,
// so tests can swap the OS for memory.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Stdio is the path that stands for standard input or output.
const Stdio = "-"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Open opens path for reading; Stdio yields os.Stdin.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	return backend.Open(path)
}

// Create truncates or creates path for writing; Stdio yields os.Stdout.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdio || path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return backend.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
