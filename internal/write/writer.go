// Package write persists generated artifacts to disk.
package write

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Options controls how an artifact is written.
type Options struct {
	// CreateDirs creates missing parent directories.
	CreateDirs bool
	// Atomic writes through a temp file and renames it into place, so a
	// failed run never leaves a truncated artifact behind.
	Atomic bool
}

// Writer writes generated files.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// NeedsWrite reports whether path is missing or differs from content.
func (w *Writer) NeedsWrite(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return !bytes.Equal(existing, content), nil
}

// Write stores content at path according to opts.
func (w *Writer) Write(path string, content []byte, opts Options) error {
	if opts.CreateDirs {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
		}
	}

	if opts.Atomic {
		return w.atomicWrite(path, content)
	}
	return os.WriteFile(path, content, 0o644)
}

func (w *Writer) atomicWrite(path string, content []byte) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
