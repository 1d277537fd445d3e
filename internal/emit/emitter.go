// Package emit writes rendered artifacts to the filesystem. Existing files
// are overwritten without prompting: re-running generation into the same
// directory reconciles it with the current configuration.
package emit

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/siteforge-dev/siteforge/internal/logfields"
	"github.com/siteforge-dev/siteforge/internal/render"
)

// ErrUnsafePath is returned for artifact paths that would escape the output
// root (absolute paths or ".." traversal).
var ErrUnsafePath = errors.New("artifact path escapes output root")

// Emitter writes artifacts under a single output root.
type Emitter struct {
	root string
}

func New(root string) *Emitter {
	return &Emitter{root: filepath.Clean(root)}
}

func (e *Emitter) Root() string { return e.root }

// resolve validates an artifact path and returns its absolute destination.
func (e *Emitter) resolve(rel string) (string, error) {
	if rel == "" || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rel)
	}
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rel)
	}
	return filepath.Join(e.root, clean), nil
}

// Write writes one artifact, creating parent directories as needed.
func (e *Emitter) Write(a render.Artifact) error {
	dst, err := e.resolve(a.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return fmt.Errorf("create dir for %s: %w", a.Path, err)
	}
	if err := os.WriteFile(dst, []byte(a.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", a.Path, err)
	}
	return nil
}

// WriteAll writes every artifact, continuing past individual failures and
// returning the per-artifact errors joined. The count of successful writes is
// always returned.
func (e *Emitter) WriteAll(artifacts []render.Artifact) (int, error) {
	var errs []error
	written := 0
	for _, a := range artifacts {
		if err := e.Write(a); err != nil {
			slog.Error("artifact write failed",
				logfields.Path(a.Path),
				logfields.Error(err))
			errs = append(errs, err)
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}
