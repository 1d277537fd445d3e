// Package workspace stages generation output in a scratch directory next to
// the final destination. Artifacts are written to the stage first and moved
// into place only after the run succeeds, so a failed run never leaves a
// half-written project behind.
package workspace

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/siteforge-dev/siteforge/internal/logfields"
)

// Staging is a single-use staging directory for one generation run.
type Staging struct {
	finalDir string
	stageDir string
}

// Begin creates a timestamped stage directory alongside finalDir.
func Begin(finalDir string) (*Staging, error) {
	finalDir = filepath.Clean(finalDir)
	parent := filepath.Dir(finalDir)
	if err := os.MkdirAll(parent, 0o750); err != nil {
		return nil, fmt.Errorf("create output parent: %w", err)
	}
	stamp := time.Now().Format("20060102-150405")
	stageDir := filepath.Join(parent, fmt.Sprintf(".%s-stage-%s", filepath.Base(finalDir), stamp))
	if err := os.MkdirAll(stageDir, 0o750); err != nil {
		return nil, fmt.Errorf("create stage directory: %w", err)
	}
	slog.Debug("staging workspace created", logfields.Path(stageDir))
	return &Staging{finalDir: finalDir, stageDir: stageDir}, nil
}

// Dir returns the stage directory artifacts should be written into.
func (s *Staging) Dir() string { return s.stageDir }

// Finalize moves staged files into the final directory, overwriting existing
// files. Files already present in the destination but absent from the stage
// are left alone.
func (s *Staging) Finalize(clean bool) error {
	if clean {
		if err := os.RemoveAll(s.finalDir); err != nil {
			return fmt.Errorf("clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(s.finalDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	err := filepath.WalkDir(s.stageDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(s.stageDir, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		dst := filepath.Join(s.finalDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o750)
		}
		if mkErr := os.MkdirAll(filepath.Dir(dst), 0o750); mkErr != nil {
			return mkErr
		}
		if rmErr := os.Remove(dst); rmErr != nil && !os.IsNotExist(rmErr) {
			return rmErr
		}
		if linkErr := os.Rename(path, dst); linkErr != nil {
			return linkErr
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("finalize staged output: %w", err)
	}
	return s.Abort()
}

// Abort removes the stage directory. Safe to call after Finalize.
func (s *Staging) Abort() error {
	if err := os.RemoveAll(s.stageDir); err != nil {
		return fmt.Errorf("remove stage directory: %w", err)
	}
	return nil
}
