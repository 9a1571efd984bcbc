// Package scaffold writes generated files to disk and patches existing ones
// at anchor markers. Both operations are non-destructive by contract: the
// materializer never overwrites an existing file, and the patcher only
// inserts after exact marker lines.
package scaffold

import (
	"os"
	"path/filepath"

	ferrors "github.com/forgekit/cli/internal/errors"
)

// Outcome classifies the result of materializing one file.
type Outcome string

const (
	// OutcomeCreated means the file was written.
	OutcomeCreated Outcome = "created"

	// OutcomeSkipped means the file already existed and was left untouched.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means directory or file creation failed.
	OutcomeFailed Outcome = "failed"
)

// FileResult reports the outcome for a single target path.
type FileResult struct {
	// Path is the target path relative to the project root.
	Path string

	// Desc is a one-line description of the file for reports.
	Desc string

	// Outcome is the materialization outcome.
	Outcome Outcome

	// Err is set when Outcome is OutcomeFailed.
	Err error
}

// Materializer idempotently writes generated content under a project root.
type Materializer struct {
	root string
}

// NewMaterializer creates a materializer rooted at dir.
func NewMaterializer(dir string) *Materializer {
	return &Materializer{root: dir}
}

// Write materializes content at relPath. Missing intermediate directories are
// created. If the target already exists the write is skipped and the existing
// content, including any user edits, is left untouched; this is the system's
// central idempotence guarantee.
func (m *Materializer) Write(relPath, content string) FileResult {
	target := filepath.Join(m.root, relPath)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return FileResult{
			Path:    relPath,
			Outcome: OutcomeFailed,
			Err:     ferrors.NewFileSystemError("creating parent directory", target, err),
		}
	}

	if _, err := os.Stat(target); err == nil {
		return FileResult{Path: relPath, Outcome: OutcomeSkipped}
	} else if !os.IsNotExist(err) {
		return FileResult{
			Path:    relPath,
			Outcome: OutcomeFailed,
			Err:     ferrors.NewFileSystemError("checking target file", target, err),
		}
	}

	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return FileResult{
			Path:    relPath,
			Outcome: OutcomeFailed,
			Err:     ferrors.NewFileSystemError("writing file", target, err),
		}
	}

	return FileResult{Path: relPath, Outcome: OutcomeCreated}
}
