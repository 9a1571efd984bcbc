package scaffold

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	ferrors "github.com/forgekit/cli/internal/errors"
)

// Patch describes one insertion after an anchor marker line.
type Patch struct {
	// Anchor is the exact marker text, matched as a whole line in a
	// top-to-bottom scan. The first matching line wins.
	Anchor string

	// Lines are inserted immediately after the anchor line, before whatever
	// followed it, so the most recent insertion sits closest to the anchor.
	Lines []string

	// DedupLine, when non-empty, skips the whole patch if the file already
	// contains this exact line anywhere. Used for import-style declarations
	// only; other anchors deliberately append on every invocation.
	DedupLine string
}

// PatchOutcome classifies the result of applying one patch.
type PatchOutcome string

const (
	// PatchApplied means the lines were inserted and the file rewritten.
	PatchApplied PatchOutcome = "patched"

	// PatchDuplicate means the de-dup line was already present; no write.
	PatchDuplicate PatchOutcome = "duplicate"

	// PatchFailed means the anchor was missing or the rewrite failed; the
	// file is byte-for-byte unchanged.
	PatchFailed PatchOutcome = "failed"
)

// PatchResult reports the outcome for a single anchor.
type PatchResult struct {
	// Path is the patch target relative to the project root.
	Path string

	// Anchor is the marker text the patch targeted.
	Anchor string

	// Outcome is the patch outcome.
	Outcome PatchOutcome

	// Err is set when Outcome is PatchFailed.
	Err error
}

// Patcher extends previously generated files by inserting lines after anchor
// markers. Each Apply is an independent whole-file read-modify-write; callers
// that patch several anchors in one operation must invoke Apply in the order
// the anchors should receive their lines.
type Patcher struct {
	root string
}

// NewPatcher creates a patcher rooted at dir.
func NewPatcher(dir string) *Patcher {
	return &Patcher{root: dir}
}

// Apply inserts patch.Lines after the first line equal to patch.Anchor and
// rewrites the file atomically (temp file + rename), so a crash leaves the
// file in either its pre- or post-patch state, never a torn mixture.
//
// A missing anchor is a contract violation by the caller or a tampered
// target: the file is left unchanged and a missing-anchor error is reported.
// The patcher never appends at end-of-file or guesses a location.
func (p *Patcher) Apply(relPath string, patch Patch) PatchResult {
	target := filepath.Join(p.root, relPath)

	data, err := os.ReadFile(target)
	if err != nil {
		return PatchResult{
			Path:    relPath,
			Anchor:  patch.Anchor,
			Outcome: PatchFailed,
			Err:     ferrors.NewFileSystemError("reading patch target", target, err),
		}
	}

	lines := strings.Split(string(data), "\n")

	if patch.DedupLine != "" && slices.Contains(lines, patch.DedupLine) {
		return PatchResult{Path: relPath, Anchor: patch.Anchor, Outcome: PatchDuplicate}
	}

	idx := slices.Index(lines, patch.Anchor)
	if idx < 0 {
		return PatchResult{
			Path:    relPath,
			Anchor:  patch.Anchor,
			Outcome: PatchFailed,
			Err:     ferrors.NewMissingAnchorError(patch.Anchor, target),
		}
	}

	patched := make([]string, 0, len(lines)+len(patch.Lines))
	patched = append(patched, lines[:idx+1]...)
	patched = append(patched, patch.Lines...)
	patched = append(patched, lines[idx+1:]...)

	if err := writeAtomic(target, strings.Join(patched, "\n")); err != nil {
		return PatchResult{
			Path:    relPath,
			Anchor:  patch.Anchor,
			Outcome: PatchFailed,
			Err:     ferrors.NewFileSystemError("rewriting patch target", target, err),
		}
	}

	return PatchResult{Path: relPath, Anchor: patch.Anchor, Outcome: PatchApplied}
}

// writeAtomic writes content to a temporary file in the target's directory
// and renames it over the target, preserving the original file mode.
func writeAtomic(target, content string) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".forge-patch-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
