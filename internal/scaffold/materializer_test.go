package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/forgekit/cli/internal/errors"
	"github.com/forgekit/cli/internal/testutil"
)

func TestMaterializer_Creates(t *testing.T) {
	dir := t.TempDir()
	m := NewMaterializer(dir)

	res := m.Write("internal/widgets/my_clock.go", "package widgets\n")

	require.NoError(t, res.Err)
	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.Equal(t, "internal/widgets/my_clock.go", res.Path)

	content := testutil.ReadFile(t, filepath.Join(dir, "internal/widgets/my_clock.go"))
	assert.Equal(t, "package widgets\n", content)
}

func TestMaterializer_CreatesIntermediateDirs(t *testing.T) {
	dir := t.TempDir()
	m := NewMaterializer(dir)

	res := m.Write("a/b/c/d.txt", "deep")

	require.NoError(t, res.Err)
	assert.Equal(t, OutcomeCreated, res.Outcome)
	assert.DirExists(t, filepath.Join(dir, "a", "b", "c"))
}

func TestMaterializer_SkipKeepsFirstWrite(t *testing.T) {
	dir := t.TempDir()
	m := NewMaterializer(dir)

	first := m.Write("file.go", "original content")
	require.Equal(t, OutcomeCreated, first.Outcome)

	// Second write with different content must not clobber the first.
	second := m.Write("file.go", "different content")
	assert.Equal(t, OutcomeSkipped, second.Outcome)
	assert.NoError(t, second.Err)

	content := testutil.ReadFile(t, filepath.Join(dir, "file.go"))
	assert.Equal(t, "original content", content)
}

func TestMaterializer_SkipPreservesUserEdits(t *testing.T) {
	dir := t.TempDir()
	m := NewMaterializer(dir)

	require.Equal(t, OutcomeCreated, m.Write("file.go", "generated").Outcome)

	// Simulate a user edit after generation.
	testutil.WriteFile(t, dir, "file.go", "edited by user")

	res := m.Write("file.go", "generated")
	assert.Equal(t, OutcomeSkipped, res.Outcome)
	assert.Equal(t, "edited by user", testutil.ReadFile(t, filepath.Join(dir, "file.go")))
}

func TestMaterializer_FailedDirCreation(t *testing.T) {
	dir := t.TempDir()
	// A file where a directory is needed makes MkdirAll fail.
	testutil.WriteFile(t, dir, "blocker", "not a directory")

	m := NewMaterializer(dir)
	res := m.Write("blocker/file.go", "content")

	assert.Equal(t, OutcomeFailed, res.Outcome)
	require.Error(t, res.Err)
	assert.True(t, errors.Is(res.Err, ferrors.ErrFileSystem))
}

func TestMaterializer_FailedWriteDoesNotPanic(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "ro")
	require.NoError(t, os.MkdirAll(sub, 0o555))
	t.Cleanup(func() { _ = os.Chmod(sub, 0o755) })

	m := NewMaterializer(sub)
	res := m.Write("file.go", "content")

	if os.Getuid() == 0 {
		// Root bypasses permission bits; nothing to assert here.
		t.Skip("running as root, write cannot be made to fail via permissions")
	}

	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.True(t, errors.Is(res.Err, ferrors.ErrFileSystem))
}
