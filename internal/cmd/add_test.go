package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/forgekit/cli/internal/errors"
	"github.com/forgekit/cli/internal/testutil"
)

// chdirIntoProject generates a project and makes it the working directory.
func chdirIntoProject(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "clock")
	require.NoError(t, execute(t, "new", "My Clock", "--dir", dir))
	t.Chdir(dir)
	return dir
}

func TestAddCmd_Widget(t *testing.T) {
	dir := chdirIntoProject(t)

	err := execute(t, "add", "widget", "Status Bar")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "internal/widgets/status_bar.go"))

	layout := testutil.ReadFile(t, filepath.Join(dir, "internal/ui/layout.go"))
	assert.Contains(t, layout, "statusBarWidget := widgets.NewStatusBar(win)")
	assert.Contains(t, layout, "statusBarWidget,")
}

func TestAddCmd_Page(t *testing.T) {
	dir := chdirIntoProject(t)

	err := execute(t, "add", "page", "Settings")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "internal/pages/settings/view.go"))
	assert.FileExists(t, filepath.Join(dir, "internal/pages/settings/logic.go"))
}

func TestAddCmd_Service(t *testing.T) {
	dir := chdirIntoProject(t)

	err := execute(t, "add", "service", "Sync Engine")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "internal/services/sync_engine.go"))
}

func TestAddCmd_Model(t *testing.T) {
	dir := chdirIntoProject(t)

	err := execute(t, "add", "model", "Track")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "internal/models/track.go"))
}

func TestAddCmd_UnknownKind(t *testing.T) {
	chdirIntoProject(t)

	err := execute(t, "add", "plugin", "Thing")
	require.Error(t, err)

	var exitErr *ferrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ferrors.ExitValidationError, exitErr.Code)
}

func TestAddCmd_OutsideProject(t *testing.T) {
	t.Chdir(t.TempDir())

	err := execute(t, "add", "widget", "Status Bar")
	require.Error(t, err)

	var exitErr *ferrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ferrors.ExitMissingDescriptor, exitErr.Code)
}

func TestAddCmd_TamperedLayout(t *testing.T) {
	dir := chdirIntoProject(t)

	layoutPath := filepath.Join(dir, "internal/ui/layout.go")
	tampered := strings.ReplaceAll(
		testutil.ReadFile(t, layoutPath),
		"// forge:widget-list",
		"// markers removed",
	)
	testutil.WriteFile(t, dir, "internal/ui/layout.go", tampered)

	err := execute(t, "add", "widget", "Status Bar")
	require.Error(t, err)

	var exitErr *ferrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ferrors.ExitMissingAnchor, exitErr.Code)
	assert.True(t, exitErr.Printed)
}
