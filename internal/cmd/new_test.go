package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/forgekit/cli/internal/errors"
	"github.com/forgekit/cli/internal/testutil"
)

// execute runs the root command with the given args, resetting the
// package-level flag state between invocations.
func execute(t *testing.T, args ...string) error {
	t.Helper()

	newDir, newModule, newWidth, newHeight, newTheme, newLayout = "", "", "", "", "", ""
	configFlag, verboseFlag = "", false
	configInitForce = false
	forgeConfig = nil

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestNewCmd_GeneratesProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clock")

	err := execute(t, "new", "My Clock", "--dir", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "go.mod"))
	assert.FileExists(t, filepath.Join(dir, "main.go"))
	assert.FileExists(t, filepath.Join(dir, "internal/ui/layout.go"))

	gomod := testutil.ReadFile(t, filepath.Join(dir, "go.mod"))
	assert.Contains(t, gomod, "module example.com/myclock")
}

func TestNewCmd_HonorsFlags(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clock")

	err := execute(t, "new", "My Clock",
		"--dir", dir,
		"--module", "github.com/acme/clock",
		"--width", "1024",
		"--height", "768",
		"--theme", "light",
		"--layout", "tabs")
	require.NoError(t, err)

	gomod := testutil.ReadFile(t, filepath.Join(dir, "go.mod"))
	assert.Contains(t, gomod, "module github.com/acme/clock")

	mainSrc := testutil.ReadFile(t, filepath.Join(dir, "main.go"))
	assert.Contains(t, mainSrc, "fyne.NewSize(1024, 768)")
	assert.Contains(t, mainSrc, `Theme("light")`)

	layout := testutil.ReadFile(t, filepath.Join(dir, "internal/ui/layout.go"))
	assert.Contains(t, layout, `Arrange("tabs", objects)`)
}

func TestNewCmd_InvalidDimensionFallsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clock")

	err := execute(t, "new", "My Clock", "--dir", dir, "--width", "wide")
	require.NoError(t, err)

	mainSrc := testutil.ReadFile(t, filepath.Join(dir, "main.go"))
	assert.Contains(t, mainSrc, "fyne.NewSize(800, 600)")
}

func TestNewCmd_UnknownTheme(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clock")

	err := execute(t, "new", "My Clock", "--dir", dir, "--theme", "solarized")
	require.Error(t, err)

	var exitErr *ferrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ferrors.ExitValidationError, exitErr.Code)

	assert.NoFileExists(t, filepath.Join(dir, "go.mod"))
}

func TestNewCmd_UnknownLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clock")

	err := execute(t, "new", "My Clock", "--dir", dir, "--layout", "stack")
	require.Error(t, err)

	var exitErr *ferrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ferrors.ExitValidationError, exitErr.Code)
}

func TestNewCmd_InvalidName(t *testing.T) {
	err := execute(t, "new", "!!!", "--dir", filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)

	var exitErr *ferrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ferrors.ExitValidationError, exitErr.Code)
}

func TestNewCmd_DefaultDirFromName(t *testing.T) {
	t.Chdir(t.TempDir())

	err := execute(t, "new", "My Clock")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join("my_clock", "go.mod"))
}

func TestNewCmd_ConfigDefaults(t *testing.T) {
	home := t.TempDir()
	testutil.WriteFile(t, home, ".forge/config.yaml", `window:
  width: 1280
  height: 720
theme: light
`)
	cfgPath := filepath.Join(home, ".forge", "config.yaml")
	dir := filepath.Join(t.TempDir(), "clock")

	err := execute(t, "--config", cfgPath, "new", "My Clock", "--dir", dir)
	require.NoError(t, err)

	mainSrc := testutil.ReadFile(t, filepath.Join(dir, "main.go"))
	assert.Contains(t, mainSrc, "fyne.NewSize(1280, 720)")
	assert.Contains(t, mainSrc, `Theme("light")`)
}
