package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/roster"
)

func newTestApp(t *testing.T, config *Config) *App {
	t.Helper()
	logger := zerolog.Nop()
	a, err := New("1.2.3", "abc123", "2025-01-01", "test", WithConfig(config), WithLogger(&logger))
	require.NoError(t, err)
	return a
}

func TestNewLogsConfigWarnings(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)
	t.Setenv("ENROLLER_TIPO_PROCESO", "Borrar")

	a, err := New("dev", "", "", "", WithLogger(tl.Logger))
	require.NoError(t, err)

	assert.Equal(t, roster.ModeEnroll, a.Config().ProcessMode)
	assert.Len(t, a.Config().Warnings, 1)
	assert.True(t, tl.Contains("Configuration problem"))
	assert.True(t, tl.Contains(KeyProcessMode))
}

func TestSettings(t *testing.T) {
	a := newTestApp(t, &Config{
		BannerDirectory: "banner",
		AccountsFile:    "usuarios.xlsx",
		OutputDirectory: "salida",
		CoursesFile:     "shortnames.csv",
		ProcessMode:     roster.ModeUnenroll,
	})

	s := a.Settings(roster.Moderator)
	assert.Equal(t, roster.Moderator, s.Variant)
	assert.Equal(t, roster.ModeUnenroll, s.Mode)
	assert.Equal(t, "banner", s.BannerDir)
	assert.Equal(t, "usuarios.xlsx", s.AccountsFile)
	assert.Equal(t, "salida", s.OutputDir)
	assert.Equal(t, "shortnames.csv", s.CoursesFile)
	assert.True(t, s.Merge)
	assert.Nil(t, s.MinDate)
}

func TestExecuteVersion(t *testing.T) {
	a := newTestApp(t, &Config{})
	root := a.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "-v"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "enroller 1.2.3")
	assert.Contains(t, out.String(), "commit:   abc123")
	assert.True(t, a.Config().Verbose)
}

func TestExecuteFlagsOverrideConfig(t *testing.T) {
	a := newTestApp(t, &Config{Format: "table"})
	require.NoError(t, a.Execute(context.Background(), []string{"version", "-o", "json", "--log-level", "warn"}))

	assert.Equal(t, "json", a.OutputFormat())
	assert.Equal(t, "warn", a.Config().LogLevel)
}

func TestExecuteConfigFlagReloads(t *testing.T) {
	path := writeConfig(t, "custom.json", `{"salida_directory": "elsewhere"}`)
	a := newTestApp(t, &Config{OutputDirectory: "salida"})

	require.NoError(t, a.Execute(context.Background(), []string{"version", "--config", path}))
	assert.Equal(t, "elsewhere", a.Config().OutputDirectory)
	assert.Equal(t, filepath.Clean(path), filepath.Clean(a.Config().ConfigFile))
}

func TestRootRegistersCommands(t *testing.T) {
	root := newTestApp(t, &Config{}).createRootCommand()

	for _, name := range []string{"students", "moderators", "merge", "courses", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestExecuteRejectsUnknownFormat(t *testing.T) {
	a := newTestApp(t, &Config{})
	err := a.Execute(context.Background(), []string{"version", "-o", "xml"})
	assert.Error(t, err)
}
