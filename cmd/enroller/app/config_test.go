package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/roster"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultBannerDirectory, config.BannerDirectory)
	assert.Equal(t, constants.DefaultAccountsFile, config.AccountsFile)
	assert.Equal(t, constants.DefaultOutputDirectory, config.OutputDirectory)
	assert.Equal(t, constants.DefaultCoursesFile, config.CoursesFile)
	assert.Equal(t, roster.ModeEnroll, config.ProcessMode)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Empty(t, config.LogLevel, "empty level lets -v/-q decide")
	assert.Empty(t, config.Warnings)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"banner_directory": "/data/banner",
		"bdusuarios_file": "/data/usuarios.xlsx",
		"salida_directory": "/data/salida",
		"Tipo_proceso": "Desmatricular"
	}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, "/data/banner", config.BannerDirectory)
	assert.Equal(t, "/data/usuarios.xlsx", config.AccountsFile)
	assert.Equal(t, "/data/salida", config.OutputDirectory)
	assert.Equal(t, constants.DefaultCoursesFile, config.CoursesFile)
	assert.Equal(t, roster.ModeUnenroll, config.ProcessMode)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "salida_directory: out\ntipo_proceso: limpieza\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "out", config.OutputDirectory)
	assert.Equal(t, roster.ModeCleanup, config.ProcessMode)
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{"salida_directory": "from-file"}`)
	t.Setenv("ENROLLER_SALIDA_DIRECTORY", "from-env")
	t.Setenv("ENROLLER_VERBOSE", "true")
	t.Setenv("ENROLLER_FORMAT", "json")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", config.OutputDirectory)
	assert.True(t, config.Verbose)
	assert.Equal(t, "json", config.Format)
}

func TestLoadConfigFallsBack(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		key  string
	}{
		{
			name: "missing explicit file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			key:  "config",
		},
		{
			name: "malformed file",
			path: func(t *testing.T) string { return writeConfig(t, "config.json", "{not json") },
			key:  "config",
		},
		{
			name: "unknown process mode",
			path: func(t *testing.T) string { return writeConfig(t, "config.json", `{"Tipo_proceso": "Borrar"}`) },
			key:  KeyProcessMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(tt.path(t))
			require.NoError(t, err, "configuration problems are never fatal")

			assert.Equal(t, roster.ModeEnroll, config.ProcessMode)
			assert.Equal(t, constants.DefaultBannerDirectory, config.BannerDirectory)
			require.Len(t, config.Warnings, 1)

			var cerr *errors.ConfigError
			require.True(t, errors.As(config.Warnings[0], &cerr))
			assert.Equal(t, tt.key, cerr.Key)
		})
	}
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "error", Quiet: true}

	config.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.Quiet, "flags never turn a setting off")
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "error", config.LogLevel)

	config.UpdateFromFlags(false, false, false, "wide", "debug")
	assert.Equal(t, "wide", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}
