package merge

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upbvirtual/enroller/internal/cmd/application"
	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/roster"
)

func TestMergeCommand(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("salida", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("salida", "registro_B.txt"), []byte("ENROLL,2,,Student,B\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join("salida", "registro_A.txt"), []byte("ENROLL,1,,Student,A\n"), 0o644))
	require.NoError(t, os.WriteFile(constants.StudentsMergedFile, []byte("stale\n"), 0o644))

	var out bytes.Buffer
	cmd := NewCommand(&application.Mock{
		OutputFormatFunc: func() string { return "json" },
	})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--out", "salida"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(constants.StudentsMergedFile)
	require.NoError(t, err)
	assert.Equal(t, "ENROLL,1,,Student,A\nENROLL,2,,Student,B\n", string(data))

	var stats emitter.MergeStats
	require.NoError(t, json.Unmarshal(out.Bytes(), &stats))
	assert.Len(t, stats.Files, 2)
	assert.Equal(t, constants.StudentsMergedFile, stats.Target)
}

func TestMergeModeratorsTable(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("salida", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("salida", "registro_A.txt"), []byte("ENROLL,1,,Moderador,A\n"), 0o644))

	app := &application.Mock{
		SettingsFunc: func(v roster.Variant) batch.Settings { return batch.Settings{Variant: v, OutputDir: "salida"} },
	}
	var out bytes.Buffer
	require.NoError(t, Execute(app, roster.Moderator, "", &out))

	_, err := os.Stat(constants.ModeratorsMergedFile)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "registro_A.txt")
	assert.Contains(t, out.String(), "merged 1 files")
}

func TestMergeRejectsUnknownVariant(t *testing.T) {
	cmd := NewCommand(&application.Mock{})
	cmd.SetArgs([]string{"tutors"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
