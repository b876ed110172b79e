package courses

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upbvirtual/enroller/internal/cmd/application"
	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/roster"
)

func writeCourses(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shortnames.csv")
	require.NoError(t, os.WriteFile(path, []byte("Nombre,NRC,Periodo\nMAT101,12345,202510\nFIS201,67890.0,202510\n"), 0o644))
	return path
}

func TestCoursesTable(t *testing.T) {
	path := writeCourses(t)
	app := &application.Mock{
		SettingsFunc: func(v roster.Variant) batch.Settings {
			return batch.Settings{Variant: v, CoursesFile: path}
		},
	}

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "MAT101")
	assert.Contains(t, out.String(), "67890")
	assert.NotContains(t, out.String(), "67890.0")
}

func TestCoursesYAML(t *testing.T) {
	app := &application.Mock{OutputFormatFunc: func() string { return "yaml" }}

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--courses", writeCourses(t)})
	require.NoError(t, cmd.Execute())

	var got []roster.Course
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []roster.Course{
		{Name: "MAT101", SectionID: "12345", Period: "202510"},
		{Name: "FIS201", SectionID: "67890", Period: "202510"},
	}, got)
}

func TestCoursesMissingFile(t *testing.T) {
	cmd := NewCommand(&application.Mock{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--courses", filepath.Join(t.TempDir(), "absent.csv")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
