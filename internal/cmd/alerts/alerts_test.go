package alerts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/sources"
)

func TestFromReport(t *testing.T) {
	r := &batch.Report{
		RunID: "r1",
		Courses: []batch.CourseReport{
			{Course: "OK"},
			{Course: "BROKEN", Err: errors.New("disk full")},
		},
		SourceFiles: []sources.FileReport{
			{Path: "a.xlsx", Rows: 3},
			{Path: "b.xlsx", Err: errors.New("missing columns")},
		},
		Unassigned: 2,
		Merge:      &emitter.MergeStats{Target: "registro_unicoEst.txt", Files: []string{"x", "y"}},
	}

	got := FromReport(r)
	require.Len(t, got, 6)
	assert.Equal(t, LevelError, got[0].Level)
	assert.Equal(t, LevelWarning, got[1].Level)
	assert.Equal(t, LevelWarning, got[2].Level)
	assert.Equal(t, LevelSuccess, got[5].Level)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, got))
	assert.Contains(t, buf.String(), "✗ BROKEN: disk full")
	assert.Contains(t, buf.String(), "! skipped b.xlsx: missing columns")
	assert.Contains(t, buf.String(), "2 records match no listed course")
	assert.Contains(t, buf.String(), "✓ merged 2 files into registro_unicoEst.txt")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "unknown(9)", Level(9).String())
}
