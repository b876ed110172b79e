package sources

import (
	"context"

	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/normalize"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// LoadCourses reads the course target list (Nombre, NRC, Periodo). When
// the header names are not recognized the first three columns are taken
// in that order; fewer than three columns is a validation error. Rows
// without a name or NRC are skipped.
func LoadCourses(ctx context.Context, path string) ([]roster.Course, error) {
	logger := logging.FromContext(ctx)

	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}

	cols := make([]int, len(CourseColumns))
	if missing := t.Missing(CourseColumns); len(missing) == 0 {
		for i, name := range CourseColumns {
			cols[i], _ = t.Column(name)
		}
	} else {
		if len(t.Header) < len(CourseColumns) {
			return nil, errors.NewValidationError("columns", t.Header,
				"course list must contain the columns Nombre, NRC and Periodo in "+path)
		}
		logger.Debug().Strs("header", t.Header).Msg("Course list header not recognized, reading columns by position")
		for i := range cols {
			cols[i] = i
		}
	}

	cell := func(row []string, i int) string {
		if cols[i] >= len(row) {
			return ""
		}
		return row[cols[i]]
	}

	var courses []roster.Course
	for i, row := range t.Rows {
		c := roster.Course{
			Name:      normalize.Clean(cell(row, 0)),
			SectionID: normalize.Code(cell(row, 1)),
			Period:    normalize.Code(cell(row, 2)),
		}
		if c.Name == "" || c.SectionID == "" {
			if !blank(row) {
				logger.Warn().Int("row", t.FirstRow+i).Msg("Skipping course without name or NRC")
			}
			continue
		}
		courses = append(courses, c)
	}
	return courses, nil
}
