package reconciler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/reconciler"
	"github.com/upbvirtual/enroller/pkg/roster"
)

var course = roster.Course{Name: "COURSE1", SectionID: "12345", Period: "202510"}

func student(id string, status roster.Status, partner string, paid roster.PaymentFlag) roster.Record {
	return roster.Record{
		Variant:        roster.Student,
		Period:         course.Period,
		SectionID:      course.SectionID,
		PersonID:       id,
		DocumentType:   "CC",
		DocumentNumber: "1234567",
		FirstName:      "Ana",
		LastName:       "Gomez",
		Email:          "ana@example.edu",
		Status:         status,
		PaymentFlag:    paid,
		Partner:        partner,
	}
}

func lines(res *reconciler.Result) []string {
	var out []string
	for _, c := range res.Commands() {
		out = append(out, c.Line())
	}
	return out
}

func newReconciler(t *testing.T, opts ...reconciler.Option) reconciler.Reconciler {
	t.Helper()
	r, err := reconciler.New(opts...)
	require.NoError(t, err)
	return r
}

func TestEnrollNewStudent(t *testing.T) {
	r := newReconciler(t)
	res, err := r.Course(context.Background(), course, []roster.Record{
		student("000012345", roster.StatusEnrolled, "BS", roster.Unpaid),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"CREATE,000012345,CC. 1.234.567,Ana,Gomez,,Student_pr,1,ana@example.edu",
		"ENROLL,000012345,,Student_pr,CVPR",
		"ENROLL,000012345,,Student,COURSE1",
	}, lines(res))
	assert.Equal(t, roster.Summary{CourseName: "COURSE1", SectionID: "12345", Processed: 1}, res.Summary())
	assert.Equal(t, reconciler.StrategyTypeEnroll, res.Metadata.Strategy)
}

func TestEnrollExistingStudent(t *testing.T) {
	accounts := roster.NewAccounts([]roster.Account{{PersonID: "000012345"}})
	r := newReconciler(t, reconciler.WithAccounts(accounts))

	virtual := roster.Course{Name: "MBA1", SectionID: "777", Period: "202541"}
	rec := student("000012345", roster.StatusEnrolled, "AP", roster.Paid)
	res, err := r.Course(context.Background(), virtual, []roster.Record{rec})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"UPDATE,000012345,CC. 1.234.567,Ana,Gomez,,1,ana@example.edu",
		"ENROLL,000012345,,Student_ap,UPBV",
		"ENROLL,000012345,,Student,MBA1",
	}, lines(res))
	assert.Equal(t, 1, res.Metadata.Stats.Updated)
}

func TestEnrollGating(t *testing.T) {
	virtual := roster.Course{Name: "MBA1", SectionID: "777", Period: "202541"}
	tests := []struct {
		name   string
		rec    roster.Record
		course roster.Course
		reason reconciler.SkipReason
	}{
		{"partner without payment", student("000000001", roster.StatusEnrolled, "AP", roster.Unpaid), virtual, reconciler.SkipPaymentRequired},
		{"unknown partner", student("000000002", roster.StatusEnrolled, "XX", roster.Paid), virtual, reconciler.SkipPartnerNotAllowed},
		{"cancelled", student("000000003", roster.StatusCancelled, "BS", roster.Paid), virtual, reconciler.SkipOutOfScope},
		{"unspecified status", student("000000004", roster.StatusUnspecified, "BS", roster.Paid), virtual, reconciler.SkipOutOfScope},
		{"unmapped program", student("000000005", roster.StatusEnrolled, "BS", roster.Paid), roster.Course{Name: "X", SectionID: "1", Period: "202599"}, reconciler.SkipUnclassifiable},
		{"empty id", student("", roster.StatusEnrolled, "BS", roster.Paid), virtual, reconciler.SkipInvalidID},
		{"zero id", student("000000000", roster.StatusEnrolled, "BS", roster.Paid), virtual, reconciler.SkipInvalidID},
		{"placeholder id", student("000000nan", roster.StatusEnrolled, "BS", roster.Paid), virtual, reconciler.SkipInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReconciler(t)
			res, err := r.Course(context.Background(), tt.course, []roster.Record{tt.rec})
			require.NoError(t, err)

			assert.Empty(t, res.Commands())
			assert.Zero(t, res.Processed)
			assert.Equal(t, 1, res.Skipped[tt.reason])
			require.Len(t, res.Skips(), 1)
			assert.Equal(t, tt.reason, res.Skips()[0].Skip)
		})
	}
}

func TestBadRecordDoesNotStopCourse(t *testing.T) {
	r := newReconciler(t)
	res, err := r.Course(context.Background(), course, []roster.Record{
		student("", roster.StatusEnrolled, "BS", roster.Paid),
		student("000000002", roster.StatusEnrolled, "BS", roster.Paid),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Metadata.Stats.TotalSkipped)
	assert.Equal(t, 2, res.Metadata.Stats.RecordsSeen)
}

func TestInvalidIDIsLogged(t *testing.T) {
	logger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), logger.Logger)

	r := newReconciler(t)
	_, err := r.Course(ctx, course, []roster.Record{student("000000nan", roster.StatusEnrolled, "BS", roster.Paid)})
	require.NoError(t, err)

	assert.True(t, logger.Contains("invalid_id"))
	assert.True(t, logger.Contains("COURSE1"))
	assert.True(t, logger.Contains("000000nan"))
}

func TestUnenrollMode(t *testing.T) {
	r := newReconciler(t, reconciler.WithMode(roster.ModeUnenroll))
	res, err := r.Course(context.Background(), course, []roster.Record{
		student("000000001", roster.StatusEnrolled, "BS", roster.Paid),
		student("000000002", roster.StatusCancelled, "BS", roster.Paid),
		student("000000003", roster.StatusRemoved, "BS", roster.Paid),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"UNENROLL,000000002,,COURSE1"}, lines(res))
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 2, res.Skipped[reconciler.SkipOutOfScope])
}

func TestCleanupMode(t *testing.T) {
	accounts := roster.NewAccounts([]roster.Account{{PersonID: "000000003"}})
	r := newReconciler(t, reconciler.WithMode(roster.ModeCleanup), reconciler.WithAccounts(accounts))
	res, err := r.Course(context.Background(), course, []roster.Record{
		student("000000002", roster.StatusCancelled, "BS", roster.Paid),
		student("000000003", roster.StatusRemoved, "AP", roster.Unpaid),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"UNENROLL,000000003,,COURSE1"}, lines(res))
	assert.Equal(t, reconciler.StrategyTypeCleanup, r.Strategy().Type())
	assert.Equal(t, "List Cleanup", r.Strategy().Type().Name())
}

func moderator(id string) roster.Record {
	return roster.Record{
		Variant:        roster.Moderator,
		Period:         course.Period,
		SectionID:      course.SectionID,
		PersonID:       id,
		DocumentType:   "CC",
		DocumentNumber: "987654",
		FirstName:      "Luis",
		LastName:       "Rojas",
		Email:          "luis@example.edu",
		Status:         roster.StatusEnrolled,
	}
}

func TestModerators(t *testing.T) {
	accounts := roster.NewAccounts([]roster.Account{
		{PersonID: "000000010", RoleID: "136.0"},
		{PersonID: "000000011", RoleID: "109"},
	})
	r := newReconciler(t, reconciler.WithVariant(roster.Moderator), reconciler.WithAccounts(accounts))

	res, err := r.Course(context.Background(), course, []roster.Record{
		moderator("000000009"),
		moderator("000000010"),
		moderator("000000011"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"CREATE,000000009,CC. 987.654,Luis,Rojas,,Moderador,1,luis@example.edu",
		"ENROLL,000000009,,Moderador,COURSE1",

		"UPDATE,000000010,CC. 987.654,Luis,Rojas,,1,luis@example.edu",
		"UNENROLL,000000010,,CVFA",
		"ENROLL,000000010,,Moderador,UPBV",
		"ENROLL,000000010,,Moderador,COURSE1",

		"UPDATE,000000011,CC. 987.654,Luis,Rojas,,1,luis@example.edu",
		"ENROLL,000000011,,Moderador,UPBV",
		"ENROLL,000000011,,Moderador,COURSE1",
	}, lines(res))
	assert.Equal(t, 3, res.Processed)
}

func TestModeratorsIgnorePaymentGate(t *testing.T) {
	r := newReconciler(t, reconciler.WithVariant(roster.Moderator))
	rec := moderator("000000009")
	rec.Partner = "AP"
	rec.PaymentFlag = roster.Unpaid

	res, err := r.Course(context.Background(), roster.Course{Name: "C", SectionID: "1", Period: "202599"}, []roster.Record{rec})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
}

func TestNewValidation(t *testing.T) {
	_, err := reconciler.New(reconciler.WithStrategy(nil))
	assert.True(t, errors.IsValidationError(err))

	_, err = reconciler.New(reconciler.WithAccounts(nil))
	assert.True(t, errors.IsValidationError(err))

	_, err = reconciler.New(reconciler.WithVariant("tutor"))
	assert.True(t, errors.IsValidationError(err))

	_, err = reconciler.New(reconciler.WithMode("Borrar"))
	assert.True(t, errors.IsValidationError(err))
}

func TestCourseValidation(t *testing.T) {
	r := newReconciler(t)
	_, err := r.Course(context.Background(), roster.Course{SectionID: "1"}, nil)
	assert.True(t, errors.IsValidationError(err))
}
