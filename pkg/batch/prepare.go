package batch

import (
	"context"
	"time"

	"github.com/upbvirtual/enroller/pkg/dedup"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/normalize"
	"github.com/upbvirtual/enroller/pkg/roster"
	"github.com/upbvirtual/enroller/pkg/sources"
)

// Settings holds everything a run needs. It is built once at start-up and
// passed down explicitly.
type Settings struct {
	Variant      roster.Variant
	Mode         roster.Mode
	MinDate      *time.Time
	BannerDir    string
	AccountsFile string
	CoursesFile  string
	OutputDir    string
	Merge        bool
	Clean        bool
}

// Input is the prepared data of a run.
type Input struct {
	Records  []roster.Record
	Courses  []roster.Course
	Accounts *roster.Accounts

	SourceFiles []sources.FileReport
	Rejected    []error
	Filtered    int
	Duplicates  int
}

// Prepare loads the course list, the source records and the reference
// accounts, then normalizes, filters and deduplicates the records. Only a
// missing course list, an unreadable account table or the absence of any
// source data fail it.
func Prepare(ctx context.Context, s Settings) (*Input, error) {
	logger := logging.FromContext(ctx)

	courses, err := sources.LoadCourses(ctx, s.CoursesFile)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("courses", len(courses)).Str("file", s.CoursesFile).Msg("Loaded course list")

	load, err := sources.LoadRecords(ctx, s.BannerDir, s.Variant)
	if err != nil {
		return nil, err
	}

	accounts, err := sources.LoadAccounts(ctx, s.AccountsFile, s.Variant)
	if err != nil {
		return nil, err
	}

	var opts []normalize.Option
	if s.MinDate != nil {
		opts = append(opts, normalize.WithMinDate(*s.MinDate))
	}
	n := normalize.New(s.Variant, opts...)
	normalized := n.All(load.Rows)
	for _, issue := range n.Issues() {
		logger.Warn().Err(issue).Msg("Rejected source row")
	}
	filtered := len(load.Rows) - len(n.Issues()) - len(normalized)

	records, dups := dedup.Records(normalized)
	logger.Info().
		Int("rows", len(load.Rows)).
		Int("rejected", len(n.Issues())).
		Int("filtered", filtered).
		Int("duplicates", dups).
		Int("records", len(records)).
		Msg("Prepared records")

	return &Input{
		Records:     records,
		Courses:     courses,
		Accounts:    accounts,
		SourceFiles: load.Files,
		Rejected:    n.Issues(),
		Filtered:    filtered,
		Duplicates:  dups,
	}, nil
}
