package run

import (
	"context"
	"io"
	"time"

	"github.com/upbvirtual/enroller/internal/cmd/application"
	"github.com/upbvirtual/enroller/internal/cmd/output"
	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// Execute builds the settings of a run from the app configuration and the
// flags, runs it and renders the report to w. A partial report is rendered
// before a cancellation or merge error is returned.
func Execute(ctx context.Context, app application.Application, variant roster.Variant, flags *Flags, w io.Writer, now time.Time) error {
	settings := app.Settings(variant)
	if err := flags.Apply(&settings); err != nil {
		return err
	}
	since, err := ParseSince(flags.Since, now)
	if err != nil {
		return err
	}
	settings.MinDate = since

	ctx = logging.WithLogger(ctx, app.Logger())
	logger := logging.FromContext(ctx)
	event := logger.Info().
		Str("variant", string(variant)).
		Str("mode", string(settings.Mode)).
		Str("banner_dir", settings.BannerDir).
		Str("courses", settings.CoursesFile)
	if since != nil {
		event = event.Time("since", *since)
	}
	event.Msg("Starting run")

	paths := emitter.DefaultPaths(settings.OutputDir, variant)
	report, err := batch.Execute(ctx, settings, paths)
	if report != nil {
		if ferr := output.FormatReport(w, app.OutputFormat(), report); ferr != nil && err == nil {
			err = ferr
		}
	}
	return err
}
