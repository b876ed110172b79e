package batch

import (
	"context"

	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/reconciler"
)

// Execute prepares the input of s and runs it end to end. Paths of the
// summary, diagnostics and merged files come from paths.
func Execute(ctx context.Context, s Settings, paths emitter.Paths, opts ...Option) (*Report, error) {
	in, err := Prepare(ctx, s)
	if err != nil {
		return nil, err
	}

	r, err := reconciler.New(
		reconciler.WithMode(s.Mode),
		reconciler.WithVariant(s.Variant),
		reconciler.WithAccounts(in.Accounts),
	)
	if err != nil {
		return nil, err
	}

	em := emitter.New(paths)
	if s.Clean {
		if err := em.Clean(); err != nil {
			return nil, err
		}
		logging.FromContext(ctx).Info().Str("dir", paths.OutputDir).Msg("Removed previous output")
	}

	o := New(r, em, s.Variant, append([]Option{WithMerge(s.Merge)}, opts...)...)
	report, err := o.Run(ctx, in.Courses, in.Records)
	if report != nil {
		report.SourceFiles = in.SourceFiles
		report.Rejected = len(in.Rejected)
		report.Filtered = in.Filtered
		report.Duplicates = in.Duplicates
	}
	return report, err
}
