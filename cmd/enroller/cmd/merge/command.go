// Package merge implements the merge command, which rebuilds the
// consolidated command file from the per-course files of a previous run.
package merge

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/upbvirtual/enroller/internal/cmd/application"
	"github.com/upbvirtual/enroller/internal/cmd/output"
	"github.com/upbvirtual/enroller/pkg/emitter"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// NewCommand creates the merge command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "merge [students|moderators]",
		GroupID:   "core",
		Short:     "Rebuild the consolidated command file",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"students", "moderators"},
		Long: `Merge concatenates every per-course command file of the output directory,
sorted by name, into the consolidated file of the variant. The consolidated
file is rewritten, never appended to.`,
		Example: `  enroller merge                  # Student files into registro_unicoEst.txt
  enroller merge moderators       # Moderator files into registro_unicoMOD.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := roster.Student
			if len(args) == 1 {
				v, err := roster.ParseVariant(args[0])
				if err != nil {
					return err
				}
				variant = v
			}
			return Execute(app, variant, dir, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dir, "out", "", "directory with the per-course command files")

	return cmd
}

// Execute merges the command files of variant and renders the outcome to w.
func Execute(app application.Application, variant roster.Variant, dir string, w io.Writer) error {
	settings := app.Settings(variant)
	if dir != "" {
		settings.OutputDir = dir
	}
	paths := emitter.DefaultPaths(settings.OutputDir, variant)

	stats, err := emitter.Merge(paths.OutputDir, paths.Merged)
	if err != nil {
		return err
	}
	app.Logger().Info().
		Str("target", stats.Target).
		Int("files", len(stats.Files)).
		Int64("bytes", stats.Bytes).
		Msg("Merged command files")

	return output.FormatMerge(w, app.OutputFormat(), stats)
}
