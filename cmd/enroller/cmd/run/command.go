// Package run implements the students and moderators commands: a full
// reconciliation run over the course list.
package run

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/upbvirtual/enroller/internal/cmd/application"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// NewCommand creates the run command of a variant using app context.
func NewCommand(app application.Application, variant roster.Variant) *cobra.Command {
	var flags *Flags

	use, short, long := describe(variant)
	cmd := &cobra.Command{
		Use:     use + " [dd/mm/yy]",
		GroupID: "core",
		Short:   short,
		Args:    cobra.MaximumNArgs(1),
		Long:    long,
		Example: `  enroller ` + use + `                        # Reconcile every listed course
  enroller ` + use + ` 01/03/25               # Only rows active since 1 March 2025
  enroller ` + use + ` --mode Desmatricular   # Remove cancelled enrollments
  enroller ` + use + ` --clean -o json        # Fresh output, JSON report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.Since = args[0]
			}
			return Execute(cmd.Context(), app, variant, flags, cmd.OutOrStdout(), time.Now())
		},
	}

	flags = addFlags(cmd)

	return cmd
}

func describe(variant roster.Variant) (use, short, long string) {
	if variant == roster.Moderator {
		return "moderators",
			"Reconcile course moderators against the LMS",
			`Moderators reads the teaching-assignment exports of the banner directory,
matches them with the LMS user export and writes one command file per course.

New moderators are created with the Moderador role. Existing accounts are
refreshed, moved out of their previous role unit and enrolled into UPBV with
the Moderador role before the course enrollment.`
	}
	return "students",
		"Reconcile student enrollments against the LMS",
		`Students reads the enrollment exports of the banner directory, matches them
with the LMS user export and writes one command file per course.

Roles and org units come from the program type encoded in the period. Students
of the external partner are only processed once they have paid. In
Desmatricular mode only cancelled enrollments are removed; Limpieza removes
enrollments deleted from the source list.`
}
