// Package courses implements the courses command.
package courses

import (
	"github.com/spf13/cobra"

	"github.com/upbvirtual/enroller/internal/cmd/application"
	"github.com/upbvirtual/enroller/internal/cmd/output"
	"github.com/upbvirtual/enroller/pkg/logging"
	"github.com/upbvirtual/enroller/pkg/roster"
	"github.com/upbvirtual/enroller/pkg/sources"
)

// NewCommand creates the courses command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "courses",
		GroupID: "management",
		Short:   "List the course targets of a run",
		Args:    cobra.NoArgs,
		Long: `Courses reads the course list (short name, NRC or cross-list key, period)
and prints it. Use it to check the list before a run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				file = app.Settings(roster.Student).CoursesFile
			}
			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			courses, err := sources.LoadCourses(ctx, file)
			if err != nil {
				return err
			}
			return output.FormatCourses(cmd.OutOrStdout(), app.OutputFormat(), courses)
		},
	}

	cmd.Flags().StringVar(&file, "courses", "", "course list csv")

	return cmd
}
