package app

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/upbvirtual/enroller/cmd/enroller/cmd/courses"
	"github.com/upbvirtual/enroller/cmd/enroller/cmd/merge"
	"github.com/upbvirtual/enroller/cmd/enroller/cmd/run"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// CreateStudentsCommand creates the student run command with app dependencies.
func (a *App) CreateStudentsCommand() *cobra.Command {
	return run.NewCommand(a, roster.Student)
}

// CreateModeratorsCommand creates the moderator run command with app dependencies.
func (a *App) CreateModeratorsCommand() *cobra.Command {
	return run.NewCommand(a, roster.Moderator)
}

// CreateMergeCommand creates the merge command with app dependencies.
func (a *App) CreateMergeCommand() *cobra.Command {
	return merge.NewCommand(a)
}

// CreateCoursesCommand creates the courses command with app dependencies.
func (a *App) CreateCoursesCommand() *cobra.Command {
	return courses.NewCommand(a)
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("enroller %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
				cmd.Printf("  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
