package run

import (
	"github.com/spf13/cobra"

	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// Flags holds the run command flags. Empty values keep the configuration.
type Flags struct {
	Since     string
	Mode      string
	BannerDir string
	Accounts  string
	Courses   string
	Out       string
	Clean     bool
	NoMerge   bool
}

func addFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	f := cmd.Flags()
	f.StringVar(&flags.Mode, "mode", "", "process mode: Matricular, Desmatricular, Limpieza")
	f.StringVar(&flags.BannerDir, "banner-dir", "", "directory with the source exports")
	f.StringVar(&flags.Accounts, "accounts", "", "LMS user export (xlsx or csv)")
	f.StringVar(&flags.Courses, "courses", "", "course list csv")
	f.StringVar(&flags.Out, "out", "", "directory for the per-course command files")
	f.BoolVar(&flags.Clean, "clean", false, "remove command files and summaries of previous runs first")
	f.BoolVar(&flags.NoMerge, "no-merge", false, "skip the consolidated command file")
	return flags
}

// Apply overrides s with every flag that was set.
func (f *Flags) Apply(s *batch.Settings) error {
	if f.Mode != "" {
		mode, err := roster.ParseMode(f.Mode)
		if err != nil {
			return errors.WrapValidation("mode", err)
		}
		s.Mode = mode
	}
	if f.BannerDir != "" {
		s.BannerDir = f.BannerDir
	}
	if f.Accounts != "" {
		s.AccountsFile = f.Accounts
	}
	if f.Courses != "" {
		s.CoursesFile = f.Courses
	}
	if f.Out != "" {
		s.OutputDir = f.Out
	}
	s.Clean = s.Clean || f.Clean
	if f.NoMerge {
		s.Merge = false
	}
	return nil
}
