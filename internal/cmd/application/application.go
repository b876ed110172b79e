// Package application provides the application interface for enroller commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with Mock:
//
//	mock := &application.Mock{
//	    SettingsFunc: func(v roster.Variant) batch.Settings {
//	        return batch.Settings{Variant: v, CoursesFile: path}
//	    },
//	}
//	cmd := courses.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/upbvirtual/enroller/pkg/batch"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// Application provides what commands need from the running CLI.
type Application interface {
	// Settings returns the run settings for a variant, built from the
	// loaded configuration. Commands override fields from their own flags.
	Settings(variant roster.Variant) batch.Settings

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
