// Package constants provides shared constants used throughout the enroller codebase.
// This includes file names, default paths, identifier widths and the fixed
// organizational unit codes of the LMS.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Identifier constants
const (
	// PersonIDWidth is the fixed width of institutional person identifiers
	PersonIDWidth = 9

	// PersonIDPad is the rune used to left-pad person identifiers
	PersonIDPad = '0'
)

// Default configuration values
const (
	// DefaultBannerDirectory is where source exports are read from
	DefaultBannerDirectory = "./"

	// DefaultAccountsFile is the LMS user export used as reference accounts
	DefaultAccountsFile = "./BDUsuarios/Listados Usuarios.xlsx"

	// DefaultOutputDirectory receives the per-course command files
	DefaultOutputDirectory = "./salida/"

	// DefaultCoursesFile lists the course targets of a run
	DefaultCoursesFile = "./shortnames.csv"

	// DefaultConfigName is the base name of the optional config file
	DefaultConfigName = "config"
)

// Output file naming
const (
	// CommandFilePrefix prefixes every per-course command file
	CommandFilePrefix = "registro_"

	// CommandFileExt is the extension of command files
	CommandFileExt = ".txt"

	// StudentsSummaryFile is the run summary for student runs
	StudentsSummaryFile = "students.csv"

	// ModeratorsSummaryFile is the run summary for moderator runs
	ModeratorsSummaryFile = "moderadores.csv"

	// MergedFilePrefix prefixes every consolidated command file
	MergedFilePrefix = "registro_unico"

	// StudentsMergedFile is the consolidated command file for student runs
	StudentsMergedFile = "registro_unicoEst.txt"

	// ModeratorsMergedFile is the consolidated command file for moderator runs
	ModeratorsMergedFile = "registro_unicoMOD.txt"

	// StudentsDiagnosticsFile collects per-skip reasons for student runs
	StudentsDiagnosticsFile = "log_creacion_estudiantes.txt"

	// ModeratorsDiagnosticsFile collects per-skip reasons for moderator runs
	ModeratorsDiagnosticsFile = "log_creacion_moderadores.txt"
)

// LMS organizational values
const (
	// DefaultPartner is the partner code of the institution itself
	DefaultPartner = "BS"

	// ExternalPartner is the co-delivery partner whose students must pay first
	ExternalPartner = "AP"

	// ArchetypeUnit is the org unit used to switch a user's role archetype
	ArchetypeUnit = "UPBV"

	// CourseStudentRole is the role used for student course enrollment
	CourseStudentRole = "Student"

	// ModeratorRole is the role for course staff
	ModeratorRole = "Moderador"

	// ActiveFlag marks created/updated users as active
	ActiveFlag = "1"
)

// Date formats
const (
	// CLIDateFormat is the format of the optional minimum activity date argument
	CLIDateFormat = "02/01/06"

	// TimeFormatLog is the format used in diagnostic log headers
	TimeFormatLog = "2006-01-02 15:04:05"
)
