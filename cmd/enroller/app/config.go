package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/upbvirtual/enroller/pkg/constants"
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "ENROLLER"

// Configuration keys. The directory keys keep the names used by existing
// config.json files.
const (
	KeyBannerDirectory = "banner_directory"
	KeyAccountsFile    = "bdusuarios_file"
	KeyOutputDirectory = "salida_directory"
	KeyProcessMode     = "tipo_proceso"
	KeyCoursesFile     = "cursos_file"
	KeyVerbose         = "verbose"
	KeyQuiet           = "quiet"
	KeyNoColor         = "no_color"
	KeyFormat          = "format"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyLogOutput       = "log_output"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// ConfigFile is the file actually read, empty when none was found.
	ConfigFile string

	// Run inputs and outputs
	BannerDirectory string
	AccountsFile    string
	OutputDirectory string
	CoursesFile     string
	ProcessMode     roster.Mode

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Warnings collects configuration problems that fell back to defaults.
	Warnings []error
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. ENROLLER_* environment variables
// 3. .env files
// 4. Config file (path, or config.json next to the executable or in the working directory)
// 5. Defaults
//
// A missing or unreadable config file never fails: defaults are used and
// the problem is recorded in Warnings.
func LoadConfig(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	config := &Config{}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(constants.DefaultConfigName)
		v.SetConfigType("json")
		if exe, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(exe))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			config.Warnings = append(config.Warnings, errors.NewConfigError("config", "cannot read config file, using defaults", err))
		}
	}

	config.Verbose = v.GetBool(KeyVerbose)
	config.Quiet = v.GetBool(KeyQuiet)
	config.NoColor = v.GetBool(KeyNoColor)
	config.Format = v.GetString(KeyFormat)
	config.ConfigFile = v.ConfigFileUsed()
	config.BannerDirectory = v.GetString(KeyBannerDirectory)
	config.AccountsFile = v.GetString(KeyAccountsFile)
	config.OutputDirectory = v.GetString(KeyOutputDirectory)
	config.CoursesFile = v.GetString(KeyCoursesFile)
	config.LogLevel = v.GetString(KeyLogLevel)
	config.LogFormat = v.GetString(KeyLogFormat)
	config.LogOutput = v.GetString(KeyLogOutput)

	mode, err := roster.ParseMode(v.GetString(KeyProcessMode))
	if err != nil {
		config.Warnings = append(config.Warnings, errors.NewConfigError(KeyProcessMode, "using "+string(roster.ModeEnroll), err))
		mode = roster.ModeEnroll
	}
	config.ProcessMode = mode

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Boolean shortcuts only ever turn a setting on; empty strings keep the
// configured value.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyBannerDirectory, constants.DefaultBannerDirectory)
	v.SetDefault(KeyAccountsFile, constants.DefaultAccountsFile)
	v.SetDefault(KeyOutputDirectory, constants.DefaultOutputDirectory)
	v.SetDefault(KeyCoursesFile, constants.DefaultCoursesFile)
	v.SetDefault(KeyProcessMode, string(roster.ModeEnroll))
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogOutput, "stderr")
}

// loadEnvFiles loads environment variables from .env files.
// .env.local values do not override .env ones already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
