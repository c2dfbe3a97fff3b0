// Package config holds run settings unmarshalled from Viper. Values come from
// command-line flags, CHROMALIGN_* environment variables, an optional config
// file, and the defaults below, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"chromalign/internal/writers"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. CHROMALIGN_THREADS.
const EnvPrefix = "CHROMALIGN"

// Keys shared by flags, env and config files.
const (
	KeyGenome          = "genome"
	KeyCoords          = "coords"
	KeyThreads         = "threads"
	KeyMaxLength       = "max-length"
	KeyOutput          = "output"
	KeyTrace           = "trace"
	KeyHeader          = "header"
	KeyProgress        = "progress"
	KeyQuiet           = "quiet"
	KeyVerbose         = "verbose"
	KeyLogFormat       = "log-format"
	KeyNoMatchExitCode = "no-match-exit-code"
	KeyFastaWidth      = "fasta-width"
)

// Config is the root-level settings struct.
type Config struct {
	// reference sequence file ("-" for stdin)
	Genome string `mapstructure:"genome"`
	// chromosome coordinate table
	Coords string `mapstructure:"coords"`

	// worker goroutines for pairwise scoring; 0 = all CPUs
	Threads int `mapstructure:"threads"`
	// cap each sequence to this many symbols before comparison; 0 = no cap
	MaxLength int `mapstructure:"max-length"`

	Output     string `mapstructure:"output"`
	Trace      bool   `mapstructure:"trace"`
	Header     bool   `mapstructure:"header"`
	Progress   bool   `mapstructure:"progress"`
	FastaWidth int    `mapstructure:"fasta-width"`

	Quiet     bool   `mapstructure:"quiet"`
	Verbose   bool   `mapstructure:"verbose"`
	LogFormat string `mapstructure:"log-format"`

	// exit code when no pair scores above zero
	NoMatchExitCode int `mapstructure:"no-match-exit-code"`
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGenome, "")
	v.SetDefault(KeyCoords, "")
	v.SetDefault(KeyThreads, 0)
	v.SetDefault(KeyMaxLength, 0)
	v.SetDefault(KeyOutput, writers.FormatText)
	v.SetDefault(KeyTrace, true)
	v.SetDefault(KeyHeader, true)
	v.SetDefault(KeyProgress, false)
	v.SetDefault(KeyFastaWidth, 60)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyNoMatchExitCode, 1)
}

// NewViper returns a Viper instance with defaults, env binding and, if
// cfgFile is empty, the standard config file search path.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return v
	}
	v.SetConfigName("chromalign")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "chromalign"))
	}
	return v
}

// ReadInFile loads the config file if one exists. A missing file is only an
// error when it was named explicitly.
func ReadInFile(v *viper.Viper, explicit bool) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var nf viper.ConfigFileNotFoundError
	if !explicit && errors.As(err, &nf) {
		return nil
	}
	return fmt.Errorf("read config: %w", err)
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return c, nil
}

// Validate checks settings shared by every command.
func (c Config) Validate() error {
	switch {
	case c.Threads < 0:
		return fmt.Errorf("%w: --threads must be ≥ 0", ErrInvalid)
	case c.MaxLength < 0:
		return fmt.Errorf("%w: --max-length must be ≥ 0", ErrInvalid)
	case c.FastaWidth < 0:
		return fmt.Errorf("%w: --fasta-width must be ≥ 0", ErrInvalid)
	case c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255:
		return fmt.Errorf("%w: --no-match-exit-code must be between 0 and 255", ErrInvalid)
	}
	if !writers.IsReportFormat(c.Output) {
		return fmt.Errorf("%w: --output %q (want one of %s)", ErrInvalid, c.Output, strings.Join(writers.ReportFormats(), ", "))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: --log-format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// ValidateInputs checks that both input files are set.
func (c Config) ValidateInputs() error {
	if c.Genome == "" {
		return fmt.Errorf("%w: a genome file is required (--genome)", ErrInvalid)
	}
	if c.Coords == "" {
		return fmt.Errorf("%w: a coordinate table is required (--coords)", ErrInvalid)
	}
	if c.Genome == "-" && c.Coords == "-" {
		return fmt.Errorf("%w: only one input can be read from stdin", ErrInvalid)
	}
	return nil
}
