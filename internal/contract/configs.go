package contract

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/huangsam/repochurn/schema"
	"github.com/sirupsen/logrus"
)

// Default values for configuration.
const (
	// MaxWorkers caps the number of repositories mined at once.
	MaxWorkers = 8

	DefaultWorkers    = MaxWorkers
	DefaultLimit      = 10
	MaxResultLimit    = 1000
	DefaultGitTimeout = 10 * time.Minute
	DefaultLogLevel   = "warn"
	DefaultTmpPrefix  = "tmp_git"
)

// Config holds the runtime configuration for mining.
// This struct is the "final, validated" config.
type Config struct {
	Workers     int
	Credit      schema.CreditPolicy
	GitTimeout  time.Duration // Bound for every git invocation (0 = none)
	RepoTimeout time.Duration // Bound for a whole repository task (0 = none)
	CloneRate   float64       // Clone starts per second across workers (0 = unlimited)
	Token       string        // Please use env var as this is plaintext
	TmpDir      string        // Parent of per-task work dirs ("" = os.TempDir)
	GitEnv      map[string]string

	Repos     []string // Positional repository arguments
	InputFile string   // JSON list of repository descriptors

	Output     schema.OutputMode
	OutputFile string
	Limit      int // Contributors shown per repository in the text table
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	LogLevel   logrus.Level
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Repos []string

	Workers     int     `mapstructure:"workers"`
	Credit      string  `mapstructure:"credit"`
	GitTimeout  string  `mapstructure:"git-timeout"`
	RepoTimeout string  `mapstructure:"repo-timeout"`
	CloneRate   float64 `mapstructure:"clone-rate"`
	Token       string  `mapstructure:"token"`
	TmpDir      string  `mapstructure:"tmp-dir"`
	GitEnv      string  `mapstructure:"git-env"`
	Input       string  `mapstructure:"input"`
	Output      string  `mapstructure:"output"`
	OutputFile  string  `mapstructure:"output-file"`
	Limit       int     `mapstructure:"limit"`
	Width       int     `mapstructure:"width"`
	Color       string  `mapstructure:"color"`
	LogLevel    string  `mapstructure:"log-level"`
}

// DefaultConfig returns a Config usable without any CLI input, e.g. when the
// core is embedded as a library.
func DefaultConfig() *Config {
	return &Config{
		Workers:    DefaultWorkers,
		Credit:     schema.FullCredit,
		GitTimeout: DefaultGitTimeout,
		GitEnv:     DefaultGitEnv(),
		Output:     schema.TextOut,
		Limit:      DefaultLimit,
		UseColors:  true,
		LogLevel:   logrus.WarnLevel,
	}
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Repos != nil {
		clone.Repos = make([]string, len(c.Repos))
		copy(clone.Repos, c.Repos)
	}
	if c.GitEnv != nil {
		clone.GitEnv = maps.Clone(c.GitEnv)
	}
	return &clone
}

// ProcessAndValidate checks every raw input and populates cfg.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processDurations(cfg, input); err != nil {
		return err
	}
	if err := processGitEnv(cfg, input); err != nil {
		return err
	}
	return processOutput(cfg, input)
}

// validateSimpleInputs handles the scalar settings.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Workers <= 0 || input.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d (received %d)", MaxWorkers, input.Workers)
	}
	cfg.Workers = input.Workers

	credit := schema.CreditPolicy(strings.ToLower(strings.TrimSpace(input.Credit)))
	if credit == "" {
		credit = schema.FullCredit
	}
	if !schema.ValidCreditPolicies[credit] {
		return fmt.Errorf("invalid credit policy '%s'. must be full, split", input.Credit)
	}
	cfg.Credit = credit

	if input.CloneRate < 0 {
		return fmt.Errorf("clone-rate cannot be negative (received %g)", input.CloneRate)
	}
	cfg.CloneRate = input.CloneRate

	level := input.LogLevel
	if level == "" {
		level = DefaultLogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level value: %w", err)
	}
	cfg.LogLevel = lvl

	cfg.Token = strings.TrimSpace(input.Token)
	cfg.TmpDir = input.TmpDir
	cfg.InputFile = input.Input
	cfg.Repos = input.Repos
	return nil
}

// processDurations parses the timeout settings.
func processDurations(cfg *Config, input *ConfigRawInput) error {
	gitTimeout, err := parseOptionalDuration(input.GitTimeout, DefaultGitTimeout)
	if err != nil {
		return fmt.Errorf("invalid git-timeout: %w", err)
	}
	repoTimeout, err := parseOptionalDuration(input.RepoTimeout, 0)
	if err != nil {
		return fmt.Errorf("invalid repo-timeout: %w", err)
	}
	cfg.GitTimeout = gitTimeout
	cfg.RepoTimeout = repoTimeout
	return nil
}

// parseOptionalDuration parses s, returning fallback when s is empty.
func parseOptionalDuration(s string, fallback time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration cannot be negative (received %s)", s)
	}
	return d, nil
}

// processGitEnv layers user overrides on top of the hardened git environment.
func processGitEnv(cfg *Config, input *ConfigRawInput) error {
	overrides, err := ParseGitEnv(input.GitEnv)
	if err != nil {
		return err
	}
	cfg.GitEnv = MergeGitEnv(DefaultGitEnv(), overrides)
	return nil
}

// processOutput validates the presentation settings.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if !schema.ValidOutputModes[cfg.Output] {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	colorStr := input.Color
	if colorStr == "" {
		colorStr = "yes"
	}
	useColors, err := ParseBoolString(colorStr)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = useColors
	return nil
}
