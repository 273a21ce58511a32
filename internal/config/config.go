package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"pit/internal/domain"
)

// Config holds all configuration for the harness
type Config struct {
	Layout    LayoutConfig    `mapstructure:"layout"`
	Compiler  CompilerConfig  `mapstructure:"compiler"`
	Execution ExecutionConfig `mapstructure:"execution"`
	Report    ReportConfig    `mapstructure:"report"`
	Logging   LoggingConfig   `mapstructure:"logging"`

	// Root is the harness working directory; every relative path resolves against it
	Root string `mapstructure:"-"`

	// Command flags
	Flags Flags `mapstructure:"-"`
}

// LayoutConfig names the fixture directories under the root
type LayoutConfig struct {
	CasesDir    string `mapstructure:"cases_dir"`
	CompiledDir string `mapstructure:"compiled_dir"`
	ActualDir   string `mapstructure:"actual_dir"`
	ExpectedDir string `mapstructure:"expected_dir"`
	Extension   string `mapstructure:"extension"`
}

// CompilerConfig describes the compile step
type CompilerConfig struct {
	Path        string `mapstructure:"path"`
	RuntimeEnv  string `mapstructure:"runtime_env"`
	RuntimePath string `mapstructure:"runtime_path"`
}

// ExecutionConfig bounds external processes
type ExecutionConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// ReportConfig selects the console reporter
type ReportConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	Root        string
	Compiler    string
	RuntimePath string
	Timeout     time.Duration
	NameFilter  string
	Format      string
	NoColor     bool
	Inspect     bool
	Verbose     bool
	Debug       bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Layout: LayoutConfig{
			CasesDir:    DefaultCasesDir,
			CompiledDir: DefaultCompiledDir,
			ActualDir:   DefaultActualDir,
			ExpectedDir: DefaultExpectedDir,
			Extension:   DefaultExtension,
		},
		Compiler: CompilerConfig{
			Path:        DefaultCompilerPath,
			RuntimeEnv:  DefaultRuntimeEnv,
			RuntimePath: DefaultRuntimePath,
		},
		Execution: ExecutionConfig{Timeout: DefaultTimeout},
		Report:    ReportConfig{Format: DefaultFormat, Color: true},
		Logging:   LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Root:      DefaultRoot,
	}
}

// Load reads .env and pit.toml from the root, applies PIT_* environment
// variables and then the flag overrides.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.Root != "" {
		cfg.Root = flags.Root
	}

	// .env is optional; variables already set in the environment win
	_ = godotenv.Load(filepath.Join(cfg.Root, DefaultEnvFile))

	v := viper.New()
	v.SetConfigType("toml")
	if flags.ConfigFile != "" {
		v.SetConfigFile(flags.ConfigFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(cfg.Root)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if flags.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, domain.NewConfigError("", fmt.Sprintf("failed to read config file: %v", err), err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, domain.NewConfigError("", "failed to unmarshal config", err)
	}

	cfg.ApplyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, domain.NewConfigError("root", "cannot resolve harness root", err)
	}
	cfg.Root = root

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("layout.cases_dir", cfg.Layout.CasesDir)
	v.SetDefault("layout.compiled_dir", cfg.Layout.CompiledDir)
	v.SetDefault("layout.actual_dir", cfg.Layout.ActualDir)
	v.SetDefault("layout.expected_dir", cfg.Layout.ExpectedDir)
	v.SetDefault("layout.extension", cfg.Layout.Extension)
	v.SetDefault("compiler.path", cfg.Compiler.Path)
	v.SetDefault("compiler.runtime_env", cfg.Compiler.RuntimeEnv)
	v.SetDefault("compiler.runtime_path", cfg.Compiler.RuntimePath)
	v.SetDefault("execution.timeout", cfg.Execution.Timeout.String())
	v.SetDefault("report.format", cfg.Report.Format)
	v.SetDefault("report.color", cfg.Report.Color)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

// ApplyFlags overrides loaded values with the flags that were given
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.Compiler != "" {
		c.Compiler.Path = flags.Compiler
	}
	if flags.RuntimePath != "" {
		c.Compiler.RuntimePath = flags.RuntimePath
	}
	if flags.Timeout > 0 {
		c.Execution.Timeout = flags.Timeout
	}
	if flags.Format != "" {
		c.Report.Format = flags.Format
	}
	if flags.NoColor {
		c.Report.Color = false
	}
	if flags.Debug {
		c.Logging.Level = "debug"
	} else if flags.Verbose {
		c.Logging.Level = "info"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	dirs := []struct{ field, value string }{
		{"layout.cases_dir", c.Layout.CasesDir},
		{"layout.compiled_dir", c.Layout.CompiledDir},
		{"layout.actual_dir", c.Layout.ActualDir},
		{"layout.expected_dir", c.Layout.ExpectedDir},
	}
	for _, d := range dirs {
		if d.value == "" {
			return domain.NewConfigError(d.field, "directory cannot be empty", nil)
		}
	}

	if !strings.HasPrefix(c.Layout.Extension, ".") || len(c.Layout.Extension) < 2 {
		return domain.NewConfigError("layout.extension", fmt.Sprintf("must start with a dot: %q", c.Layout.Extension), nil)
	}

	if c.Compiler.Path == "" {
		return domain.NewConfigError("compiler.path", "compiler path cannot be empty", nil)
	}

	if c.Compiler.RuntimeEnv != "" && strings.ContainsAny(c.Compiler.RuntimeEnv, "= ") {
		return domain.NewConfigError("compiler.runtime_env", fmt.Sprintf("invalid variable name: %q", c.Compiler.RuntimeEnv), nil)
	}

	if c.Execution.Timeout < 0 {
		return domain.NewConfigError("execution.timeout", "timeout cannot be negative", nil)
	}

	if !slices.Contains(ReportFormats, c.Report.Format) {
		return domain.NewConfigError("report.format", fmt.Sprintf("unknown format %q (want one of %s)", c.Report.Format, strings.Join(ReportFormats, ", ")), nil)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return domain.NewConfigError("logging.level", fmt.Sprintf("invalid log level: %s", c.Logging.Level), nil)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		return domain.NewConfigError("logging.format", fmt.Sprintf("invalid log format: %s", c.Logging.Format), nil)
	}

	return nil
}

// GetLayout returns the fixture layout rooted at the harness root
func (c *Config) GetLayout() domain.Layout {
	return domain.Layout{
		Root:        c.Root,
		CasesDir:    c.Layout.CasesDir,
		CompiledDir: c.Layout.CompiledDir,
		ActualDir:   c.Layout.ActualDir,
		ExpectedDir: c.Layout.ExpectedDir,
		Extension:   c.Layout.Extension,
	}
}

// GetCompilerPath returns the compiler executable. Bare names are left for
// a PATH lookup; other relative paths resolve against the root.
func (c *Config) GetCompilerPath() string {
	p := c.Compiler.Path
	if filepath.IsAbs(p) || !strings.ContainsAny(p, `/`+string(filepath.Separator)) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// GetRuntimePath returns the runtime library location handed to the compiler
func (c *Config) GetRuntimePath() string {
	if c.Compiler.RuntimePath == "" || filepath.IsAbs(c.Compiler.RuntimePath) {
		return c.Compiler.RuntimePath
	}
	return filepath.Join(c.Root, c.Compiler.RuntimePath)
}

// GetCompileEnv returns the variables added to the compile step environment
func (c *Config) GetCompileEnv() map[string]string {
	if c.Compiler.RuntimeEnv == "" {
		return nil
	}
	return map[string]string{c.Compiler.RuntimeEnv: c.GetRuntimePath()}
}
