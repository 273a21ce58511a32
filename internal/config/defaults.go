package config

import "time"

const (
	// DefaultRoot is the harness working directory
	DefaultRoot = "."
	// DefaultConfigName is the config file searched in the root (pit.toml)
	DefaultConfigName = "pit"
	// DefaultEnvFile is loaded from the root before the config file
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes environment overrides, e.g. PIT_COMPILER_PATH
	EnvPrefix = "PIT"

	DefaultCasesDir    = "cases"
	DefaultCompiledDir = "compiled"
	DefaultActualDir   = "actual"
	DefaultExpectedDir = "expected"
	DefaultExtension   = ".pr"

	// DefaultCompilerPath is relative to the root, matching test/integration in the compiler tree
	DefaultCompilerPath = "../../src/peryan"
	// DefaultRuntimeEnv tells the compiler where the runtime library lives
	DefaultRuntimeEnv  = "PERYAN_RUNTIME_PATH"
	DefaultRuntimePath = "../../runtime"

	// DefaultTimeout of zero leaves steps unbounded
	DefaultTimeout time.Duration = 0

	FormatGTest    = "gtest"
	FormatProgress = "progress"
	DefaultFormat  = FormatGTest

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// ReportFormats lists the accepted report.format values
var ReportFormats = []string{FormatGTest, FormatProgress}
