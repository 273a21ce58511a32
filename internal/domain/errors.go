package domain

import "fmt"

// DiscoveryError indicates the fixtures directory could not be listed
type DiscoveryError struct {
	Dir   string
	Cause error
}

// Error implements the error interface
func (e *DiscoveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot discover test cases in %s: %v", e.Dir, e.Cause)
	}
	return fmt.Sprintf("cannot discover test cases in %s", e.Dir)
}

// Unwrap returns the underlying error
func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}

// NewDiscoveryError creates a new DiscoveryError
func NewDiscoveryError(dir string, cause error) *DiscoveryError {
	return &DiscoveryError{Dir: dir, Cause: cause}
}

// ComparisonError indicates the actual or expected output could not be read
type ComparisonError struct {
	Path  string
	Cause error
}

// Error implements the error interface
func (e *ComparisonError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error
func (e *ComparisonError) Unwrap() error {
	return e.Cause
}

// NewComparisonError creates a new ComparisonError
func NewComparisonError(path string, cause error) *ComparisonError {
	return &ComparisonError{Path: path, Cause: cause}
}

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// FailuresError is returned by a run that finished with failing cases.
// It carries no cause; the report has already been printed.
type FailuresError struct {
	Count int
}

// Error implements the error interface
func (e *FailuresError) Error() string {
	return fmt.Sprintf("%d integration test(s) failed", e.Count)
}
