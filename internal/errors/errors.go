package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// The pipeline contract collapses every fatal condition into a single non-zero
// status so that cron jobs and CI wrappers only need to gate on zero.
const (
	ExitSuccess = 0 // Indicates the full pipeline completed.
	ExitFailure = 1 // Indicates any fatal condition (config, dependency, directory, step).
)

// MissingConfigError reports that the configuration file the pipeline requires
// does not exist in the working directory. It carries the expected path and the
// name of the template an operator should copy to create it.
type MissingConfigError struct {
	// Path is the configuration file the pipeline looked for.
	Path string
	// Template is the example file operators copy to create Path.
	Template string
}

// Error returns the error message for a MissingConfigError.
//
// Returns:
//   - string: The error message string.
func (e MissingConfigError) Error() string {
	return fmt.Sprintf("configuration file %s not found", e.Path)
}

// ConfigError represents a configuration problem other than absence, such as
// an unreadable file. It indicates that the pipeline cannot proceed.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// DependencyError reports that the runtime dependency probe failed: the
// configured interpreter could not import the module the analysis steps need.
// It carries the probe output and the installation hint shown to operators.
type DependencyError struct {
	// Module is the import the probe attempted.
	Module string
	// InstallHint is the command that installs the missing module.
	InstallHint string
	// Output is the combined stdout/stderr captured from the probe.
	Output string
	// Cause is the underlying process error, if any.
	Cause error
}

// Error returns a message naming the missing module.
//
// Returns:
//   - string: The error message string.
func (e DependencyError) Error() string {
	return fmt.Sprintf("required module %q is not importable", e.Module)
}

// Unwrap returns the underlying process error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause, or nil.
func (e DependencyError) Unwrap() error { return e.Cause }

// StepError reports that an analysis step terminated unsuccessfully. ExitCode
// holds the child's exit status, or -1 when the process could not be started
// at all (in which case Cause explains why).
type StepError struct {
	// Step is the name of the analysis step that failed.
	Step string
	// ExitCode is the child's exit status, or -1 if it never started.
	ExitCode int
	// Cause is the underlying error that prevented or aborted the step.
	Cause error
}

// Error returns a formatted message describing the step failure.
//
// Returns:
//   - string: The error message string.
func (e StepError) Error() string {
	if e.ExitCode < 0 && e.Cause != nil {
		return fmt.Sprintf("step %q failed to start: %v", e.Step, e.Cause)
	}
	return fmt.Sprintf("step %q failed with exit code %d", e.Step, e.ExitCode)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the StepError.
func (e StepError) Unwrap() error { return e.Cause }

// DirectoryError reports that the output directory could not be created.
type DirectoryError struct {
	// Path is the directory the pipeline attempted to create.
	Path string
	// Cause is the underlying filesystem error.
	Cause error
}

// Error returns a formatted message describing the directory failure.
//
// Returns:
//   - string: The error message string.
func (e DirectoryError) Error() string {
	return fmt.Sprintf("cannot create output directory %q: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying filesystem error.
//
// Returns:
//   - error: The underlying cause of the DirectoryError.
func (e DirectoryError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
