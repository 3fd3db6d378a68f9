package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for better error handling and user feedback

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field   string
	Message string
	Hint    string
}

func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("config error: %s - %s\nHint: %s", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("config error: %s - %s", e.Field, e.Message)
}

// NewConfigError creates a new config error
func NewConfigError(field, message, hint string) *ConfigError {
	return &ConfigError{Field: field, Message: message, Hint: hint}
}

// BuildError represents failures of the pipeline itself, outside any external tool
type BuildError struct {
	Phase   string
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("build error [%s]: %s\nCaused by: %v", e.Phase, e.Message, e.Cause)
	}
	return fmt.Sprintf("build error [%s]: %s", e.Phase, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// NewBuildError creates a new build error
func NewBuildError(phase, message string, cause error) *BuildError {
	return &BuildError{Phase: phase, Message: message, Cause: cause}
}

// ToolError is returned when an external tool exits non-zero or cannot be started.
// ExitCode is -1 when the process never ran.
type ToolError struct {
	Tool       string
	Phase      string
	ExitCode   int
	Stderr     string
	InstallCmd string
	Cause      error
}

func (e *ToolError) Error() string {
	var b strings.Builder
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		fmt.Fprintf(&b, "%s failed: %s", e.Phase, stderr)
	} else if e.Cause != nil {
		fmt.Fprintf(&b, "%s failed: %s: %v", e.Phase, e.Tool, e.Cause)
	} else {
		fmt.Fprintf(&b, "%s failed: %s exited with status %d", e.Phase, e.Tool, e.ExitCode)
	}
	if e.InstallCmd != "" {
		fmt.Fprintf(&b, "\nInstall with: %s", e.InstallCmd)
	}
	return b.String()
}

func (e *ToolError) Unwrap() error {
	return e.Cause
}

// NewToolError creates a new tool error
func NewToolError(tool, phase string, exitCode int, stderr string, cause error) *ToolError {
	return &ToolError{Tool: tool, Phase: phase, ExitCode: exitCode, Stderr: stderr, Cause: cause}
}

// IsConfigError checks if error is a config error
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsBuildError checks if error is a build error
func IsBuildError(err error) bool {
	var buildErr *BuildError
	return errors.As(err, &buildErr)
}

// IsToolError checks if error is a tool error
func IsToolError(err error) bool {
	var toolErr *ToolError
	return errors.As(err, &toolErr)
}

// AsToolError returns the ToolError wrapped in err, if any
func AsToolError(err error) (*ToolError, bool) {
	var toolErr *ToolError
	ok := errors.As(err, &toolErr)
	return toolErr, ok
}
