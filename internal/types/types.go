// Package types defines core data types and errors for the fmtlatex application.
package types

// Config holds the persisted application settings.
type Config struct {
	// Width is the column at which reflowed prose is wrapped.
	Width int `json:"width"`
	// DebugLogging enables debug-level log output.
	DebugLogging bool `json:"debug_logging"`
	// BackupEnabled controls whether in-place formatting keeps a backup
	// of the original file.
	BackupEnabled bool `json:"backup_enabled"`
	// LogFilePath overrides the default log file location.
	LogFilePath string `json:"log_file_path"`
}

// ErrorCode identifies a category of application error.
type ErrorCode string

const (
	ErrConfig       ErrorCode = "CONFIG_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrIO           ErrorCode = "IO_ERROR"
	ErrEncoding     ErrorCode = "ENCODING_ERROR"
)

// AppError is the application error type carried across layer boundaries.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Unwrap returns the underlying cause of the error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError with the given code, message, and optional cause
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code ErrorCode, message, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}
