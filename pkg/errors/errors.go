package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing and for
// mapping failures to process exit codes.
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// CLI usage errors
	ErrNoLinkType        ErrorCode = "NO_LINK_TYPE"
	ErrMultipleLinkTypes ErrorCode = "MULTIPLE_LINK_TYPES"

	// Junction errors
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrDirOpen       ErrorCode = "DIR_OPEN"
	ErrReparseSet    ErrorCode = "REPARSE_SET"
	ErrTargetTooLong ErrorCode = "TARGET_TOO_LONG"

	// Other link kinds
	ErrSymlinkCreate  ErrorCode = "SYMLINK_CREATE"
	ErrHardlinkCreate ErrorCode = "HARDLINK_CREATE"
	ErrSoftlinkCreate ErrorCode = "SOFTLINK_CREATE"

	// Platform and configuration errors
	ErrUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"
	ErrConfigLoad          ErrorCode = "CONFIG_LOAD"
)

// Exit codes reported to the operating system. Every failure is
// terminal for the invocation; there is no retry anywhere in the tool.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitJunction    = 2
	ExitSymlink     = 3
	ExitHardlink    = 4
	ExitSoftlink    = 5
	ExitUnsupported = 7
)

// LinkError represents a structured error with code and details
type LinkError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *LinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinkError) Is(target error) bool {
	var targetErr *LinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkError with the given code and message
func New(code ErrorCode, message string) *LinkError {
	return &LinkError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new LinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkError {
	return &LinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a LinkError
func Wrap(err error, code ErrorCode, message string) *LinkError {
	if err == nil {
		return nil
	}
	return &LinkError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkError {
	if err == nil {
		return nil
	}
	return &LinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var linkErr *LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// not a LinkError
func GetErrorCode(err error) ErrorCode {
	var linkErr *LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Code
	}
	return ErrUnknown
}

// ExitCode maps an error to the process exit code reported to the
// operator. nil maps to 0. Errors that carry no known code map to the
// generic usage code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch GetErrorCode(err) {
	case ErrDirCreate, ErrDirOpen, ErrReparseSet, ErrTargetTooLong:
		return ExitJunction
	case ErrSymlinkCreate:
		return ExitSymlink
	case ErrHardlinkCreate:
		return ExitHardlink
	case ErrSoftlinkCreate:
		return ExitSoftlink
	case ErrUnsupportedPlatform:
		return ExitUnsupported
	default:
		return ExitUsage
	}
}
