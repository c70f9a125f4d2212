package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failed command.
type ErrorCode string

const (
	// CodeEmptyCommand indicates a blank input line.
	CodeEmptyCommand ErrorCode = "EMPTY_COMMAND"

	// CodeUnrecognizedCommand indicates the first token matches no keyword spelling.
	CodeUnrecognizedCommand ErrorCode = "UNRECOGNIZED_COMMAND"

	// CodeMissingArgument indicates an operation requiring a target name received none.
	CodeMissingArgument ErrorCode = "MISSING_ARGUMENT"

	// CodeNotADirectory indicates a directory was expected.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeIsADirectory indicates a file was expected.
	CodeIsADirectory ErrorCode = "IS_A_DIRECTORY"

	// CodeUnsupportedExtension indicates show targeted an excluded binary or media file.
	CodeUnsupportedExtension ErrorCode = "UNSUPPORTED_EXTENSION"

	// CodeAtRoot indicates back was attempted from the root.
	CodeAtRoot ErrorCode = "AT_ROOT"

	// CodeAttributesUnavailable indicates a metadata query failed.
	CodeAttributesUnavailable ErrorCode = "ATTRIBUTES_UNAVAILABLE"

	// CodeOutsideRoot indicates a target name resolves above the root.
	CodeOutsideRoot ErrorCode = "OUTSIDE_ROOT"
)

// Sentinel values for errors.Is. They match any *Error with the same code.
var (
	ErrEmptyCommand          = &Error{Code: CodeEmptyCommand}
	ErrUnrecognizedCommand   = &Error{Code: CodeUnrecognizedCommand}
	ErrMissingArgument       = &Error{Code: CodeMissingArgument}
	ErrNotADirectory         = &Error{Code: CodeNotADirectory}
	ErrIsADirectory          = &Error{Code: CodeIsADirectory}
	ErrUnsupportedExtension  = &Error{Code: CodeUnsupportedExtension}
	ErrAtRoot                = &Error{Code: CodeAtRoot}
	ErrAttributesUnavailable = &Error{Code: CodeAttributesUnavailable}
	ErrOutsideRoot           = &Error{Code: CodeOutsideRoot}
)

// Error is a classified command failure. Every failure is recoverable: the
// session reports it and waits for the next line.
type Error struct {
	Code   ErrorCode
	Op     Kind   // operation that failed, KindUnknown for parse failures
	Target string // token or path the failure concerns
	Err    error  // underlying cause, if any
}

// NewError creates a classified failure.
func NewError(code ErrorCode, op Kind, target string, cause error) *Error {
	return &Error{Code: code, Op: op, Target: target, Err: cause}
}

func (e *Error) Error() string {
	return e.message()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func (e *Error) message() string {
	switch e.Code {
	case CodeEmptyCommand:
		return "Type something..."
	case CodeUnrecognizedCommand:
		return fmt.Sprintf("Can't parse command [%s]", e.Target)
	case CodeMissingArgument:
		switch e.Op {
		case KindShow:
			return "Please specify what to show"
		case KindOpen:
			return "Please specify the directory to be opened"
		case KindDetail:
			return "Please specify a valid file or directory to be detailed"
		}
		return fmt.Sprintf("%s command requires an argument", e.Op)
	case CodeNotADirectory:
		return fmt.Sprintf("%s command can only be used on directories.", e.Op)
	case CodeIsADirectory:
		return fmt.Sprintf("%s command cannot be used on directories.", e.Op)
	case CodeUnsupportedExtension:
		return "Extension not supported."
	case CodeAtRoot:
		return "Cannot go beyond the root directory."
	case CodeAttributesUnavailable:
		return "Please specify a valid file or directory to be detailed"
	case CodeOutsideRoot:
		return fmt.Sprintf("Path [%s] is outside the root directory.", e.Target)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// CodeOf extracts the ErrorCode from err, or "" if err is not classified.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
