package validate

import (
	"errors"
	"fmt"
)

// Error codes for the failures a cipher invocation can report.
const (
	// ErrCodeUsage indicates a single argument other than "test".
	ErrCodeUsage = "USAGE"

	// ErrCodeArgCount indicates neither 1 nor 4 positional arguments.
	ErrCodeArgCount = "ARG_COUNT"

	// ErrCodeCommandInvalid indicates a command other than encode or decode.
	ErrCodeCommandInvalid = "COMMAND_INVALID"

	// ErrCodeShiftInvalid indicates shift text that is not a decimal integer.
	ErrCodeShiftInvalid = "SHIFT_INVALID"

	// ErrCodeFileInvalid indicates an input or output path that cannot be opened.
	ErrCodeFileInvalid = "FILE_INVALID"

	// ErrCodeSelfTestFailed indicates at least one self-test scenario mismatched.
	ErrCodeSelfTestFailed = "SELF_TEST_FAILED"
)

// Diagnostic messages. These are printed verbatim to stderr.
const (
	MsgUsage          = "Usage: cipher test"
	MsgArgCount       = "The program receives 1 or 4 arguments only."
	MsgCommandInvalid = "The given command is invalid."
	MsgShiftInvalid   = "The given shift value is invalid."
	MsgFileInvalid    = "The given file is invalid."
	MsgSelfTestFailed = "Self-test failed."
)

// Error is a failed invocation. Message is the exact line the CLI prints to
// stderr; Code and Cause only appear in logs.
type Error struct {
	Code    string
	Message string
	// Cause is the OS error behind a file failure, if any.
	Cause error
}

// Error renders code, diagnostic and cause for logging.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Code + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any Error with the same code, so a wrapped file failure still
// satisfies errors.Is(err, ErrFileInvalid).
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Code == e.Code
}

// NewError returns an Error with no cause.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError returns an Error that keeps cause for errors.Is and logging.
func WrapError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinel errors for use with errors.Is.
var (
	ErrUsage          = NewError(ErrCodeUsage, MsgUsage)
	ErrArgCount       = NewError(ErrCodeArgCount, MsgArgCount)
	ErrCommandInvalid = NewError(ErrCodeCommandInvalid, MsgCommandInvalid)
	ErrShiftInvalid   = NewError(ErrCodeShiftInvalid, MsgShiftInvalid)
	ErrFileInvalid    = NewError(ErrCodeFileInvalid, MsgFileInvalid)
	ErrSelfTestFailed = NewError(ErrCodeSelfTestFailed, MsgSelfTestFailed)
)

// AsError checks if err is an Error and returns it if so.
func AsError(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// Diagnostic returns the text to show the user for err. For an Error this is
// its Message alone; anything else is shown in full.
func Diagnostic(err error) string {
	if vErr, ok := AsError(err); ok {
		return vErr.Message
	}
	return err.Error()
}
