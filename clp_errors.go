package clp

import "fmt"

// SetupError indicates a misconfiguration by the code registering
// parameters: duplicate names, a named parameter with no name, a second
// positional group. These are bugs in the calling program, not user input
// problems, and are not expected to be recovered from outside of tests.
type SetupError struct {
	msg string
}

func (e *SetupError) Error() string {
	return e.msg
}

// ParseError indicates bad user input: an unknown flag, too few or too
// many sub-arguments, leftover tokens, a missing required parameter, or a
// value that failed conversion. Callers typically print the message and
// exit non-zero.
type ParseError struct {
	msg   string
	cause error
}

func (e *ParseError) Error() string {
	return e.msg
}

func (e *ParseError) Unwrap() error {
	return e.cause
}

func setupErrorf(format string, args ...any) *SetupError {
	return &SetupError{msg: fmt.Sprintf(format, args...)}
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

// parseErrorWrap carries the underlying conversion error so callers can
// inspect it with errors.Unwrap while still seeing a ParseError.
func parseErrorWrap(cause error, format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...), cause: cause}
}
