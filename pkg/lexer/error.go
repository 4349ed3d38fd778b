package lexer

import "fmt"

// Error reports malformed input at the character level: odd indentation,
// an unterminated string, an unrecognized character, or a malformed
// operator. It is always fatal to the surrounding program.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
