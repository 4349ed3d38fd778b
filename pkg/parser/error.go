package parser

import "fmt"

// ParseError reports a syntax error: an unexpected token, a malformed
// class or method header, a mismatched arity list, or a dangling
// dedent. It carries no position information because the lexer it sits
// on top of tracks none either.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func errorf(format string, args ...any) *ParseError {
	return &ParseError{Message: "parser: " + fmt.Sprintf(format, args...)}
}
