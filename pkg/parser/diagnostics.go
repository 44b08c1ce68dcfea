package parser

import "fmt"

// ParseError reports why a line could not be parsed. No partial tree is
// ever returned alongside it.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

var (
	errEmptyLine     = &ParseError{Message: "empty line"}
	errExtraTokens   = &ParseError{Message: "extra tokens"}
	errUnexpectedEnd = &ParseError{Message: "unexpected end of tokens"}
)
