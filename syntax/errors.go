package syntax

import "fmt"

// LexerError reports a malformed pattern rejected while scanning.
type LexerError struct {
	Message string
	Offset  int
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error at offset %d: %s", e.Offset, e.Message)
}

// ParserError reports a structural error found while building the AST.
type ParserError struct {
	Message string
	Offset  int
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parser error at offset %d: %s", e.Offset, e.Message)
}

// throwLexErrorf panics with a *LexerError; recovered by Lexer.Init's
// caller (the parser), keeping error propagation out of deeply nested
// scanning/parsing helpers as a typed panic/recover rather than a
// threaded error return at every call site.
func throwLexErrorf(offset int, format string, args ...interface{}) {
	panic(&LexerError{Message: fmt.Sprintf(format, args...), Offset: offset})
}

// throwParseErrorf panics with a *ParserError.
func throwParseErrorf(offset int, format string, args ...interface{}) {
	panic(&ParserError{Message: fmt.Sprintf(format, args...), Offset: offset})
}
