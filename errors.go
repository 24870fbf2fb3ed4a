package lsonar

import "fmt"

// ReplacementError reports a malformed gsub replacement template: an
// undefined %X escape, or a %N digit referencing a capture the
// pattern never declares.
type ReplacementError struct {
	Message string
}

func (e *ReplacementError) Error() string {
	return fmt.Sprintf("replacement error: %s", e.Message)
}
