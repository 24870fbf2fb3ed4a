package engine

import "fmt"

// MaxCaptures is Lua's LUA_MAXCAPTURES: the fixed size of the capture
// slot vector a match result carries.
const MaxCaptures = 32

// MaxDepth bounds recursive descent into the matcher, mirroring Lua's
// MAXCCALLS guard against stack overflow on pathological patterns.
const MaxDepth = 200

// MatchError reports a run-time matching failure distinct from an
// ordinary absence of a match: an undefined class letter, an unset
// back-reference reached at match time, or recursion overflow.
type MatchError struct {
	Message string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("match error: %s", e.Message)
}

func throwMatchErrorf(format string, args ...interface{}) {
	panic(&MatchError{Message: fmt.Sprintf(format, args...)})
}
