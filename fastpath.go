package lsonar

import (
	"strings"

	"github.com/reloginn/lsonar/engine"
	"github.com/reloginn/lsonar/syntax"
)

// fastPathConstructors is a list of optimizers tried in order at
// Compile time, the first non-nil one winning, falling back to the
// general backtracking engine when none apply.
var fastPathConstructors = []func(*syntax.Pattern) fastMatcher{
	literalFastPath,
}

// fastMatcher is an optimized stand-in for a full FindFirstMatch call
// when the pattern's shape makes the general engine unnecessary.
type fastMatcher interface {
	find(text string, start int) (*engine.Match, error)
}

func buildFastPath(ast *syntax.Pattern) fastMatcher {
	for _, ctor := range fastPathConstructors {
		if m := ctor(ast); m != nil {
			return m
		}
	}
	return nil
}

// literalFastPath recognizes a pattern that is nothing but a flat run
// of literal bytes (no anchors, classes, sets, captures, quantifiers
// or specialty operators) and answers it with strings.Index instead
// of walking the backtracking matcher one byte at a time.
func literalFastPath(ast *syntax.Pattern) fastMatcher {
	lit := make([]byte, 0, len(ast.Root.Args))
	for _, n := range ast.Root.Args {
		if n.Op != syntax.OpLiteral {
			return nil
		}
		lit = append(lit, ast.Literal(n))
	}
	return literalMatcher(lit)
}

type literalMatcher string

func (m literalMatcher) find(text string, start int) (*engine.Match, error) {
	if start > len(text) {
		return nil, nil
	}
	idx := strings.Index(text[start:], string(m))
	if idx < 0 {
		return nil, nil
	}
	s := start + idx
	return &engine.Match{Start: s, End: s + len(m)}, nil
}
