package lsonar

import (
	"strconv"

	"github.com/reloginn/lsonar/engine"
	"github.com/reloginn/lsonar/syntax"
)

// Pattern is a precompiled Lua-style pattern, reusable across calls to
// Find, Match, GMatch and Gsub without re-parsing. It is immutable
// after construction and safe to share across goroutines; a single
// match attempt's scratch state (capture slots, recursion depth)
// lives entirely on the stack of that call.
type Pattern struct {
	ast    *syntax.Pattern
	source string
	fast   fastMatcher // non-nil when a fastPathConstructors optimizer applies

	// captureCount is the pattern's statically declared number of
	// capture groups (syntax.Pattern.CaptureCount), not the number of
	// slots a particular match happened to set. A quantified or
	// otherwise unvisited group is still a declared capture and must
	// be reported as one, just absent.
	captureCount int

	// positionCaptures marks, by 0-based capture index, which groups
	// are PositionCapture (empty `()`), so their capture is rendered
	// as a 1-based offset rather than an empty substring.
	positionCaptures [engine.MaxCaptures]bool
}

// Compile parses pattern once, so repeated Find/Match/Gsub calls
// against the same pattern text skip re-lexing and re-parsing.
func Compile(pattern string) (*Pattern, error) {
	ast, err := syntax.NewParser().Parse(pattern)
	if err != nil {
		return nil, err
	}
	p := &Pattern{ast: ast, source: pattern, fast: buildFastPath(ast), captureCount: ast.CaptureCount}
	markPositionCaptures(ast.Root.Args, &p.positionCaptures)
	return p, nil
}

func markPositionCaptures(nodes []syntax.Node, marks *[engine.MaxCaptures]bool) {
	for _, n := range nodes {
		if n.Op == syntax.OpPositionCapture {
			marks[n.CaptureIndex] = true
		}
		markPositionCaptures(n.Args, marks)
	}
}

func (p *Pattern) find(text string, start int) (*engine.Match, error) {
	if p.fast != nil {
		return p.fast.find(text, start)
	}
	return engine.FindFirstMatch(p.ast, text, start)
}

// captureStrings renders the pattern's statically declared captures as
// strings — one entry per group the pattern declares, regardless of
// whether that particular match visited it. A position capture
// renders as its 1-based byte offset; a visited ordinary capture
// renders as its substring; a declared-but-never-Set capture (a
// quantified group matched zero times) renders as the empty string,
// matching the replacement template's "empty string if capture
// absent" rule.
func (p *Pattern) captureStrings(text string, m *engine.Match) []string {
	n := p.captureCount
	out := make([]string, n)
	for i := 0; i < n; i++ {
		c := m.Caps[i]
		if !c.Set {
			continue
		}
		if p.positionCaptures[i] {
			out[i] = strconv.Itoa(c.Start + 1)
			continue
		}
		out[i] = text[c.Start:c.End]
	}
	return out
}
