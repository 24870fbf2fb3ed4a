package lsonar

// MatchIter is a lazy, finite cursor over successive non-overlapping
// matches of a pattern against a fixed text: callers step with Next
// in a loop rather than receiving a channel or callback.
type MatchIter struct {
	pattern *Pattern
	text    string
	pos     int
	done    bool
}

// GMatch implements Lua's string.gmatch: returns an iterator yielding
// the captures of each successive match (or the full match as the
// sole element when the pattern declares none).
func GMatch(text, pattern string) (*MatchIter, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.GMatch(text), nil
}

// GMatch returns an iterator over text using a precompiled Pattern.
func (p *Pattern) GMatch(text string) *MatchIter {
	return &MatchIter{pattern: p, text: text}
}

// HasMore reports whether a call to Next may still produce a result.
func (it *MatchIter) HasMore() bool {
	return !it.done
}

// Next advances the iterator and returns the next match's capture
// list (or the full match text alone, for a pattern with no
// captures). ok is false once the sequence is exhausted; err is
// non-nil if the matcher itself failed, which also ends the sequence.
func (it *MatchIter) Next() (results []string, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}
	if it.pos > len(it.text) {
		it.done = true
		return nil, false, nil
	}

	m, err := it.pattern.find(it.text, it.pos)
	if err != nil {
		it.done = true
		return nil, false, err
	}
	if m == nil {
		it.done = true
		return nil, false, nil
	}

	if m.End == m.Start {
		it.pos = m.End + 1
	} else {
		it.pos = m.End
	}

	if it.pattern.captureCount == 0 {
		return []string{it.text[m.Start:m.End]}, true, nil
	}
	return it.pattern.captureStrings(it.text, m), true, nil
}
