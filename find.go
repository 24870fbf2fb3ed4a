package lsonar

import "strings"

// Find implements Lua's string.find. It returns the 1-based inclusive
// (start, end) offsets of the first match at or after init (0-based
// init accepted here; callers doing host-convention conversion belong
// in cmd/lsonar per the interface boundary), the match's captures (or
// none if the pattern declares none), and whether a match was found.
//
// If plain is true, pattern is treated as a literal substring and no
// pattern compilation occurs at all.
func Find(text, pattern string, init int, plain bool) (start, end int, captures []string, ok bool, err error) {
	if init < 0 {
		init = 0
	}
	if init > len(text) {
		return 0, 0, nil, false, nil
	}

	if plain {
		idx := strings.Index(text[init:], pattern)
		if idx < 0 {
			return 0, 0, nil, false, nil
		}
		s := init + idx
		e := s + len(pattern)
		return s + 1, e, nil, true, nil
	}

	p, err := Compile(pattern)
	if err != nil {
		return 0, 0, nil, false, err
	}
	return p.Find(text, init)
}

// Find runs a precompiled Pattern against text starting at init.
func (p *Pattern) Find(text string, init int) (start, end int, captures []string, ok bool, err error) {
	if init < 0 {
		init = 0
	}
	if init > len(text) {
		return 0, 0, nil, false, nil
	}
	m, err := p.find(text, init)
	if err != nil {
		return 0, 0, nil, false, err
	}
	if m == nil {
		return 0, 0, nil, false, nil
	}
	return m.Start + 1, m.End, p.captureStrings(text, m), true, nil
}
