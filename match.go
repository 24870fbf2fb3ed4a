package lsonar

// Match implements Lua's string.match. When the pattern declares no
// captures, the returned slice holds the single full-match string;
// otherwise it holds the declared captures in order.
func Match(text, pattern string, init int) (results []string, ok bool, err error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, false, err
	}
	return p.Match(text, init)
}

// Match runs a precompiled Pattern against text starting at init.
func (p *Pattern) Match(text string, init int) (results []string, ok bool, err error) {
	if init < 0 {
		init = 0
	}
	if init > len(text) {
		return nil, false, nil
	}
	m, err := p.find(text, init)
	if err != nil {
		return nil, false, err
	}
	if m == nil {
		return nil, false, nil
	}
	if p.captureCount == 0 {
		return []string{text[m.Start:m.End]}, true, nil
	}
	return p.captureStrings(text, m), true, nil
}
