package lsonar

import "strings"

// Gsub implements Lua's string.gsub. n bounds the number of
// replacements performed; pass a negative n for unlimited, matching
// the "default: unlimited" contract. It returns the rewritten text
// and the number of replacements actually performed (not the number
// of match attempts).
func Gsub(text, pattern string, repl Replacer, n int) (output string, count int, err error) {
	p, err := Compile(pattern)
	if err != nil {
		return "", 0, err
	}
	return p.Gsub(text, repl, n)
}

// Gsub runs a precompiled Pattern's gsub against text, grounded on
// original_source/src/lua/gsub.rs's scan-replace-advance loop: on a
// zero-width match the engine still performs the replacement, then
// copies one source byte forward and advances past it, so the search
// can never stall.
func (p *Pattern) Gsub(text string, repl Replacer, n int) (output string, count int, err error) {
	limit := n
	if limit < 0 {
		limit = -1
	}

	var b strings.Builder
	lastPos := 0

	for limit < 0 || count < limit {
		m, err := p.find(text, lastPos)
		if err != nil {
			return "", 0, err
		}
		if m == nil {
			break
		}

		b.WriteString(text[lastPos:m.Start])

		fullMatch := text[m.Start:m.End]
		captures := p.captureStrings(text, m)
		replacement, err := repl.replace(fullMatch, captures)
		if err != nil {
			return "", 0, err
		}
		b.WriteString(replacement)

		lastPos = m.End
		count++

		if m.Start == m.End {
			if lastPos >= len(text) {
				break
			}
			b.WriteByte(text[lastPos])
			lastPos++
		}
	}

	if lastPos < len(text) {
		b.WriteString(text[lastPos:])
	}
	return b.String(), count, nil
}
