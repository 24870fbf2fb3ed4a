package lsonar

import "strings"

// Replacer is gsub's replacement argument, grounded on
// original_source/src/lua/gsub.rs's three-way Repl dispatch
// (string template, function, table), ported to Go as an interface
// with one concrete implementation per variant rather than a Rust
// enum match.
type Replacer interface {
	replace(fullMatch string, captures []string) (string, error)
}

// ReplString is a %-template replacement: %0 is the full match, %1-%9
// are the pattern's captures (%1 is the full match if the pattern
// declares none), %% is a literal percent, any other %X is a
// ReplacementError.
type ReplString string

func (r ReplString) replace(fullMatch string, captures []string) (string, error) {
	return processReplacementTemplate(string(r), fullMatch, captures)
}

func processReplacementTemplate(tmpl, fullMatch string, captures []string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(tmpl) {
			return "", &ReplacementError{Message: "replacement template ends with '%'"}
		}
		switch d := tmpl[i]; {
		case d == '%':
			b.WriteByte('%')
		case d == '0':
			b.WriteString(fullMatch)
		case d >= '1' && d <= '9':
			idx := int(d - '1')
			if len(captures) == 0 && idx == 0 {
				b.WriteString(fullMatch)
				continue
			}
			if idx >= len(captures) {
				return "", &ReplacementError{Message: "replacement template references undeclared capture %" + string(d)}
			}
			b.WriteString(captures[idx])
		default:
			return "", &ReplacementError{Message: "invalid replacement escape '%" + string(d) + "'"}
		}
	}
	return b.String(), nil
}

// ReplFunc invokes f with the full match and a slice holding every
// capture the pattern declares (an unset capture is the empty
// string); its return value is used verbatim as
// the replacement, with ok=false meaning "keep the original match
// text unchanged" (this implementation's binding-layer signal for
// Lua's "function returns nil/false" behavior).
type ReplFunc func(fullMatch string, captures []string) (result string, ok bool)

func (r ReplFunc) replace(fullMatch string, captures []string) (string, error) {
	result, ok := r(fullMatch, captures)
	if !ok {
		return fullMatch, nil
	}
	return result, nil
}

// ReplTable looks the replacement up by key: the first capture if the
// pattern declares one, else the full match. A missing key keeps the
// original match text unchanged.
type ReplTable map[string]string

func (r ReplTable) replace(fullMatch string, captures []string) (string, error) {
	key := fullMatch
	if len(captures) > 0 {
		key = captures[0]
	}
	if v, ok := r[key]; ok {
		return v, nil
	}
	return fullMatch, nil
}
