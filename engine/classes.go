package engine

// classMembers reports whether b belongs to the named class letter,
// a small switch-based byte predicate per class, covering the full
// table of Lua class letters. letter is the raw letter as it
// appeared after '%' (case carries the positive/complement meaning).
// ok is false for any letter outside the defined set, which the
// matcher turns into a *MatchError.
func classMembers(letter byte, b byte) (result bool, ok bool) {
	lower := letter
	negate := false
	if lower >= 'A' && lower <= 'Z' {
		lower += 'a' - 'A'
		negate = true
	}

	var member bool
	switch lower {
	case 'a':
		member = isAlpha(b)
	case 'd':
		member = isDigit(b)
	case 'l':
		member = b >= 'a' && b <= 'z'
	case 'u':
		member = b >= 'A' && b <= 'Z'
	case 's':
		member = isSpaceByte(b)
	case 'w':
		member = isAlpha(b) || isDigit(b)
	case 'x':
		member = isHexDigit(b)
	case 'p':
		member = isPunct(b)
	case 'c':
		member = isControl(b)
	case 'g':
		member = isPrintableNonSpace(b)
	default:
		return false, false
	}

	if negate {
		return !member, true
	}
	return member, true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// isPrintableNonSpace is %g: printable, excluding the space byte.
func isPrintableNonSpace(b byte) bool {
	return b > 0x20 && b < 0x7f
}

// isPunct follows ASCII ispunct: printable, not alphanumeric, not
// space, and never a byte >= 128 — %p is pinned to the ASCII range.
func isPunct(b byte) bool {
	if b >= 0x80 {
		return false
	}
	return isPrintableNonSpace(b) && !isAlpha(b) && !isDigit(b)
}
