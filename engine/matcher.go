package engine

import "github.com/reloginn/lsonar/syntax"

// cont is "what to try next": given a candidate position in subject,
// it attempts the remainder of the match and reports success. Every
// node matcher below is written in continuation-passing style so that
// a quantifier can retry its continuation at each backtrack point
// without an explicit alternatives stack.
type cont func(pos int) bool

// state threads the subject bytes and capture vector through a single
// find_first_match attempt, along with the anchor point for `^` and a
// recursion-depth counter guarding against pathological patterns.
type state struct {
	pattern *syntax.Pattern
	subject string
	anchor  int
	depth   int
	caps    [MaxCaptures]Capture
}

// FindFirstMatch scans forward from startOffset for the earliest
// position at which pattern matches subject, per the scanning policy
// in the matcher contract: anchored patterns try only startOffset
// itself; otherwise every position up to and including len(subject)
// is attempted so a zero-width pattern can still match at the very
// end of input.
func FindFirstMatch(pattern *syntax.Pattern, subject string, startOffset int) (m *Match, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if me, ok := r.(*MatchError); ok {
			err = me
			return
		}
		panic(r)
	}()

	anchored := len(pattern.Root.Args) > 0 && pattern.Root.Args[0].Op == syntax.OpAnchorStart

	for start := startOffset; start <= len(subject); start++ {
		st := &state{pattern: pattern, subject: subject, anchor: start}
		end := -1
		ok := st.matchSeq(pattern.Root.Args, start, func(p int) bool {
			end = p
			return true
		})
		if ok {
			result := &Match{Start: start, End: end, Caps: st.caps}
			return result, nil
		}
		if anchored {
			break
		}
	}
	return nil, nil
}

// matchSeq attempts nodes in order starting at pos, invoking k once
// the whole sequence succeeds. Each node is responsible for trying its
// own alternatives (quantifier repeat counts) before giving up, via
// the continuation it is handed.
func (st *state) matchSeq(nodes []syntax.Node, pos int, k cont) bool {
	if len(nodes) == 0 {
		return k(pos)
	}
	head, rest := nodes[0], nodes[1:]
	return st.matchNode(head, pos, func(p int) bool {
		return st.matchSeq(rest, p, k)
	})
}

func (st *state) matchNode(n syntax.Node, pos int, k cont) bool {
	st.depth++
	if st.depth > MaxDepth {
		throwMatchErrorf("pattern too complex (recursion depth exceeds %d)", MaxDepth)
	}
	defer func() { st.depth-- }()

	switch n.Op {
	case syntax.OpLiteral:
		b := st.pattern.Literal(n)
		if pos < len(st.subject) && st.subject[pos] == b {
			return k(pos + 1)
		}
		return false

	case syntax.OpAny:
		if pos < len(st.subject) {
			return k(pos + 1)
		}
		return false

	case syntax.OpClass:
		if pos >= len(st.subject) {
			return false
		}
		letter := st.pattern.Literal(n)
		member, ok := classMembers(letter, st.subject[pos])
		if !ok {
			throwMatchErrorf("undefined class '%%%c'", letter)
		}
		if member {
			return k(pos + 1)
		}
		return false

	case syntax.OpSet:
		if pos >= len(st.subject) {
			return false
		}
		if st.setMatches(n, st.subject[pos]) {
			return k(pos + 1)
		}
		return false

	case syntax.OpPositionCapture:
		saved := st.caps[n.CaptureIndex]
		st.caps[n.CaptureIndex] = Capture{Start: pos, End: pos, Set: true}
		if k(pos) {
			return true
		}
		st.caps[n.CaptureIndex] = saved
		return false

	case syntax.OpCapture:
		saved := st.caps[n.CaptureIndex]
		if st.matchSeq(n.Args, pos, func(p int) bool {
			prevEnd := st.caps[n.CaptureIndex]
			st.caps[n.CaptureIndex] = Capture{Start: pos, End: p, Set: true}
			if k(p) {
				return true
			}
			st.caps[n.CaptureIndex] = prevEnd
			return false
		}) {
			return true
		}
		st.caps[n.CaptureIndex] = saved
		return false

	case syntax.OpBalanced:
		return st.matchBalanced(n, pos, k)

	case syntax.OpFrontier:
		var prev, curr byte
		if pos > 0 {
			prev = st.subject[pos-1]
		}
		if pos < len(st.subject) {
			curr = st.subject[pos]
		}
		set := n.Args[0]
		if !st.setMatches(set, prev) && st.setMatches(set, curr) {
			return k(pos)
		}
		return false

	case syntax.OpBackRef:
		cap := st.caps[n.CaptureIndex]
		if !cap.Set {
			throwMatchErrorf("capture %d not set at back-reference", n.CaptureIndex+1)
		}
		width := cap.End - cap.Start
		if pos+width > len(st.subject) {
			return false
		}
		if st.subject[pos:pos+width] != st.subject[cap.Start:cap.End] {
			return false
		}
		return k(pos + width)

	case syntax.OpAnchorStart:
		if pos == st.anchor {
			return k(pos)
		}
		return false

	case syntax.OpAnchorEnd:
		if pos == len(st.subject) {
			return k(pos)
		}
		return false

	case syntax.OpQuantStar:
		return st.matchGreedy(n.Args[0], pos, 0, k)

	case syntax.OpQuantPlus:
		return st.matchGreedy(n.Args[0], pos, 1, k)

	case syntax.OpQuantQuestion:
		if st.matchNode(n.Args[0], pos, k) {
			return true
		}
		return k(pos)

	case syntax.OpQuantLazy:
		return st.matchLazy(n.Args[0], pos, k)
	}

	throwMatchErrorf("unhandled node in matcher: %s", n.Op)
	panic("unreachable")
}

// matchGreedy matches atom as many times as possible starting at pos,
// then tries k; on failure of k it backs off one repetition at a time
// until min repetitions remain, matching spec's Star/Plus policy:
// "greedily match as many repetitions as possible, then try tail; on
// failure reduce the count by one and retry; fail when below min."
func (st *state) matchGreedy(atom syntax.Node, pos int, min int, k cont) bool {
	initial := st.caps
	positions := []int{pos}
	snapshots := [][MaxCaptures]Capture{st.caps}
	p := pos
	for {
		advanced := false
		st.matchNode(atom, p, func(p2 int) bool {
			if p2 == p {
				return false // zero-width repetition would loop forever; stop growing
			}
			p = p2
			advanced = true
			return true
		})
		if !advanced {
			break
		}
		positions = append(positions, p)
		snapshots = append(snapshots, st.caps)
	}
	for count := len(positions) - 1; count >= min; count-- {
		st.caps = snapshots[count]
		if k(positions[count]) {
			return true
		}
	}
	st.caps = initial
	return false
}

// matchLazy tries tail first with zero repetitions, then grows one
// atom at a time, per spec's Minus policy. Each level snapshots and
// restores captures on failure so backtracking across repetition
// counts never leaves a later, abandoned repetition's capture behind.
func (st *state) matchLazy(atom syntax.Node, pos int, k cont) bool {
	saved := st.caps
	if k(pos) {
		return true
	}
	st.caps = saved
	ok := st.matchNode(atom, pos, func(p2 int) bool {
		if p2 == pos {
			return false
		}
		return st.matchLazy(atom, p2, k)
	})
	if !ok {
		st.caps = saved
	}
	return ok
}

// matchBalanced implements %bxy: require subject[pos]==open, then
// scan forward counting nested open/close occurrences, succeeding at
// the position past the close that brings the counter back to zero.
func (st *state) matchBalanced(n syntax.Node, pos int, k cont) bool {
	if pos >= len(st.subject) || st.subject[pos] != n.BalOpen {
		return false
	}
	depth := 1
	p := pos + 1
	for p < len(st.subject) {
		switch st.subject[p] {
		case n.BalClose:
			depth--
			p++
			if depth == 0 {
				return k(p)
			}
		case n.BalOpen:
			depth++
			p++
		default:
			p++
		}
	}
	return false
}

// setMatches evaluates an OpSet node (or, for %f, the set it guards)
// against a single byte.
func (st *state) setMatches(n syntax.Node, b byte) bool {
	matched := false
	for _, item := range n.Args {
		switch item.Op {
		case syntax.OpLiteral:
			if st.pattern.Literal(item) == b {
				matched = true
			}
		case syntax.OpClass:
			letter := st.pattern.Literal(item)
			member, ok := classMembers(letter, b)
			if !ok {
				throwMatchErrorf("undefined class '%%%c'", letter)
			}
			if member {
				matched = true
			}
		case syntax.OpCharRange:
			lo := st.pattern.Literal(item.Args[0])
			hi := st.pattern.Literal(item.Args[1])
			if b >= lo && b <= hi {
				matched = true
			}
		}
		if matched {
			break
		}
	}
	if n.SetNegated {
		return !matched
	}
	return matched
}
