package syntax

import (
	"fmt"
	"strings"
)

// Pattern is a parsed Lua-style pattern: the immutable AST plus the
// source text it was built from (needed to recover literal bytes,
// class letters, and balanced-pair delimiters from node positions).
type Pattern struct {
	Source string
	Root   Node

	// CaptureCount is the number of capture groups the pattern
	// declares (`(...)` or `()`), assigned at parse time. This is a
	// static property of the pattern text, not of any particular
	// match attempt — it does not shrink when a quantified or
	// alternative-less group happens not to participate in a match.
	CaptureCount int
}

// Text returns the source slice spanned by n.
func (p *Pattern) Text(n Node) string {
	return p.Source[n.Pos.Begin:n.Pos.End]
}

type Operation byte

const (
	OpNone Operation = iota

	// OpConcat is an ordered sequence of sibling atoms. The root node
	// of every Pattern is an OpConcat; Args holds the pattern's atoms.
	OpConcat

	// OpLiteral matches a single exact byte, recovered as the last
	// byte of Pattern.Text(n) (handles both a bare byte and a
	// %-escaped one, which share this Op).
	OpLiteral

	// OpAny is `.`: any single byte.
	OpAny

	// OpClass is a named class letter (%a, %d, ...). The letter is
	// the last byte of Pattern.Text(n); lower-case is the positive
	// class, upper-case its complement.
	OpClass

	// OpSet is a bracket expression `[...]`. Args holds its member
	// nodes (OpLiteral, OpClass, OpCharRange). SetNegated reports
	// whether the set opened with `[^`.
	OpSet

	// OpCharRange is an inclusive byte range `X-Y` inside a set.
	// Args[0] and Args[1] are the OpLiteral bounds.
	OpCharRange

	// OpQuantStar, OpQuantPlus, OpQuantQuestion, OpQuantLazy wrap a
	// single quantified atom in Args[0].
	OpQuantStar
	OpQuantPlus
	OpQuantQuestion
	OpQuantLazy

	// OpCapture is a numbered group `(...)`; Args holds the group
	// body's atoms. CaptureIndex is its 0-based storage slot.
	OpCapture

	// OpPositionCapture is an empty group `()`.
	OpPositionCapture

	// OpBalanced is `%bxy`. BalOpen/BalClose are x and y.
	OpBalanced

	// OpFrontier is `%f[...]`; Args[0] is the OpSet it guards.
	OpFrontier

	// OpBackRef is `%1`..`%9`. CaptureIndex is the referenced group,
	// 0-based.
	OpBackRef

	OpAnchorStart
	OpAnchorEnd
)

//go:generate stringer -type=Operation -trimprefix=Op
func (op Operation) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpConcat:
		return "Concat"
	case OpLiteral:
		return "Literal"
	case OpAny:
		return "Any"
	case OpClass:
		return "Class"
	case OpSet:
		return "Set"
	case OpCharRange:
		return "CharRange"
	case OpQuantStar:
		return "QuantStar"
	case OpQuantPlus:
		return "QuantPlus"
	case OpQuantQuestion:
		return "QuantQuestion"
	case OpQuantLazy:
		return "QuantLazy"
	case OpCapture:
		return "Capture"
	case OpPositionCapture:
		return "PositionCapture"
	case OpBalanced:
		return "Balanced"
	case OpFrontier:
		return "Frontier"
	case OpBackRef:
		return "BackRef"
	case OpAnchorStart:
		return "AnchorStart"
	case OpAnchorEnd:
		return "AnchorEnd"
	default:
		return fmt.Sprintf("<op=%d>", byte(op))
	}
}

// Node is a single AST node. Every pattern atom and structural form
// is represented by this one tagged struct; a handful of scalar
// fields carry payload that cannot be recovered by slicing Pos back
// into the source (capture numbering is assigned during parsing, not
// derivable from a byte span).
type Node struct {
	Op   Operation
	Pos  Position
	Args []Node

	CaptureIndex int  // OpCapture, OpPositionCapture, OpBackRef (0-based)
	SetNegated   bool // OpSet
	BalOpen      byte // OpBalanced
	BalClose     byte // OpBalanced
}

func (n Node) Begin() uint16 { return n.Pos.Begin }
func (n Node) End() uint16   { return n.Pos.End }

// Literal returns the matched byte for an OpLiteral or OpClass node.
func (p *Pattern) Literal(n Node) byte {
	text := p.Text(n)
	return text[len(text)-1]
}

// FormatSyntax renders the AST as an s-expression, for debugging and
// tests.
func FormatSyntax(p *Pattern) string {
	return formatNodeSyntax(p, p.Root)
}

func formatNodeSyntax(p *Pattern, n Node) string {
	switch n.Op {
	case OpLiteral:
		return fmt.Sprintf("%q", p.Literal(n))
	case OpAny:
		return "."
	case OpClass:
		return fmt.Sprintf("%%%c", p.Literal(n))
	case OpSet:
		if n.SetNegated {
			return fmt.Sprintf("[^%s]", formatArgsSyntax(p, n.Args))
		}
		return fmt.Sprintf("[%s]", formatArgsSyntax(p, n.Args))
	case OpCharRange:
		return fmt.Sprintf("%s-%s", formatNodeSyntax(p, n.Args[0]), formatNodeSyntax(p, n.Args[1]))
	case OpQuantStar:
		return fmt.Sprintf("(* %s)", formatNodeSyntax(p, n.Args[0]))
	case OpQuantPlus:
		return fmt.Sprintf("(+ %s)", formatNodeSyntax(p, n.Args[0]))
	case OpQuantQuestion:
		return fmt.Sprintf("(? %s)", formatNodeSyntax(p, n.Args[0]))
	case OpQuantLazy:
		return fmt.Sprintf("(lazy %s)", formatNodeSyntax(p, n.Args[0]))
	case OpCapture:
		return fmt.Sprintf("(capture %d %s)", n.CaptureIndex+1, formatArgsSyntax(p, n.Args))
	case OpPositionCapture:
		return fmt.Sprintf("(pos-capture %d)", n.CaptureIndex+1)
	case OpBalanced:
		return fmt.Sprintf("(%%b %c %c)", n.BalOpen, n.BalClose)
	case OpFrontier:
		return fmt.Sprintf("(%%f %s)", formatNodeSyntax(p, n.Args[0]))
	case OpBackRef:
		return fmt.Sprintf("%%%d", n.CaptureIndex+1)
	case OpAnchorStart:
		return "^"
	case OpAnchorEnd:
		return "$"
	case OpConcat:
		return fmt.Sprintf("{%s}", formatArgsSyntax(p, n.Args))
	default:
		return fmt.Sprintf("<op=%d>", byte(n.Op))
	}
}

func formatArgsSyntax(p *Pattern, args []Node) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatNodeSyntax(p, a)
	}
	return strings.Join(parts, " ")
}
