package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reloginn/lsonar/syntax"
)

func mustParse(t *testing.T, pattern string) *syntax.Pattern {
	t.Helper()
	p, err := syntax.NewParser().Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	return p
}

func TestFindFirstMatchRanges(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		start   int
		end     int
		found   bool
	}{
		{`abc`, `xxabcxx`, 2, 5, true},
		{`abc`, `xxxxx`, 0, 0, false},
		{`a*`, `bbb`, 0, 0, true}, // zero-width match at position 0
		{`a+`, `bbb`, 0, 0, false},
		{`a+`, `baaab`, 1, 4, true},
		{`a-b`, `aaab`, 0, 4, true}, // lazy still must satisfy the tail
		{`^abc`, `xabc`, 0, 0, false},
		{`^abc`, `abcx`, 0, 3, true},
		{`abc$`, `xabc`, 1, 4, true},
		{`abc$`, `abcx`, 0, 0, false},
		{`%d+`, `ab123cd`, 2, 5, true},
		{`[%a]+`, `123abc456`, 3, 6, true},
		{`[^%d]+`, `123abc456`, 3, 6, true},
	}
	for _, tt := range tests {
		pat := mustParse(t, tt.pattern)
		m, err := FindFirstMatch(pat, tt.subject, 0)
		if err != nil {
			t.Fatalf("FindFirstMatch(%q, %q) error: %v", tt.pattern, tt.subject, err)
		}
		if (m != nil) != tt.found {
			t.Fatalf("FindFirstMatch(%q, %q) found = %v, want %v", tt.pattern, tt.subject, m != nil, tt.found)
		}
		if !tt.found {
			continue
		}
		if m.Start != tt.start || m.End != tt.end {
			t.Errorf("FindFirstMatch(%q, %q) = [%d,%d), want [%d,%d)", tt.pattern, tt.subject, m.Start, m.End, tt.start, tt.end)
		}
	}
}

// TestQuantifiedCaptureKeepsLastIteration is Lua's documented
// observable: after `(a)+` against "aaa", capture 1 is the final
// repetition's range, not the first.
func TestQuantifiedCaptureKeepsLastIteration(t *testing.T) {
	pat := mustParse(t, `(a)+`)
	m, err := FindFirstMatch(pat, "aaa", 0)
	if err != nil {
		t.Fatalf("FindFirstMatch error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	if diff := cmp.Diff(0, m.Start); diff != "" {
		t.Errorf("Start mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(3, m.End); diff != "" {
		t.Errorf("End mismatch (-want +got):\n%s", diff)
	}
	start, end, ok := m.CaptureRange(0)
	if !ok {
		t.Fatal("capture 1 not set")
	}
	if start != 2 || end != 3 {
		t.Errorf("capture 1 = [%d,%d), want [2,3)", start, end)
	}
}

func TestBackReference(t *testing.T) {
	pat := mustParse(t, `(%a+)%1`)
	m, err := FindFirstMatch(pat, "abcabcxyz", 0)
	if err != nil {
		t.Fatalf("FindFirstMatch error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Start != 0 || m.End != 6 {
		t.Errorf("match = [%d,%d), want [0,6)", m.Start, m.End)
	}
}

func TestBalancedMatch(t *testing.T) {
	pat := mustParse(t, `%b()`)
	m, err := FindFirstMatch(pat, "x(a(b)c)y", 0)
	if err != nil {
		t.Fatalf("FindFirstMatch error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	if got, want := "x(a(b)c)y"[m.Start:m.End], "(a(b)c)"; got != want {
		t.Errorf("balanced match = %q, want %q", got, want)
	}
}

func TestFrontierMatch(t *testing.T) {
	pat := mustParse(t, `%f[%d]%d+`)
	m, err := FindFirstMatch(pat, "abc123def", 0)
	if err != nil {
		t.Fatalf("FindFirstMatch error: %v", err)
	}
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Start != 3 || m.End != 6 {
		t.Errorf("match = [%d,%d), want [3,6)", m.Start, m.End)
	}
}

func TestUndefinedClassLetterIsMatchError(t *testing.T) {
	// The lexer accepts any letter after '%' as a class; the matcher
	// rejects undefined ones at match time.
	pat := mustParse(t, `%k`)
	_, err := FindFirstMatch(pat, "abc", 0)
	if err == nil {
		t.Fatal("expected a MatchError")
	}
	if _, ok := err.(*MatchError); !ok {
		t.Fatalf("error type = %T, want *MatchError", err)
	}
}

func TestRecursionDepthGuard(t *testing.T) {
	deep := ""
	for i := 0; i < MaxDepth+50; i++ {
		deep += "a?"
	}
	pat := mustParse(t, deep)
	subject := ""
	for i := 0; i < MaxDepth+50; i++ {
		subject += "a"
	}
	_, err := FindFirstMatch(pat, subject, 0)
	if err == nil {
		t.Fatal("expected recursion depth MatchError")
	}
	if _, ok := err.(*MatchError); !ok {
		t.Fatalf("error type = %T, want *MatchError", err)
	}
}
