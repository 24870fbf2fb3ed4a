package lsonar

import "testing"

func TestMatchNoCaptures(t *testing.T) {
	results, ok, err := Match("hello world", "wor", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if len(results) != 1 || results[0] != "wor" {
		t.Errorf("results = %v, want [\"wor\"]", results)
	}
}

func TestMatchWithCaptures(t *testing.T) {
	results, ok, err := Match("2024-06-01", "(%d+)%-(%d+)%-(%d+)", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	want := []string{"2024", "06", "01"}
	if len(results) != len(want) {
		t.Fatalf("results = %v, want %v", results, want)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, results[i], want[i])
		}
	}
}

// TestMatchUnsetTrailingCaptureStillReported is the pattern's declared
// capture count, not the number of slots a given match happened to
// set: "(b)?" is a real capture even when it matches zero times.
func TestMatchUnsetTrailingCaptureStillReported(t *testing.T) {
	results, ok, err := Match("ac", "a(b)?c", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	if len(results) != 1 || results[0] != "" {
		t.Errorf("results = %v, want [\"\"]", results)
	}
}

// TestMatchUnsetCaptureAmongMultiple covers an unset capture that is
// not the sole declared group, so the defect it guards against isn't
// masked by the zero-captures "return full match" branch.
func TestMatchUnsetCaptureAmongMultiple(t *testing.T) {
	results, ok, err := Match("a", "(a)(b)?", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	want := []string{"a", ""}
	if len(results) != len(want) {
		t.Fatalf("results = %v, want %v", results, want)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, results[i], want[i])
		}
	}
}

func TestMatchNoResult(t *testing.T) {
	_, ok, err := Match("abc", "xyz", 0)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if ok {
		t.Fatal("expected no match")
	}
}
