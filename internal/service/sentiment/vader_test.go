package sentiment

import "testing"

func TestDisabledAnalyzer(t *testing.T) {
	a := New(false)
	if a.Available() {
		t.Fatal("expected disabled analyzer to be unavailable")
	}
}

func TestScorePolarity(t *testing.T) {
	a := New(true)
	if !a.Available() {
		t.Fatal("expected analyzer to be available")
	}

	pos := a.Score("Company reports great earnings, stock soars")
	if pos <= 0 {
		t.Fatalf("expected positive compound, got %v", pos)
	}

	neg := a.Score("Company misses badly, stock crashes in terrible selloff")
	if neg >= 0 {
		t.Fatalf("expected negative compound, got %v", neg)
	}
}
