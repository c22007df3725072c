package utils

import "testing"

func TestPRNGServiceIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestChanceBounds(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if s.Chance(0) {
			t.Fatalf("Chance(0) returned true")
		}
		if !s.Chance(1) {
			t.Fatalf("Chance(1) returned false")
		}
	}
}

func TestClampAndRound(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Clamp(30, 0, 10); got != 10 {
		t.Fatalf("Clamp high = %v", got)
	}
	if got := RoundMs(1000 - 1000*0.08); got != 920 {
		t.Fatalf("RoundMs = %d, want 920", got)
	}
	if got := RoundMs(846.4); got != 846 {
		t.Fatalf("RoundMs = %d, want 846", got)
	}
}
