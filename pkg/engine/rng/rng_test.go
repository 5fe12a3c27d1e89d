package rng

import (
	"math"
	"testing"
)

func TestIntRange_Inclusive(t *testing.T) {
	r := New(7)
	seenMin, seenMax := false, false
	for i := 0; i < 2000; i++ {
		v := IntRange(r, 3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("IntRange(3, 7) = %d, want value in [3,7]", v)
		}
		seenMin = seenMin || v == 3
		seenMax = seenMax || v == 7
	}
	if !seenMin || !seenMax {
		t.Errorf("IntRange(3, 7) never produced an endpoint (min=%v max=%v)", seenMin, seenMax)
	}
	if got := IntRange(r, 5, 5); got != 5 {
		t.Errorf("IntRange(5, 5) = %d, want 5", got)
	}
	if got := IntRange(r, 9, 2); got != 9 {
		t.Errorf("IntRange(9, 2) = %d, want 9", got)
	}
}

func TestFloatRange_HalfOpen(t *testing.T) {
	r := New(11)
	for i := 0; i < 1000; i++ {
		if v := FloatRange(r, -0.5, 0.5); v < -0.5 || v >= 0.5 {
			t.Fatalf("FloatRange(-0.5, 0.5) = %v, want value in [-0.5,0.5)", v)
		}
	}
	if got := FloatRange(r, 2, 2); got != 2 {
		t.Errorf("FloatRange(2, 2) = %v, want 2", got)
	}
}

func TestUnitVector_Length(t *testing.T) {
	r := New(3)
	for i := 0; i < 100; i++ {
		if l := UnitVector(r).Len(); math.Abs(l-1) > 1e-9 {
			t.Fatalf("UnitVector().Len() = %v, want 1", l)
		}
	}
}

func TestSampleUntil(t *testing.T) {
	calls := 0
	v, ok := SampleUntil(10, func() (int, bool) {
		calls++
		return calls, calls == 4
	})
	if !ok || v != 4 {
		t.Errorf("SampleUntil = (%d, %v), want (4, true)", v, ok)
	}

	calls = 0
	v, ok = SampleUntil(5, func() (int, bool) {
		calls++
		return calls, false
	})
	if ok || v != 0 {
		t.Errorf("SampleUntil exhausted = (%d, %v), want (0, false)", v, ok)
	}
	if calls != 5 {
		t.Errorf("SampleUntil made %d calls, want 5", calls)
	}
}

func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("sequence diverged at %d: %d != %d", i, x, y)
		}
	}
}
