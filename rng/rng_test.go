package rng

import "testing"

func Test_deterministic_for_same_seed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequence diverged at step %d", i)
		}
	}
}

func Test_zero_seed_is_remapped(t *testing.T) {
	s := New(0)
	if s.state == 0 {
		t.Fatal("zero seed left state at zero")
	}
}

func Test_Intn_stays_in_range(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d out of range", v)
		}
	}
}

func Test_Range_stays_in_bounds(t *testing.T) {
	s := New(123)
	for i := 0; i < 1000; i++ {
		v := s.Range(-3, 3)
		if v < -3 || v > 3 {
			t.Fatalf("Range(-3,3) = %d out of bounds", v)
		}
	}
}

func Test_different_seeds_diverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to diverge within 10 steps")
	}
}
