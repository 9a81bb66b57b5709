package random

import "testing"

func TestFixedCycles(t *testing.T) {
	f := NewFixed(0.1, 0.5)
	if f.Float64() != 0.1 || f.Float64() != 0.5 || f.Float64() != 0.1 {
		t.Fatalf("expected values to cycle")
	}
}

func TestFixedIntnBounds(t *testing.T) {
	f := NewFixed(0, 0.999999, 0.5)
	if got := f.Intn(10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := f.Intn(10); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := f.Intn(10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := f.Intn(0); got != 0 {
		t.Fatalf("expected 0 for empty range, got %d", got)
	}
}

func TestBetweenInclusive(t *testing.T) {
	f := NewFixed(0, 0.9999)
	if got := Between(f, 1000, 5000); got != 1000 {
		t.Fatalf("expected lower bound, got %d", got)
	}
	if got := Between(f, 1000, 5000); got != 5000 {
		t.Fatalf("expected upper bound, got %d", got)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5}
	Shuffle(New(7), len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	seen := map[int]bool{}
	for _, v := range items {
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected permutation, got %v", items)
	}
}

func TestPickEmpty(t *testing.T) {
	if got := Pick[string](New(1), nil); got != "" {
		t.Fatalf("expected zero value, got %q", got)
	}
}
