package idgen

import "testing"

func TestNextIsSequentialAndUnique(t *testing.T) {
	g := New()
	seen := make(map[int]bool)

	for i := 1; i <= 100; i++ {
		id := g.Next()
		if id != i {
			t.Fatalf("expected id %d, got %d", i, id)
		}
		if seen[id] {
			t.Fatalf("id %d issued twice", id)
		}
		seen[id] = true
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	g := New()
	if got := g.Peek(); got != 1 {
		t.Errorf("Peek() = %d, want 1", got)
	}
	if got := g.Next(); got != 1 {
		t.Errorf("Next() after Peek = %d, want 1", got)
	}
	if got := g.Peek(); got != 2 {
		t.Errorf("Peek() = %d, want 2", got)
	}
}
