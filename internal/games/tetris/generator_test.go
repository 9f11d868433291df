package tetris

import "testing"

func TestBagDealsEveryKindPerSeven(t *testing.T) {
	g := newBagGenerator(7)

	for bag := 0; bag < 5; bag++ {
		seen := make(map[Kind]bool, 7)
		for i := 0; i < 7; i++ {
			seen[g.Next()] = true
		}
		if len(seen) != 7 {
			t.Fatalf("bag %d dealt %d distinct kinds, want 7", bag, len(seen))
		}
	}
}

func TestBagDeterministicForSeed(t *testing.T) {
	a := newBagGenerator(12345)
	b := newBagGenerator(12345)

	for i := 0; i < 50; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d diverged: %v vs %v", i, ka, kb)
		}
	}
}
