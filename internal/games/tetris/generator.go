package tetris

import "math/rand"

// bagGenerator deals pieces with the 7-bag system: every run of seven pieces
// contains each kind exactly once. Two generators built from the same seed
// produce identical sequences.
type bagGenerator struct {
	rng *rand.Rand
	bag []Kind
}

func newBagGenerator(seed int64) *bagGenerator {
	return &bagGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Next deals the next kind, refilling and shuffling the bag when it empties.
func (g *bagGenerator) Next() Kind {
	if len(g.bag) == 0 {
		g.refill()
	}
	k := g.bag[0]
	g.bag = g.bag[1:]
	return k
}

func (g *bagGenerator) refill() {
	g.bag = append(g.bag[:0], Kinds...)
	for i := len(g.bag) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
	}
}
