package words

import (
	"context"
	"math/rand/v2"
)

// Picker selects secret words uniformly at random. Each Picker owns its
// generator so selection can be made reproducible with a fixed seed.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker seeded with seed. A zero seed draws a fresh
// seed from the runtime's generator.
func NewPicker(seed uint64) *Picker {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns one entry of list.
func (p *Picker) Pick(list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrEmpty
	}
	return list[p.rng.IntN(len(list))], nil
}

// Choose loads the full list from src and picks one word from it.
func Choose(ctx context.Context, src Source, p *Picker) (string, error) {
	list, err := src.Load(ctx)
	if err != nil {
		return "", err
	}
	return p.Pick(list)
}
