package snake

import "math/rand"

// FoodPlacer picks food cells uniformly at random from the grid.
type FoodPlacer struct {
	rng *rand.Rand
}

// NewFoodPlacer creates a placer drawing from rng.
func NewFoodPlacer(rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{rng: rng}
}

// Spawn returns a random grid cell not in occupied, resampling until one is
// found. occupied must not cover the whole grid.
func (p *FoodPlacer) Spawn(occupied CellSet) Cell {
	for {
		c := Cell{X: p.rng.Intn(GridWidth), Y: p.rng.Intn(GridHeight)}
		if !occupied.Has(c) {
			return c
		}
	}
}
