package particle

import (
	"cmp"
	"slices"
)

// DefaultHorizon is how many ticks Survivors simulates by default.
const DefaultHorizon = 1000

// Closest returns the index of the particle that stays closest to the
// origin in the long run: smallest acceleration, then velocity, then
// position, by Manhattan length. It returns -1 for no particles.
func Closest(ps []Particle) int {
	if len(ps) == 0 {
		return -1
	}
	idx := make([]int, len(ps))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int {
		a, b := ps[i], ps[j]
		return cmp.Or(
			cmp.Compare(a.A.Manhattan(), b.A.Manhattan()),
			cmp.Compare(a.V.Manhattan(), b.V.Manhattan()),
			cmp.Compare(a.P.Manhattan(), b.P.Manhattan()),
		)
	})
	return idx[0]
}

// Survivors removes every group of particles that share a position at the
// same tick and returns how many are left after horizon ticks.
func Survivors(ps []Particle, horizon int) int {
	alive := slices.Clone(ps)
	for t := int64(0); t <= int64(horizon); t++ {
		at := make(map[Vec3]int, len(alive))
		for _, p := range alive {
			at[p.PositionAt(t)]++
		}
		alive = slices.DeleteFunc(alive, func(p Particle) bool {
			return at[p.PositionAt(t)] > 1
		})
	}
	return len(alive)
}
