package solutions

import (
	"context"

	"github.com/aretw0/duet/pkg/grammar/particle"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Day20 finds the particle that stays closest to the origin and counts
// the particles left once collisions are resolved.
func Day20(_ context.Context, input string) (puzzle.Answer, error) {
	ps, err := particle.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(ps) == 0 {
		return puzzle.Answer{}, puzzle.ErrNoInput
	}
	return puzzle.Answer{
		Part1: itoa(particle.Closest(ps)),
		Part2: itoa(particle.Survivors(ps, particle.DefaultHorizon)),
	}, nil
}
