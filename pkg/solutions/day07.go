package solutions

import (
	"context"
	"fmt"

	"github.com/aretw0/duet/pkg/grammar/tower"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Day07 names the bottom program and the weight that balances the tower.
func Day07(_ context.Context, input string) (puzzle.Answer, error) {
	t, err := tower.Build(tower.Parse(input))
	if err != nil {
		return puzzle.Answer{}, err
	}
	_, weight, ok := t.Rebalance()
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("%w: tower is balanced", puzzle.ErrNoAnswer)
	}
	return puzzle.Answer{Part1: t.Root().Name, Part2: itoa(weight)}, nil
}
