package solutions

import (
	"context"

	"github.com/aretw0/duet/pkg/grammar/regcond"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Day08 reports the largest register after the program and the largest
// value held at any time.
func Day08(_ context.Context, input string) (puzzle.Answer, error) {
	prog := regcond.Parse(input)
	if len(prog) == 0 {
		return puzzle.Answer{}, puzzle.ErrNoInput
	}
	res := regcond.Eval(prog)
	return puzzle.Answer{Part1: itoa(res.Final), Part2: itoa(res.Peak)}, nil
}
