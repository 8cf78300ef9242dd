package solutions

import (
	"context"
	"fmt"

	"github.com/aretw0/duet/pkg/machine/duet"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Day18 recovers the first sound and counts how many values program 1
// sends before the pair deadlocks.
func Day18(ctx context.Context, input string) (puzzle.Answer, error) {
	prog := duet.Parse(input)
	if len(prog) == 0 {
		return puzzle.Answer{}, puzzle.ErrNoInput
	}

	m := duet.New(prog)
	v, ok := m.Recover()
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("%w: program halted before recovering", puzzle.ErrNoAnswer)
	}

	res, err := duet.RunConcurrent(ctx, prog)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1:      itoa(v),
		Part2:      itoa(res.Sent[1]),
		Executions: executions("duet", m.Counts()),
	}, nil
}
