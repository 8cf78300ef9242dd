package solutions

import (
	"context"

	"github.com/aretw0/duet/pkg/machine/coproc"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Day23 counts multiplications with the debug flag off and computes the
// final value of h with it on, without executing the slow loop.
func Day23(_ context.Context, input string) (puzzle.Answer, error) {
	prog, err := coproc.Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(prog) == 0 {
		return puzzle.Answer{}, puzzle.ErrNoInput
	}

	m := coproc.New(prog)
	m.Run()

	b, err := coproc.Analyze(prog)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{
		Part1:      itoa(m.Multiplications()),
		Part2:      itoa(coproc.CountComposites(b.From, b.To, b.Step)),
		Executions: executions("coproc", m.Counts()),
	}, nil
}
