package solutions

import (
	"context"

	"github.com/aretw0/duet/pkg/grammar/pipes"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Day12 sizes the group containing program 0 and counts all groups.
func Day12(_ context.Context, input string) (puzzle.Answer, error) {
	graph := pipes.Parse(input)
	if len(graph) == 0 {
		return puzzle.Answer{}, puzzle.ErrNoInput
	}
	return puzzle.Answer{
		Part1: itoa(len(pipes.Group(graph, 0))),
		Part2: itoa(pipes.Groups(graph)),
	}, nil
}
