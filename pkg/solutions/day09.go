package solutions

import (
	"context"
	"fmt"

	"github.com/aretw0/duet/pkg/grammar/stream"
	"github.com/aretw0/duet/pkg/puzzle"
)

// Day09 scores the stream's groups and counts its garbage.
func Day09(_ context.Context, input string) (puzzle.Answer, error) {
	c, err := stream.Parse(input)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("parse stream: %w", err)
	}
	return puzzle.Answer{Part1: itoa(stream.Score(c)), Part2: itoa(stream.GarbageCount(c))}, nil
}
