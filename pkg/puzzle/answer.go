package puzzle

import (
	"context"
	"time"
)

// Execution counts how many times a machine executed one opcode.
type Execution struct {
	Machine string `json:"machine"`
	Opcode  string `json:"opcode"`
	Count   int    `json:"count"`
}

// Answer is what a solver returns for one input.
type Answer struct {
	Day        Day           `json:"day"`
	Part1      string        `json:"part1"`
	Part2      string        `json:"part2,omitempty"`
	Duration   time.Duration `json:"duration"`
	Executions []Execution   `json:"executions,omitempty"`
}

// Solver computes both parts of a day from its raw input.
type Solver func(ctx context.Context, input string) (Answer, error)
