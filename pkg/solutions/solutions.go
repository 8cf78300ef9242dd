// Package solutions wires the grammars and machines into puzzle solvers.
package solutions

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/aretw0/duet/pkg/registry"
)

// All lists every solver by day.
var All = map[puzzle.Day]puzzle.Solver{
	7:  Day07,
	8:  Day08,
	9:  Day09,
	12: Day12,
	18: Day18,
	20: Day20,
	23: Day23,
}

// Register adds every solver to reg.
func Register(reg *registry.Registry) {
	for day, fn := range All {
		reg.Register(day, fn)
	}
}

func itoa[T ~int | ~int64 | ~uint32](n T) string {
	return strconv.FormatInt(int64(n), 10)
}

// executions flattens per-opcode counters into a stable, sorted list.
func executions[O interface {
	comparable
	fmt.Stringer
}](machineName string, counts map[O]int) []puzzle.Execution {
	out := make([]puzzle.Execution, 0, len(counts))
	for op, n := range counts {
		out = append(out, puzzle.Execution{Machine: machineName, Opcode: op.String(), Count: n})
	}
	slices.SortFunc(out, func(a, b puzzle.Execution) int {
		return cmp.Compare(a.Opcode, b.Opcode)
	})
	return out
}
