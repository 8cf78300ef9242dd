package coproc

import (
	"errors"
	"fmt"
)

const (
	setupLen    = 8
	defaultStep = 17
)

// ErrNoLoop is returned when a program does not have the expected setup
// prefix followed by the outer counting loop.
var ErrNoLoop = errors.New("coproc: program has no recognizable outer loop")

// Bounds describes the outer loop of the debug-flag program: b runs from
// From to To inclusive, advancing by Step.
type Bounds struct {
	From int64
	To   int64
	Step int64
}

// Analyze runs the setup prefix with a=1 and reads the loop bounds out of
// registers b and c. The step is the literal of the last "sub b -N".
func Analyze(prog []Instruction) (Bounds, error) {
	if len(prog) < setupLen {
		return Bounds{}, fmt.Errorf("%w: %d instructions", ErrNoLoop, len(prog))
	}
	m := New(prog[:setupLen])
	m.Bank().Set('a', 1)
	m.Run()

	b := Bounds{From: m.Register('b'), To: m.Register('c'), Step: defaultStep}
	for i := len(prog) - 1; i >= setupLen; i-- {
		in := prog[i]
		if in.Op != OpSub || in.Reg != 'b' {
			continue
		}
		if n, ok := in.X.Literal(); ok && n < 0 {
			b.Step = -n
			break
		}
	}
	if b.To < b.From {
		return Bounds{}, fmt.Errorf("%w: b=%d c=%d", ErrNoLoop, b.From, b.To)
	}
	return b, nil
}

// CountComposites returns how many of from, from+step, ..., to are
// composite. Values below 4 are never composite.
func CountComposites(from, to, step int64) int {
	if step <= 0 {
		step = 1
	}
	count := 0
	for n := from; n <= to; n += step {
		if composite(n) {
			count++
		}
	}
	return count
}

func composite(n int64) bool {
	if n < 4 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return true
		}
	}
	return false
}
