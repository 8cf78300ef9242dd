package regcond

// Registers holds named register values. Missing registers read as zero.
type Registers map[string]int64

// Max returns the largest value currently held, or zero when empty.
func (r Registers) Max() int64 {
	var m int64
	first := true
	for _, v := range r {
		if first || v > m {
			m, first = v, false
		}
	}
	return m
}

// Apply executes in against regs and reports whether the condition held.
func Apply(regs Registers, in Instruction) bool {
	if !in.Cond.Operator.Holds(regs[in.Cond.Register], in.Cond.Value) {
		return false
	}
	if in.Action == Dec {
		regs[in.Register] -= in.Amount
	} else {
		regs[in.Register] += in.Amount
	}
	return true
}

// Result is the outcome of Eval.
type Result struct {
	Registers Registers
	// Final is the largest register value after the last instruction.
	Final int64
	// Peak is the largest value any register held at any point.
	Peak int64
}

// Eval runs the program from all-zero registers.
func Eval(prog []Instruction) Result {
	regs := make(Registers)
	var peak int64
	for _, in := range prog {
		if Apply(regs, in) && regs[in.Register] > peak {
			peak = regs[in.Register]
		}
	}
	return Result{Registers: regs, Final: regs.Max(), Peak: peak}
}
