package coproc

import "github.com/aretw0/duet/pkg/machine"

// Machine executes a coprocessor program.
type Machine struct {
	prog   []Instruction
	bank   *machine.Bank
	pc     int
	counts [numOps]int
}

// New creates a machine at the first instruction with every register zero.
func New(prog []Instruction) *Machine {
	return &Machine{prog: prog, bank: machine.NewBank()}
}

// Bank exposes the register bank.
func (m *Machine) Bank() *machine.Bank { return m.bank }

// PC returns the instruction pointer.
func (m *Machine) PC() int { return m.pc }

// Halted reports whether the instruction pointer has left the program.
func (m *Machine) Halted() bool { return !machine.InRange(m.pc, len(m.prog)) }

// Step executes one instruction. It returns false once the machine has halted.
func (m *Machine) Step() bool {
	if m.Halted() {
		return false
	}
	in := m.prog[m.pc]
	b := m.bank
	m.counts[in.Op]++
	switch in.Op {
	case OpSet:
		b.Set(in.Reg, b.Eval(in.X))
	case OpSub:
		b.Set(in.Reg, b.Get(in.Reg)-b.Eval(in.X))
	case OpMul:
		b.Set(in.Reg, b.Get(in.Reg)*b.Eval(in.X))
	case OpJnz:
		if b.Eval(in.X) != 0 {
			m.pc = machine.Jump(m.pc, b.Eval(in.Y))
			return true
		}
	}
	m.pc++
	return true
}

// Run executes until the program halts. There is no step limit: a program
// that never leaves its bounds never returns.
func (m *Machine) Run() {
	for m.Step() {
	}
}

// Multiplications returns how many mul instructions have executed.
func (m *Machine) Multiplications() int {
	return m.counts[OpMul]
}

// Counts returns how many times each opcode has executed.
func (m *Machine) Counts() map[Op]int {
	counts := make(map[Op]int, numOps)
	for op, n := range m.counts {
		if n > 0 {
			counts[Op(op)] = n
		}
	}
	return counts
}

// Register reads a register's current value.
func (m *Machine) Register(r machine.Reg) int64 {
	return m.bank.Get(r)
}
