package duet

import "github.com/aretw0/duet/pkg/machine"

// Machine executes a program with the single-slot snd/rcv semantics.
// The program is shared and never modified; registers belong to the machine.
type Machine struct {
	prog     []Instruction
	bank     *machine.Bank
	pc       int
	lastSent int64
	sent     bool
	counts   [numOps]int
}

// New creates a machine at the first instruction with every register zero.
func New(prog []Instruction) *Machine {
	return &Machine{prog: prog, bank: machine.NewBank()}
}

// Bank exposes the register bank, e.g. to seed registers before running.
func (m *Machine) Bank() *machine.Bank { return m.bank }

// PC returns the instruction pointer.
func (m *Machine) PC() int { return m.pc }

// Halted reports whether the instruction pointer has left the program.
func (m *Machine) Halted() bool { return !machine.InRange(m.pc, len(m.prog)) }

// LastSent returns the most recent value sent and whether anything was sent.
func (m *Machine) LastSent() (int64, bool) { return m.lastSent, m.sent }

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

// current returns the instruction at the pointer.
func (m *Machine) current() (Instruction, bool) {
	if m.Halted() {
		return Instruction{}, false
	}
	return m.prog[m.pc], true
}

// Step executes one instruction and returns it. It returns false once the
// machine has halted.
func (m *Machine) Step() (Instruction, bool) {
	in, ok := m.current()
	if !ok {
		return in, false
	}
	switch in.Op {
	case OpSnd:
		m.lastSent, m.sent = m.bank.Eval(in.X), true
		m.pc++
	case OpRcv:
		if m.sent {
			m.bank.Set(in.Reg, m.lastSent)
		}
		m.pc++
	default:
		m.exec(in)
	}
	m.counts[in.Op]++
	return in, true
}

// exec runs the opcodes whose meaning does not depend on the snd/rcv model
// and advances the pointer.
func (m *Machine) exec(in Instruction) {
	b := m.bank
	switch in.Op {
	case OpSet:
		b.Set(in.Reg, b.Eval(in.X))
	case OpAdd:
		b.Set(in.Reg, b.Get(in.Reg)+b.Eval(in.X))
	case OpMul:
		b.Set(in.Reg, b.Get(in.Reg)*b.Eval(in.X))
	case OpMod:
		// Modulo by zero leaves the register untouched.
		if d := b.Eval(in.X); d != 0 {
			b.Set(in.Reg, b.Get(in.Reg)%d)
		}
	case OpJgz:
		if b.Eval(in.X) > 0 {
			m.pc = machine.Jump(m.pc, b.Eval(in.Y))
			return
		}
	}
	m.pc++
}

// Recover runs until a rcv executes after some value has been sent and
// returns that value. It returns false if the program halts first.
func (m *Machine) Recover() (int64, bool) {
	for {
		in, ok := m.Step()
		if !ok {
			return 0, false
		}
		if in.Op == OpRcv && m.sent {
			return m.lastSent, true
		}
	}
}

// Recover runs prog on a fresh machine; see Machine.Recover.
func Recover(prog []Instruction) (int64, bool) {
	return New(prog).Recover()
}

// Status is the scheduling state of a machine after a step.
type Status uint8

const (
	Running Status = iota
	Blocked
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	default:
		return "halted"
	}
}

// transfer executes one instruction with queued snd/rcv semantics. A rcv
// for which receive has no value leaves the pointer on the rcv and reports
// Blocked, so the machine resumes at that exact instruction.
func (m *Machine) transfer(send func(int64), receive func() (int64, bool)) Status {
	in, ok := m.current()
	if !ok {
		return Halted
	}
	switch in.Op {
	case OpSnd:
		send(m.bank.Eval(in.X))
		m.pc++
	case OpRcv:
		v, ok := receive()
		if !ok {
			return Blocked
		}
		m.bank.Set(in.Reg, v)
		m.pc++
	default:
		m.exec(in)
	}
	m.counts[in.Op]++
	return Running
}
