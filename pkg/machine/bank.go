package machine

import "maps"

// Bank maps register names to values. Registers that were never written
// read as zero.
type Bank struct {
	regs map[Reg]int64
}

// NewBank returns an empty bank.
func NewBank() *Bank {
	return &Bank{regs: make(map[Reg]int64)}
}

// Get returns the value of r, or zero if r was never written.
func (b *Bank) Get(r Reg) int64 {
	return b.regs[r]
}

// Set stores n in r.
func (b *Bank) Set(r Reg, n int64) {
	b.regs[r] = n
}

// Eval resolves an operand against the bank.
func (b *Bank) Eval(v Value) int64 {
	if r, ok := v.Register(); ok {
		return b.Get(r)
	}
	n, _ := v.Literal()
	return n
}

// Snapshot returns a copy of the registers written so far.
func (b *Bank) Snapshot() map[Reg]int64 {
	return maps.Clone(b.regs)
}
