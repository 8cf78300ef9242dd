package machine

import (
	"strconv"

	"github.com/aretw0/duet/pkg/parse"
)

// Reg names a register ('a' to 'z').
type Reg byte

func (r Reg) String() string { return string(rune(r)) }

// Value is an instruction operand: either a register or a literal.
type Value struct {
	reg Reg
	lit int64
}

// R returns a register operand.
func R(r Reg) Value { return Value{reg: r} }

// L returns a literal operand.
func L(n int64) Value { return Value{lit: n} }

// IsRegister reports whether v names a register.
func (v Value) IsRegister() bool { return v.reg != 0 }

// Register returns the register named by v and whether v is a register.
func (v Value) Register() (Reg, bool) { return v.reg, v.reg != 0 }

// Literal returns the literal held by v and whether v is a literal.
func (v Value) Literal() (int64, bool) { return v.lit, v.reg == 0 }

func (v Value) String() string {
	if v.IsRegister() {
		return v.reg.String()
	}
	return strconv.FormatInt(v.lit, 10)
}

// RegisterOperand parses a register name.
func RegisterOperand() parse.Parser[Reg] {
	return parse.Map(parse.Register(), func(b byte) Reg { return Reg(b) })
}

// Operand parses a register name or a signed literal, in that order.
func Operand() parse.Parser[Value] {
	return parse.Alt(
		parse.Map(RegisterOperand(), R),
		parse.Map(parse.Int64(), L),
	)
}
