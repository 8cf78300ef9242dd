package coproc

import (
	"fmt"

	"github.com/aretw0/duet/pkg/machine"
)

// Op identifies an instruction.
type Op uint8

const (
	OpSet Op = iota
	OpSub
	OpMul
	OpJnz
	numOps
)

var opNames = [numOps]string{"set", "sub", "mul", "jnz"}

func (o Op) String() string {
	if o < numOps {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Instruction is one decoded line. Reg is the target of set/sub/mul, X the
// source operand or the jnz condition, Y the jnz offset.
type Instruction struct {
	Op  Op
	Reg machine.Reg
	X   machine.Value
	Y   machine.Value
}

func Set(r machine.Reg, x machine.Value) Instruction { return Instruction{Op: OpSet, Reg: r, X: x} }
func Sub(r machine.Reg, x machine.Value) Instruction { return Instruction{Op: OpSub, Reg: r, X: x} }
func Mul(r machine.Reg, x machine.Value) Instruction { return Instruction{Op: OpMul, Reg: r, X: x} }
func Jnz(x, y machine.Value) Instruction             { return Instruction{Op: OpJnz, X: x, Y: y} }

func (in Instruction) String() string {
	if in.Op == OpJnz {
		return fmt.Sprintf("jnz %s %s", in.X, in.Y)
	}
	return fmt.Sprintf("%s %s %s", in.Op, in.Reg, in.X)
}
