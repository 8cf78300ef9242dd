package duet

import (
	"fmt"

	"github.com/aretw0/duet/pkg/machine"
)

// Op identifies an instruction.
type Op uint8

const (
	OpSnd Op = iota
	OpSet
	OpAdd
	OpMul
	OpMod
	OpRcv
	OpJgz
	numOps
)

var opNames = [numOps]string{"snd", "set", "add", "mul", "mod", "rcv", "jgz"}

func (o Op) String() string {
	if o < numOps {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Instruction is one decoded line of a program. Reg is the target of
// set/add/mul/mod/rcv; X is the source operand (or the snd operand, or the
// jgz condition); Y is the jgz offset.
type Instruction struct {
	Op  Op
	Reg machine.Reg
	X   machine.Value
	Y   machine.Value
}

// Snd builds "snd x".
func Snd(x machine.Value) Instruction { return Instruction{Op: OpSnd, X: x} }

// Set builds "set r x".
func Set(r machine.Reg, x machine.Value) Instruction { return Instruction{Op: OpSet, Reg: r, X: x} }

// Add builds "add r x".
func Add(r machine.Reg, x machine.Value) Instruction { return Instruction{Op: OpAdd, Reg: r, X: x} }

// Mul builds "mul r x".
func Mul(r machine.Reg, x machine.Value) Instruction { return Instruction{Op: OpMul, Reg: r, X: x} }

// Mod builds "mod r x".
func Mod(r machine.Reg, x machine.Value) Instruction { return Instruction{Op: OpMod, Reg: r, X: x} }

// Rcv builds "rcv r".
func Rcv(r machine.Reg) Instruction { return Instruction{Op: OpRcv, Reg: r} }

// Jgz builds "jgz x y".
func Jgz(x, y machine.Value) Instruction { return Instruction{Op: OpJgz, X: x, Y: y} }

// String renders the instruction in its source syntax.
func (in Instruction) String() string {
	switch in.Op {
	case OpSnd:
		return fmt.Sprintf("snd %s", in.X)
	case OpRcv:
		return fmt.Sprintf("rcv %s", in.Reg)
	case OpJgz:
		return fmt.Sprintf("jgz %s %s", in.X, in.Y)
	default:
		return fmt.Sprintf("%s %s %s", in.Op, in.Reg, in.X)
	}
}
