package coproc

import (
	"github.com/aretw0/duet/pkg/machine"
	"github.com/aretw0/duet/pkg/parse"
)

var line = parse.Alt(
	binary("set ", Set),
	binary("sub ", Sub),
	binary("mul ", Mul),
	jump(),
)

func binary(keyword string, build func(machine.Reg, machine.Value) Instruction) parse.Parser[Instruction] {
	return func(in parse.Input) (Instruction, parse.Input, error) {
		s := parse.Begin(in)
		parse.Skip(s, parse.Tag(keyword))
		r := parse.Run(s, machine.RegisterOperand())
		parse.Skip(s, parse.Space1())
		x := parse.Run(s, machine.Operand())
		return parse.Finish(s, build(r, x))
	}
}

func jump() parse.Parser[Instruction] {
	return func(in parse.Input) (Instruction, parse.Input, error) {
		s := parse.Begin(in)
		parse.Skip(s, parse.Tag("jnz "))
		x := parse.Run(s, machine.Operand())
		parse.Skip(s, parse.Space1())
		y := parse.Run(s, machine.Operand())
		return parse.Finish(s, Jnz(x, y))
	}
}

// ParseLine decodes a single instruction.
func ParseLine(text string) (Instruction, error) {
	return parse.Complete(line, text)
}

// Parse decodes a whole program. Any malformed line fails the parse.
func Parse(input string) ([]Instruction, error) {
	return parse.Strict(line, input)
}
