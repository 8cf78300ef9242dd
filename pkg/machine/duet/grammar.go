package duet

import (
	"github.com/aretw0/duet/pkg/machine"
	"github.com/aretw0/duet/pkg/parse"
)

// line tries the opcodes in a fixed order. Each keyword is matched with its
// trailing space so no keyword can shadow a later one.
var line = parse.Alt(
	unary("snd ", Snd),
	binary("set ", Set),
	binary("add ", Add),
	binary("mul ", Mul),
	binary("mod ", Mod),
	parse.Map(parse.Preceded(parse.Tag("rcv "), machine.RegisterOperand()), Rcv),
	jump(),
)

func unary(keyword string, build func(machine.Value) Instruction) parse.Parser[Instruction] {
	return parse.Map(parse.Preceded(parse.Tag(keyword), machine.Operand()), build)
}

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
		parse.Skip(s, parse.Tag("jgz "))
		x := parse.Run(s, machine.Operand())
		parse.Skip(s, parse.Space1())
		y := parse.Run(s, machine.Operand())
		return parse.Finish(s, Jgz(x, y))
	}
}

// ParseLine decodes a single instruction.
func ParseLine(text string) (Instruction, error) {
	return parse.Complete(line, text)
}

// Parse decodes a program, silently skipping lines that are not
// instructions.
func Parse(input string) []Instruction {
	return parse.Lenient(line, input)
}

// ParseStrict decodes a program and fails on the first malformed line.
func ParseStrict(input string) ([]Instruction, error) {
	return parse.Strict(line, input)
}
