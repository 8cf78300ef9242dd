// Package regcond parses and evaluates conditional register updates such
// as "b inc 5 if a > 1".
package regcond

import (
	"fmt"

	"github.com/aretw0/duet/pkg/parse"
)

// Action is the update applied when the condition holds.
type Action uint8

const (
	Inc Action = iota
	Dec
)

func (a Action) String() string {
	if a == Dec {
		return "dec"
	}
	return "inc"
}

// Operator compares a register against a literal.
type Operator uint8

const (
	GreaterOrEqual Operator = iota
	Greater
	LessOrEqual
	Less
	Equal
	NotEqual
)

var operatorTokens = [...]string{">=", ">", "<=", "<", "==", "!="}

func (o Operator) String() string {
	if int(o) < len(operatorTokens) {
		return operatorTokens[o]
	}
	return fmt.Sprintf("operator(%d)", uint8(o))
}

// Holds applies o to the two operands.
func (o Operator) Holds(left, right int64) bool {
	switch o {
	case GreaterOrEqual:
		return left >= right
	case Greater:
		return left > right
	case LessOrEqual:
		return left <= right
	case Less:
		return left < right
	case Equal:
		return left == right
	case NotEqual:
		return left != right
	}
	return false
}

// Cond is the guard of an instruction.
type Cond struct {
	Register string
	Operator Operator
	Value    int64
}

// Instruction is one decoded line.
type Instruction struct {
	Register string
	Action   Action
	Amount   int64
	Cond     Cond
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s %s %d if %s %s %d",
		in.Register, in.Action, in.Amount, in.Cond.Register, in.Cond.Operator, in.Cond.Value)
}

var (
	register = parse.Alpha1()
	action   = parse.Alt(parse.Value(Inc, parse.Tag("inc")), parse.Value(Dec, parse.Tag("dec")))
)

// operator tries two-character tokens before their one-character prefixes.
var operator = func() parse.Parser[Operator] {
	alts := make([]parse.Parser[Operator], len(operatorTokens))
	for i, tok := range operatorTokens {
		alts[i] = parse.Value(Operator(i), parse.Tag(tok))
	}
	return parse.Alt(alts...)
}()

var line parse.Parser[Instruction] = func(in parse.Input) (Instruction, parse.Input, error) {
	s := parse.Begin(in)
	var out Instruction
	out.Register = parse.Run(s, register)
	parse.Skip(s, parse.Space1())
	out.Action = parse.Run(s, action)
	parse.Skip(s, parse.Space1())
	out.Amount = parse.Run(s, parse.Int64())
	parse.Skip(s, parse.Tag(" if "))
	out.Cond.Register = parse.Run(s, register)
	parse.Skip(s, parse.Space1())
	out.Cond.Operator = parse.Run(s, operator)
	parse.Skip(s, parse.Space1())
	out.Cond.Value = parse.Run(s, parse.Int64())
	return parse.Finish(s, out)
}

// ParseLine decodes one instruction.
func ParseLine(text string) (Instruction, error) {
	return parse.Complete(line, text)
}

// Parse decodes a program in order, skipping lines that do not parse.
func Parse(input string) []Instruction {
	return parse.Lenient(line, input)
}
