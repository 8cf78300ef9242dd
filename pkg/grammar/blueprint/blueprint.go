// Package blueprint parses Turing machine blueprints:
//
//	Begin in state A.
//	Perform a diagnostic checksum after 6 steps.
//
//	In state A:
//	  If the current value is 0:
//	    - Write the value 1.
//	    - Move one slot to the right.
//	    - Continue with state B.
//	  If the current value is 1:
//	    ...
//
// Whitespace between phrases is insignificant. The document either parses
// as a whole or not at all.
package blueprint

import "github.com/aretw0/duet/pkg/parse"

// Blueprint is a decoded document.
type Blueprint struct {
	Start  byte
	Steps  uint64
	States []State
}

// State returns the state called name.
func (b Blueprint) State(name byte) (State, bool) {
	for _, s := range b.States {
		if s.Name == name {
			return s, true
		}
	}
	return State{}, false
}

// State holds the two branches taken on the current tape value.
type State struct {
	Name     byte
	Branches [2]Branch
}

// Branch is what to do when the current value equals When.
type Branch struct {
	When  uint8
	Write uint8
	Move  int // -1 left, +1 right
	Next  byte
}

var (
	name  = parse.Satisfy("state name", func(b byte) bool { return b >= 'A' && b <= 'Z' })
	digit = parse.Alt(parse.Value(uint8(0), parse.Char('0')), parse.Value(uint8(1), parse.Char('1')))
	move  = parse.Alt(parse.Value(-1, parse.Tag("left")), parse.Value(1, parse.Tag("right")))
)

// phrase matches p between a literal prefix and suffix, after any
// whitespace.
func phrase[T any](prefix string, p parse.Parser[T], suffix string) parse.Parser[T] {
	return parse.Preceded(parse.Multispace0(),
		parse.Delimited(parse.Tag(prefix), p, parse.Tag(suffix)))
}

var branch parse.Parser[Branch] = func(in parse.Input) (Branch, parse.Input, error) {
	s := parse.Begin(in)
	var b Branch
	b.When = parse.Run(s, phrase("If the current value is ", digit, ":"))
	b.Write = parse.Run(s, phrase("- Write the value ", digit, "."))
	b.Move = parse.Run(s, phrase("- Move one slot to the ", move, "."))
	b.Next = parse.Run(s, phrase("- Continue with state ", name, "."))
	return parse.Finish(s, b)
}

var state parse.Parser[State] = func(in parse.Input) (State, parse.Input, error) {
	s := parse.Begin(in)
	var st State
	st.Name = parse.Run(s, phrase("In state ", name, ":"))
	st.Branches[0] = parse.Run(s, branch)
	st.Branches[1] = parse.Run(s, branch)
	return parse.Finish(s, st)
}

var document parse.Parser[Blueprint] = func(in parse.Input) (Blueprint, parse.Input, error) {
	s := parse.Begin(in)
	var b Blueprint
	b.Start = parse.Run(s, phrase("Begin in state ", name, "."))
	b.Steps = parse.Run(s, phrase("Perform a diagnostic checksum after ", parse.Uint64(), " steps."))
	b.States = parse.Run(s, parse.Many1(state))
	parse.Skip(s, parse.Multispace0())
	return parse.Finish(s, b)
}

// Parse decodes a whole blueprint.
func Parse(input string) (Blueprint, error) {
	return parse.Complete(document, input)
}
