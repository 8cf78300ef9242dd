/*
Package parse provides the small parser-combinator toolkit shared by every
grammar in this module.

A Parser consumes an immutable Input cursor and returns either a value plus
the remaining input, or an *Error. Parsers are all-or-nothing: on failure
the returned Input is the one they were given, so alternatives can be tried
without rewinding by hand.

# Building grammars

Primitives (Int64, Register, Tag, Space1...) are composed with combinators
(Alt, Map, SeparatedList, Delimited...). Record-shaped rules that need more
than two fields use a Seq, which threads the cursor and keeps the first
error:

	func link(in parse.Input) (Link, parse.Input, error) {
		s := parse.Begin(in)
		id := parse.Run(s, parse.Uint32())
		parse.Skip(s, parse.Tag(" <-> "))
		peers := parse.Run(s, parse.SeparatedList(parse.Tag(", "), parse.Uint32()))
		return parse.Finish(s, Link{ID: id, Peers: peers})
	}

# Line policies

Multi-line inputs are parsed line by line. Lines returns every outcome and
leaves the decision to the caller; Lenient drops the lines that failed and
Strict aborts on the first one.
*/
package parse
