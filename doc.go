/*
Package duet solves a set of line-oriented puzzles with a small
parser-combinator front end and two register-machine interpreters.

# Concept

Raw text flows one way: primitives in package parse are composed into a
grammar per input format (pkg/grammar/...), the grammar yields typed
records, and an interpreter or solver turns them into an Answer. The duet
machine (pkg/machine/duet) runs alone with a single-slot "sound" or as two
actors exchanging values until they deadlock; the coprocessor machine
(pkg/machine/coproc) counts the multiplications it executes.

# Usage

	eng, err := duet.New(duet.WithInputs("resources"))
	if err != nil {
		log.Fatal(err)
	}
	ans, err := eng.Solve(context.Background(), 18)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ans.Part1, ans.Part2)

Inputs are looked up as <inputs>/dayNN.txt unless duet.yaml says
otherwise. Metrics are opt-in through WithMetrics.
*/
package duet
