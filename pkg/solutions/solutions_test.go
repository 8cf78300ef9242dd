package solutions_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/aretw0/duet/pkg/machine/coproc"
	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/aretw0/duet/pkg/registry"
	"github.com/aretw0/duet/pkg/solutions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coprocProgram = `set b 57
set c b
jnz a 2
jnz 1 5
mul b 100
sub b -100000
set c b
sub c -17000
set f 1
set d 2
set e 2
set g d
mul g e
sub g b
jnz g 2
set f 0
sub e -1
set g e
sub g b
jnz g -8
sub d -1
set g d
sub g b
jnz g -13
jnz f 2
sub h -1
set g b
sub g c
jnz g 2
jnz 1 3
sub b -17
jnz 1 -23
`

func TestSolvers_Samples(t *testing.T) {
	tests := []struct {
		name   string
		solver puzzle.Solver
		input  string
		part1  string
		part2  string
	}{
		{
			name:   "tower",
			solver: solutions.Day07,
			input: "pbga (66)\nxhth (57)\nebii (61)\nhavc (66)\nktlj (57)\nfwft (72) -> ktlj, cntj, xhth\n" +
				"qoyq (66)\npadx (45) -> pbga, havc, qoyq\ntknk (41) -> ugml, padx, fwft\njptl (61)\n" +
				"ugml (68) -> gyxo, ebii, jptl\ngyxo (61)\ncntj (57)\n",
			part1: "tknk",
			part2: "60",
		},
		{
			name:   "registers",
			solver: solutions.Day08,
			input:  "b inc 5 if a > 1\na inc 1 if b < 5\nc dec -10 if a >= 1\nc inc -20 if c == 10\n",
			part1:  "1",
			part2:  "10",
		},
		{
			name:   "stream",
			solver: solutions.Day09,
			input:  "{{<ab>},{<ab>},{<ab>},{<ab>}}\n",
			part1:  "9",
			part2:  "8",
		},
		{
			name:   "pipes",
			solver: solutions.Day12,
			input:  "0 <-> 2\n1 <-> 1\n2 <-> 0, 3, 4\n3 <-> 2, 4\n4 <-> 2, 3, 6\n5 <-> 6\n6 <-> 4, 5\n",
			part1:  "6",
			part2:  "2",
		},
		{
			name:   "duet recover",
			solver: solutions.Day18,
			input:  "set a 1\nadd a 2\nmul a a\nmod a 5\nsnd a\nset a 0\nrcv a\njgz a -1\nset a 1\njgz a -2\n",
			part1:  "4",
			part2:  "1",
		},
		{
			name:   "duet pair",
			solver: solutions.Day18,
			input:  "snd 1\nsnd 2\nsnd p\nrcv a\nrcv b\nrcv c\nrcv d\n",
			part1:  "0",
			part2:  "3",
		},
		{
			name:   "particles",
			solver: solutions.Day20,
			input:  "p=<3,0,0>, v=<2,0,0>, a=<-1,0,0>\np=<4,0,0>, v=<0,0,0>, a=<-2,0,0>\n",
			part1:  "0",
			part2:  "2",
		},
		{
			name:   "coprocessor",
			solver: solutions.Day23,
			input:  coprocProgram,
			part1:  "3025",
			part2:  strconv.Itoa(coproc.CountComposites(105700, 122700, 17)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ans, err := tt.solver(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.part1, ans.Part1)
			assert.Equal(t, tt.part2, ans.Part2)
		})
	}
}

func TestDay18_Executions(t *testing.T) {
	ans, err := solutions.Day18(context.Background(),
		"set a 1\nadd a 2\nmul a a\nmod a 5\nsnd a\nset a 0\nrcv a\njgz a -1\nset a 1\njgz a -2")
	require.NoError(t, err)
	assert.Equal(t, []puzzle.Execution{
		{Machine: "duet", Opcode: "add", Count: 1},
		{Machine: "duet", Opcode: "mod", Count: 1},
		{Machine: "duet", Opcode: "mul", Count: 1},
		{Machine: "duet", Opcode: "rcv", Count: 1},
		{Machine: "duet", Opcode: "set", Count: 2},
		{Machine: "duet", Opcode: "snd", Count: 1},
	}, ans.Executions)
}

func TestDay23_ExecutionsCountMul(t *testing.T) {
	ans, err := solutions.Day23(context.Background(), coprocProgram)
	require.NoError(t, err)
	var mul int
	for _, e := range ans.Executions {
		assert.Equal(t, "coproc", e.Machine)
		if e.Opcode == "mul" {
			mul = e.Count
		}
	}
	assert.Equal(t, 3025, mul)
}

func TestSolvers_NoAnswer(t *testing.T) {
	_, err := solutions.Day18(context.Background(), "set a 1\nrcv a\n")
	assert.ErrorIs(t, err, puzzle.ErrNoAnswer)

	_, err = solutions.Day07(context.Background(), "a (1) -> b, c, d\nb (2)\nc (2)\nd (2)")
	assert.ErrorIs(t, err, puzzle.ErrNoAnswer)
}

func TestSolvers_EmptyInput(t *testing.T) {
	for _, fn := range []puzzle.Solver{solutions.Day08, solutions.Day12, solutions.Day18, solutions.Day20, solutions.Day23} {
		_, err := fn(context.Background(), "")
		assert.ErrorIs(t, err, puzzle.ErrNoInput)
	}
}

func TestSolvers_StrictParseErrors(t *testing.T) {
	_, err := solutions.Day09(context.Background(), "{<}")
	assert.Error(t, err)

	_, err = solutions.Day23(context.Background(), "set a 1\nsnd a")
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	reg := registry.NewRegistry()
	solutions.Register(reg)
	assert.Equal(t, []puzzle.Day{7, 8, 9, 12, 18, 20, 23}, reg.Days())
}
