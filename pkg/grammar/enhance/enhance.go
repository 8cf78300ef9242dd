// Package enhance parses pixel-art enhancement rules such as
// "../.# => ##./#../...".
package enhance

import (
	"strings"

	"github.com/aretw0/duet/pkg/parse"
)

// Grid is a square of pixels, true meaning on ('#').
type Grid [][]bool

// String renders rows with '#' and '.', separated by '/'.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('/')
		}
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Size returns the number of rows.
func (g Grid) Size() int { return len(g) }

// Lit counts the pixels that are on.
func (g Grid) Lit() int {
	n := 0
	for _, row := range g {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Rule maps a pattern to its replacement.
type Rule struct {
	Pattern     Grid
	Replacement Grid
}

func (r Rule) String() string {
	return r.Pattern.String() + " => " + r.Replacement.String()
}

var (
	pixel = parse.Alt(parse.Value(true, parse.Char('#')), parse.Value(false, parse.Char('.')))
	grid  = parse.Map(parse.SeparatedList(parse.Char('/'), parse.Many1(pixel)),
		func(rows [][]bool) Grid { return Grid(rows) })
)

var line parse.Parser[Rule] = func(in parse.Input) (Rule, parse.Input, error) {
	s := parse.Begin(in)
	pattern := parse.Run(s, grid)
	parse.Skip(s, parse.Tag(" => "))
	replacement := parse.Run(s, grid)
	return parse.Finish(s, Rule{Pattern: pattern, Replacement: replacement})
}

// ParseGrid decodes a single grid such as ".#./..#/###".
func ParseGrid(text string) (Grid, error) {
	return parse.Complete(grid, text)
}

// ParseLine decodes one rule.
func ParseLine(text string) (Rule, error) {
	return parse.Complete(line, text)
}

// Parse decodes every rule and fails on the first malformed line.
func Parse(input string) ([]Rule, error) {
	return parse.Strict(line, input)
}
