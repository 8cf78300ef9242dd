// Package tower parses program tower descriptions such as
// "fwft (72) -> ktlj, cntj, xhth" and assembles them into an indexed tree.
package tower

import (
	"strconv"

	"github.com/aretw0/duet/pkg/parse"
)

// Program is one line of the listing.
type Program struct {
	Name     string
	Weight   uint32
	Children []string
}

var (
	name   = parse.Alnum1()
	weight = parse.Delimited(parse.Char('('), parse.TryMap(parse.IsNot(")"), "weight", func(s string) (uint32, error) {
		n, err := strconv.ParseUint(s, 10, 32)
		return uint32(n), err
	}), parse.Char(')'))
	children = parse.Preceded(parse.Tag(" -> "), parse.SeparatedList(parse.Tag(", "), name))
)

var line parse.Parser[Program] = func(in parse.Input) (Program, parse.Input, error) {
	s := parse.Begin(in)
	n := parse.Run(s, name)
	parse.Skip(s, parse.Space0())
	w := parse.Run(s, weight)
	c := parse.Run(s, parse.Opt(children))
	if c == nil {
		c = []string{}
	}
	return parse.Finish(s, Program{Name: n, Weight: w, Children: c})
}

// ParseLine decodes a single program line. A program without " -> " has an
// empty, non-nil child list.
func ParseLine(text string) (Program, error) {
	return parse.Complete(line, text)
}

// Parse decodes a listing keyed by program name, skipping lines that do not
// parse.
func Parse(input string) map[string]Program {
	programs := make(map[string]Program)
	for _, p := range parse.Lenient(line, input) {
		programs[p.Name] = p
	}
	return programs
}
