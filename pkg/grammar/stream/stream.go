// Package stream parses the nested group/garbage character stream.
//
// A group is "{" followed by comma separated contents and "}". Garbage
// starts with "<" and ends at the first ">" that is not cancelled; inside
// garbage "!" cancels the character after it.
package stream

import "github.com/aretw0/duet/pkg/parse"

// Content is either a Group or Garbage.
type Content interface {
	content()
}

// Group holds nested contents.
type Group []Content

// Garbage records how many non-cancelled characters it held, excluding its
// delimiters.
type Garbage uint32

func (Group) content()   {}
func (Garbage) content() {}

func garbage() parse.Parser[Content] {
	cancelled := parse.Value(uint32(0), parse.Pair(parse.Char('!'), parse.AnyChar()))
	counted := parse.Value(uint32(1), parse.Pair(parse.Not(parse.Char('>')), parse.AnyChar()))
	body := parse.Fold0(parse.Alt(cancelled, counted),
		func() uint32 { return 0 },
		func(sum, n uint32) uint32 { return sum + n })
	return parse.Map(parse.Delimited(parse.Char('<'), body, parse.Char('>')),
		func(n uint32) Content { return Garbage(n) })
}

func contents() parse.Parser[Content] {
	var content parse.Parser[Content]
	group := parse.Map(
		parse.Delimited(parse.Char('{'),
			parse.SeparatedList(parse.Char(','), parse.Lazy(func() parse.Parser[Content] { return content })),
			parse.Char('}')),
		func(cs []Content) Content { return Group(cs) })
	content = parse.Alt(group, garbage())
	return content
}

var document = contents()

// Parse decodes a whole stream. Trailing line endings are ignored; anything
// else after the outermost content is an error.
func Parse(input string) (Content, error) {
	return parse.Complete(parse.Terminated(document, parse.Multispace0()), input)
}

// Score sums the depth of every group, the outermost counting 1.
func Score(c Content) int {
	return score(c, 1)
}

func score(c Content, depth int) int {
	g, ok := c.(Group)
	if !ok {
		return 0
	}
	total := depth
	for _, child := range g {
		total += score(child, depth+1)
	}
	return total
}

// GarbageCount sums the characters held by every piece of garbage.
func GarbageCount(c Content) int {
	switch c := c.(type) {
	case Garbage:
		return int(c)
	case Group:
		total := 0
		for _, child := range c {
			total += GarbageCount(child)
		}
		return total
	}
	return 0
}
