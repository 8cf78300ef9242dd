// Package pipes parses adjacency lists of the form "2 <-> 0, 3, 4".
package pipes

import (
	"maps"
	"slices"

	"github.com/aretw0/duet/pkg/parse"
)

// Link is one program and the programs it talks to directly.
type Link struct {
	ID    uint32
	Peers []uint32
}

var line parse.Parser[Link] = func(in parse.Input) (Link, parse.Input, error) {
	s := parse.Begin(in)
	id := parse.Run(s, parse.Uint32())
	parse.Skip(s, parse.Tag(" <-> "))
	peers := parse.Run(s, parse.SeparatedList(parse.Tag(", "), parse.Uint32()))
	return parse.Finish(s, Link{ID: id, Peers: peers})
}

// ParseLine decodes a single adjacency line.
func ParseLine(text string) (Link, error) {
	return parse.Complete(line, text)
}

// Parse builds the adjacency map. Lines that do not parse are skipped; a
// repeated ID keeps the last line.
func Parse(input string) map[uint32][]uint32 {
	graph := make(map[uint32][]uint32)
	for _, l := range parse.Lenient(line, input) {
		graph[l.ID] = l.Peers
	}
	return graph
}

// Group returns the sorted IDs reachable from start, start included.
func Group(graph map[uint32][]uint32, start uint32) []uint32 {
	seen := map[uint32]struct{}{start: {}}
	stack := []uint32{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range graph[n] {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				stack = append(stack, p)
			}
		}
	}
	ids := make([]uint32, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Groups counts the connected components of graph.
func Groups(graph map[uint32][]uint32) int {
	seen := make(map[uint32]struct{}, len(graph))
	count := 0
	for _, id := range slices.Sorted(maps.Keys(graph)) {
		if _, ok := seen[id]; ok {
			continue
		}
		count++
		for _, m := range Group(graph, id) {
			seen[m] = struct{}{}
		}
	}
	return count
}
