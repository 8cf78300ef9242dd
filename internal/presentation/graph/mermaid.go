package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/duet/pkg/machine"
	"github.com/aretw0/duet/pkg/machine/coproc"
	"github.com/aretw0/duet/pkg/machine/duet"
)

// Shape selects how a node is drawn.
type Shape uint8

const (
	ShapeRect     Shape = iota // [Rectangle]
	ShapeIO                    // [/Parallelogram/]
	ShapeDecision              // {Rhombus}
	ShapeTerminal              // ((Circle))
)

// Edge leaves a node. Jump edges are drawn dotted.
type Edge struct {
	To    string
	Label string
	Jump  bool
}

// Node is one instruction of a program.
type Node struct {
	ID    string
	Label string
	Shape Shape
	Edges []Edge
}

// HaltID is the node every out-of-range jump and the final fall-through
// lead to.
const HaltID = "halt"

// GenerateMermaid produces a Mermaid flowchart syntax string from a list of nodes.
// A halt node is appended when any edge points to it.
func GenerateMermaid(nodes []Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	halts := false
	for _, node := range nodes {
		opener, closer := "[", "]"
		switch node.Shape {
		case ShapeIO:
			opener, closer = "[/", "/]"
		case ShapeDecision:
			opener, closer = "{", "}"
		case ShapeTerminal:
			opener, closer = "((", "))"
		}
		// Escape double quotes for Mermaid labels
		label := strings.ReplaceAll(node.Label, "\"", "'")
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", node.ID, opener, label, closer)

		for _, e := range node.Edges {
			if e.To == HaltID {
				halts = true
			}
			arrow := "-->"
			if e.Jump {
				arrow = "-.->"
			}
			if e.Label != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", e.Label)
				if e.Jump {
					arrow = fmt.Sprintf("-. \"%s\" .->", e.Label)
				}
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", node.ID, arrow, e.To)
		}
	}
	if halts {
		fmt.Fprintf(&sb, "    %s((\"halt\"))\n", HaltID)
	}
	return sb.String()
}

func nodeID(pc, n int) string {
	if !machine.InRange(pc, n) {
		return HaltID
	}
	return "i" + strconv.Itoa(pc)
}

// branch builds the edges of a conditional jump. A literal condition has a
// single outcome; a register offset cannot be drawn and gets no jump edge.
func branch(pc, n int, taken func(int64) bool, cond, offset machine.Value) []Edge {
	next := Edge{To: nodeID(pc+1, n)}
	var jump []Edge
	if off, ok := offset.Literal(); ok {
		jump = []Edge{{To: nodeID(machine.Jump(pc, off), n), Label: "taken", Jump: true}}
	}
	if c, ok := cond.Literal(); ok {
		if taken(c) {
			return jump
		}
		return []Edge{next}
	}
	if len(jump) > 0 {
		next.Label = "else"
	}
	return append(jump, next)
}

// FromDuet converts a duet program into flowchart nodes.
func FromDuet(prog []duet.Instruction) []Node {
	n := len(prog)
	nodes := make([]Node, 0, n)
	for pc, in := range prog {
		node := Node{ID: nodeID(pc, n), Label: fmt.Sprintf("%d: %s", pc, in)}
		switch in.Op {
		case duet.OpSnd, duet.OpRcv:
			node.Shape = ShapeIO
			node.Edges = []Edge{{To: nodeID(pc+1, n)}}
		case duet.OpJgz:
			node.Shape = ShapeDecision
			node.Edges = branch(pc, n, func(c int64) bool { return c > 0 }, in.X, in.Y)
		default:
			node.Edges = []Edge{{To: nodeID(pc+1, n)}}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// FromCoproc converts a coprocessor program into flowchart nodes.
func FromCoproc(prog []coproc.Instruction) []Node {
	n := len(prog)
	nodes := make([]Node, 0, n)
	for pc, in := range prog {
		node := Node{ID: nodeID(pc, n), Label: fmt.Sprintf("%d: %s", pc, in)}
		if in.Op == coproc.OpJnz {
			node.Shape = ShapeDecision
			node.Edges = branch(pc, n, func(c int64) bool { return c != 0 }, in.X, in.Y)
		} else {
			node.Edges = []Edge{{To: nodeID(pc+1, n)}}
		}
		nodes = append(nodes, node)
	}
	return nodes
}
