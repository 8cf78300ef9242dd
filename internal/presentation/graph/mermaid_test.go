package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/duet/internal/presentation/graph"
	"github.com/aretw0/duet/pkg/machine/coproc"
	"github.com/aretw0/duet/pkg/machine/duet"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []graph.Node
		contains []string
		excludes []string
	}{
		{
			name: "Shapes",
			nodes: []graph.Node{
				{ID: "a", Label: "plain"},
				{ID: "b", Label: "io", Shape: graph.ShapeIO},
				{ID: "c", Label: "if", Shape: graph.ShapeDecision},
				{ID: "d", Label: "end", Shape: graph.ShapeTerminal},
			},
			contains: []string{
				"a[\"plain\"]",
				"b[/\"io\"/]",
				"c{\"if\"}",
				"d((\"end\"))",
			},
			excludes: []string{"halt"},
		},
		{
			name: "Edges",
			nodes: []graph.Node{
				{ID: "a", Label: "say \"hi\"", Edges: []graph.Edge{
					{To: "b"},
					{To: "c", Jump: true},
					{To: "d", Label: "else"},
					{To: graph.HaltID, Label: "taken", Jump: true},
				}},
			},
			contains: []string{
				"a[\"say 'hi'\"]",
				"a --> b",
				"a -.-> c",
				"a -- \"else\" --> d",
				"a -. \"taken\" .-> halt",
				"halt((\"halt\"))",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.nodes)
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("missing header:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q\nGot:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("expected output not to contain %q\nGot:\n%s", bad, got)
				}
			}
		})
	}
}

func TestFromDuet(t *testing.T) {
	prog := duet.Parse("snd a\njgz a -1\njgz 1 5\njgz 0 1\njgz a b")
	got := graph.GenerateMermaid(graph.FromDuet(prog))

	for _, want := range []string{
		"i0[/\"0: snd a\"/]",
		"i0 --> i1",
		"i1{\"1: jgz a -1\"}",
		"i1 -. \"taken\" .-> i0",
		"i1 -- \"else\" --> i2",
		"i2 -. \"taken\" .-> halt",
		"i3 --> i4",
		"i4 --> halt",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in\n%s", want, got)
		}
	}
	if strings.Contains(got, "i2 --> i3") {
		t.Errorf("always-taken jump must not fall through:\n%s", got)
	}
}

func TestFromCoproc(t *testing.T) {
	prog, err := coproc.Parse("set a 1\njnz a -1\njnz 0 9")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	nodes := graph.FromCoproc(prog)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[1].Shape != graph.ShapeDecision {
		t.Errorf("jnz should be a decision node")
	}
	got := graph.GenerateMermaid(nodes)
	for _, want := range []string{"i1 -. \"taken\" .-> i0", "i2 --> halt"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in\n%s", want, got)
		}
	}
}
