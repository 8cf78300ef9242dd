package tower

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownChild is returned when a program lists a child that is not
	// in the listing.
	ErrUnknownChild = errors.New("tower: unknown child")
	// ErrNoRoot is returned when no single program is without a parent.
	ErrNoRoot = errors.New("tower: no single bottom program")
	// ErrShared is returned when a program is listed as the child of two
	// parents.
	ErrShared = errors.New("tower: program has two parents")
)

// Node is a program placed in the tower. Parent is -1 for the bottom
// program.
type Node struct {
	Name     string
	Weight   int64
	Parent   int
	Children []int
}

// Tower stores nodes in a flat slice and links them by index.
type Tower struct {
	Nodes []Node
	root  int
	total []int64
}

// Build links the programs into a tower. Nodes are ordered by name so the
// result does not depend on map iteration.
func Build(programs map[string]Program) (*Tower, error) {
	names := make([]string, 0, len(programs))
	for n := range programs {
		names = append(names, n)
	}
	slices.Sort(names)

	index := make(map[string]int, len(names))
	t := &Tower{Nodes: make([]Node, len(names)), root: -1}
	for i, n := range names {
		index[n] = i
		t.Nodes[i] = Node{Name: n, Weight: int64(programs[n].Weight), Parent: -1}
	}
	for i, n := range names {
		for _, c := range programs[n].Children {
			j, ok := index[c]
			if !ok {
				return nil, fmt.Errorf("%w: %s above %s", ErrUnknownChild, c, n)
			}
			if t.Nodes[j].Parent != -1 {
				return nil, fmt.Errorf("%w: %s", ErrShared, c)
			}
			t.Nodes[j].Parent = i
			t.Nodes[i].Children = append(t.Nodes[i].Children, j)
		}
	}
	for i, n := range t.Nodes {
		if n.Parent != -1 {
			continue
		}
		if t.root != -1 {
			return nil, fmt.Errorf("%w: %s and %s", ErrNoRoot, t.Nodes[t.root].Name, n.Name)
		}
		t.root = i
	}
	if t.root == -1 {
		return nil, ErrNoRoot
	}
	t.total = make([]int64, len(t.Nodes))
	t.sum(t.root)
	return t, nil
}

func (t *Tower) sum(i int) int64 {
	total := t.Nodes[i].Weight
	for _, c := range t.Nodes[i].Children {
		total += t.sum(c)
	}
	t.total[i] = total
	return total
}

// Root returns the bottom program.
func (t *Tower) Root() *Node {
	return &t.Nodes[t.root]
}

// TotalWeight returns the weight of node i plus everything it carries.
func (t *Tower) TotalWeight(i int) int64 {
	return t.total[i]
}

// Rebalance finds the single program whose own weight is wrong and returns
// it with the weight that would balance its siblings. ok is false when the
// tower is already balanced or the odd one out is ambiguous.
func (t *Tower) Rebalance() (node *Node, corrected int64, ok bool) {
	i, want, found := t.odd(t.root)
	if !found {
		return nil, 0, false
	}
	// Descend while the odd subtree is itself unbalanced.
	for {
		j, w, deeper := t.odd(i)
		if !deeper {
			break
		}
		i, want = j, w
	}
	node = &t.Nodes[i]
	return node, node.Weight + want - t.total[i], true
}

// odd returns the child of i whose total weight differs from the others,
// together with the total its siblings share.
func (t *Tower) odd(i int) (int, int64, bool) {
	kids := t.Nodes[i].Children
	if len(kids) < 3 {
		return 0, 0, false
	}
	counts := make(map[int64]int, 2)
	for _, c := range kids {
		counts[t.total[c]]++
	}
	if len(counts) != 2 {
		return 0, 0, false
	}
	var (
		common int64
		seen   bool
	)
	for w, n := range counts {
		if n == 1 {
			continue
		}
		if seen {
			return 0, 0, false
		}
		common, seen = w, true
	}
	for _, c := range kids {
		if t.total[c] != common {
			return c, common, true
		}
	}
	return 0, 0, false
}
