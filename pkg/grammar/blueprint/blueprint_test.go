package blueprint_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/duet/pkg/grammar/blueprint"
	"github.com/aretw0/duet/pkg/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `Begin in state A.
Perform a diagnostic checksum after 6 steps.

In state A:
  If the current value is 0:
    - Write the value 1.
    - Move one slot to the right.
    - Continue with state B.
  If the current value is 1:
    - Write the value 0.
    - Move one slot to the left.
    - Continue with state B.

In state B:
  If the current value is 0:
    - Write the value 1.
    - Move one slot to the left.
    - Continue with state A.
  If the current value is 1:
    - Write the value 1.
    - Move one slot to the right.
    - Continue with state A.
`

func TestParse_Sample(t *testing.T) {
	bp, err := blueprint.Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, blueprint.Blueprint{
		Start: 'A',
		Steps: 6,
		States: []blueprint.State{
			{Name: 'A', Branches: [2]blueprint.Branch{
				{When: 0, Write: 1, Move: 1, Next: 'B'},
				{When: 1, Write: 0, Move: -1, Next: 'B'},
			}},
			{Name: 'B', Branches: [2]blueprint.Branch{
				{When: 0, Write: 1, Move: -1, Next: 'A'},
				{When: 1, Write: 1, Move: 1, Next: 'A'},
			}},
		},
	}, bp)

	b, ok := bp.State('B')
	require.True(t, ok)
	assert.Equal(t, byte('A'), b.Branches[0].Next)
	_, ok = bp.State('C')
	assert.False(t, ok)
}

func TestParse_WhitespaceInsignificant(t *testing.T) {
	compact := "Begin in state A. Perform a diagnostic checksum after 1 steps.\tIn state A: " +
		"If the current value is 0: - Write the value 1. - Move one slot to the right. - Continue with state A. " +
		"If the current value is 1: - Write the value 0. - Move one slot to the left. - Continue with state A."
	bp, err := blueprint.Parse(compact)
	require.NoError(t, err)
	assert.Len(t, bp.States, 1)
	assert.Equal(t, uint64(1), bp.Steps)
}

func TestParse_Atomic(t *testing.T) {
	tests := map[string]string{
		"no states":  "Begin in state A.\nPerform a diagnostic checksum after 6 steps.\n",
		"bad phrase": "Begin in state A.\nPerform a checksum after 6 steps.\n",
		"bad move":   strings.Replace(sample, "to the left", "up", 1),
		"trailing":   sample + "In state C:\n",
		"lowercase":  "Begin in state a.\n",
		"empty":      "",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := blueprint.Parse(in)
			require.Error(t, err)
			var perr *parse.Error
			assert.True(t, errors.As(err, &perr))
		})
	}
}
