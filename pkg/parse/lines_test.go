package parse_test

import (
	"testing"

	"github.com/aretw0/duet/pkg/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	assert.Nil(t, parse.SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, parse.SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, parse.SplitLines("a\r\n\r\nb"))
}

func TestLinePolicies(t *testing.T) {
	input := "1\n2\nthree\n4"

	t.Run("Lines reports every outcome", func(t *testing.T) {
		results := parse.Lines(parse.Int64(), input)
		require.Len(t, results, 4)
		assert.NoError(t, results[0].Err)
		assert.Error(t, results[2].Err)
		assert.Equal(t, 3, results[2].Line)
		assert.Equal(t, "three", results[2].Text)
	})

	t.Run("Lenient drops failed lines", func(t *testing.T) {
		assert.Equal(t, []int64{1, 2, 4}, parse.Lenient(parse.Int64(), input))
	})

	t.Run("Strict fails on the first bad line", func(t *testing.T) {
		values, err := parse.Strict(parse.Int64(), input)
		assert.Nil(t, values)

		var le *parse.LineError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, 3, le.Line)
		assert.ErrorIs(t, err, parse.ErrDigit)
	})

	t.Run("Complete lines only", func(t *testing.T) {
		_, err := parse.Strict(parse.Int64(), "1\n2x")
		assert.ErrorIs(t, err, parse.ErrTrailing)
	})
}
