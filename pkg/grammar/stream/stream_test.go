package stream_test

import (
	"testing"

	"github.com/aretw0/duet/pkg/grammar/stream"
	"github.com/aretw0/duet/pkg/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGarbageCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"<>", 0},
		{"<random characters>", 17},
		{"<<<<>", 3},
		{"<{!>}>", 2},
		{"<!!>", 0},
		{"<!!!>>", 0},
		{`<{o"i!a,<{i<a>`, 10},
		{"{{<!>},{<!>},{<!>},{<a>}}", 13},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := stream.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stream.GarbageCount(c))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"{}", 1},
		{"{{{}}}", 6},
		{"{{},{}}", 5},
		{"{{{},{},{{}}}}", 16},
		{"{<a>,<a>,<a>,<a>}", 1},
		{"{{<ab>},{<ab>},{<ab>},{<ab>}}", 9},
		{"{{<!!>},{<!!>},{<!!>},{<!!>}}", 9},
		{"{{<a!>},{<a!>},{<a!>},{<ab>}}", 3},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := stream.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stream.Score(c))
		})
	}
}

func TestParse_Structure(t *testing.T) {
	c, err := stream.Parse("{{},<a>}\n")
	require.NoError(t, err)
	assert.Equal(t, stream.Group{stream.Group{}, stream.Garbage(1)}, c)
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "{", "{<}", "<abc", "{},{}", "{{},}"} {
		_, err := stream.Parse(in)
		assert.Error(t, err, in)
	}

	_, err := stream.Parse("{}x")
	assert.ErrorIs(t, err, parse.ErrTrailing)
}
