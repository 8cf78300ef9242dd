package duet_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/duet/pkg/machine/duet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPair_Sample(t *testing.T) {
	res := duet.RunPair(duet.Parse(pairSample))
	assert.Equal(t, 3, res.Sent[1])
	assert.Equal(t, 3, res.Sent[0])
	assert.Equal(t, 2, res.Rounds)
}

func TestPair_Rounds(t *testing.T) {
	p := duet.NewPair(duet.Parse(pairSample))

	sent0, sent1 := p.Round()
	assert.Equal(t, 3, sent0)
	assert.Equal(t, 3, sent1)
	assert.Equal(t, []int64{1, 2, 0}, p.Actor(0).Outbox())
	assert.Equal(t, []int64{1, 2, 1}, p.Actor(1).Outbox())
	assert.Equal(t, duet.Blocked, p.Actor(0).Status())
	assert.Equal(t, duet.Blocked, p.Actor(1).Status())

	// Actor 1 consumed all three of actor 0's values and waits on rcv d.
	assert.Equal(t, int64(0), p.Actor(1).Machine().Bank().Get('c'))
	assert.Equal(t, 6, p.Actor(1).Machine().PC())

	sent0, sent1 = p.Round()
	assert.Zero(t, sent0)
	assert.Zero(t, sent1)
	assert.Equal(t, int64(1), p.Actor(0).Machine().Bank().Get('c'))
	assert.Equal(t, 6, p.Actor(0).Machine().PC(), "blocked actor resumes at the same rcv")
}

func TestRunPair_BothHalt(t *testing.T) {
	res := duet.RunPair(duet.Parse("snd p\nsnd 5"))
	assert.Equal(t, [2]int{2, 2}, res.Sent)
}

func TestRunPair_SeedsProgramID(t *testing.T) {
	p := duet.NewPair(duet.Parse("snd p"))
	p.Run()
	assert.Equal(t, []int64{0}, p.Actor(0).Outbox())
	assert.Equal(t, []int64{1}, p.Actor(1).Outbox())
}

func TestRunPair_Idempotent(t *testing.T) {
	prog := duet.Parse(pairSample)
	assert.Equal(t, duet.RunPair(prog), duet.RunPair(prog))
}

func TestRunConcurrent_MatchesCooperative(t *testing.T) {
	programs := map[string]string{
		"sample":    pairSample,
		"both halt": "snd p\nsnd 5",
		"ping pong": "jgz p 4\nsnd 1\nrcv a\njgz 1 4\nrcv a\nadd a 1\nsnd a",
	}
	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			prog := duet.Parse(src)
			want := duet.RunPair(prog)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			got, err := duet.RunConcurrent(ctx, prog)
			require.NoError(t, err)
			assert.Equal(t, want.Sent, got.Sent)
		})
	}
}

func TestRunConcurrent_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// An endless loop that never receives.
	_, err := duet.RunConcurrent(ctx, duet.Parse("add a 1\njgz 1 -1"))
	assert.ErrorIs(t, err, context.Canceled)
}
