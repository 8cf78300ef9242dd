package tui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/duet/internal/presentation/tui"
	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestMarkdown(t *testing.T) {
	md := tui.Markdown([]tui.Row{
		{Day: 18, Answer: puzzle.Answer{
			Part1: "4", Part2: "3", Duration: 1500 * time.Microsecond,
			Executions: []puzzle.Execution{{Machine: "duet", Opcode: "snd", Count: 7}},
		}},
		{Day: 9, Err: errors.New("parse | failed")},
	})

	assert.Contains(t, md, "| day18 | 4 | 3 | 1.5ms |")
	assert.Contains(t, md, `| day09 | error: parse \| failed | | |`)
	assert.Contains(t, md, "## Instructions executed")
	assert.Contains(t, md, "| day18 | duet | snd | 7 |")
}

func TestMarkdown_NoExecutions(t *testing.T) {
	md := tui.Markdown([]tui.Row{{Day: 7, Answer: puzzle.Answer{Part1: "tknk", Part2: "60"}}})
	assert.NotContains(t, md, "Instructions executed")
}

func TestPalette_Plain(t *testing.T) {
	p := tui.NewPalette(false)
	assert.Equal(t, "day07", p.Day(7))
	assert.Equal(t, "42", p.Value("42"))
	assert.Equal(t, "boom", p.Error("boom"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.GreaterOrEqual(t, strings.Count(buf.String(), "\n"), 7)
}
