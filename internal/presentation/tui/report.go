package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/muesli/termenv"
)

// Row is one line of a report: a day and either its answer or its error.
type Row struct {
	Day    puzzle.Day
	Answer puzzle.Answer
	Err    error
}

// Markdown renders rows as a markdown table, followed by a per-machine
// instruction table when any answer carries execution counts.
func Markdown(rows []Row) string {
	var sb strings.Builder
	sb.WriteString("# duet report\n\n")
	sb.WriteString("| Day | Part 1 | Part 2 | Time |\n")
	sb.WriteString("|---|---|---|---|\n")

	var execs []puzzle.Execution
	var execDays []puzzle.Day
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(&sb, "| %s | error: %s | | |\n", r.Day, cell(r.Err.Error()))
			continue
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			r.Day, cell(r.Answer.Part1), cell(r.Answer.Part2), r.Answer.Duration.Round(time.Microsecond))
		for _, e := range r.Answer.Executions {
			execs = append(execs, e)
			execDays = append(execDays, r.Day)
		}
	}

	if len(execs) > 0 {
		sb.WriteString("\n## Instructions executed\n\n")
		sb.WriteString("| Day | Machine | Opcode | Count |\n")
		sb.WriteString("|---|---|---|---|\n")
		for i, e := range execs {
			fmt.Fprintf(&sb, "| %s | %s | %s | %d |\n", execDays[i], e.Machine, e.Opcode, e.Count)
		}
	}
	return sb.String()
}

// cell escapes the characters that would break a table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// Palette colors CLI output. The zero profile (Ascii) prints plain text.
type Palette struct {
	profile termenv.Profile
}

// NewPalette picks colors for the terminal, or none when color is false.
func NewPalette(color bool) Palette {
	if !color {
		return Palette{profile: termenv.Ascii}
	}
	return Palette{profile: termenv.ColorProfile()}
}

// Day styles a day label.
func (p Palette) Day(d puzzle.Day) string {
	return p.profile.String(d.String()).Foreground(p.profile.Color("#a78bfa")).Bold().String()
}

// Value styles an answer.
func (p Palette) Value(s string) string {
	return p.profile.String(s).Foreground(p.profile.Color("#34d399")).String()
}

// Error styles an error message.
func (p Palette) Error(s string) string {
	return p.profile.String(s).Foreground(p.profile.Color("#fb7185")).String()
}
