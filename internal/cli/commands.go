package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/duet"
	"github.com/aretw0/duet/internal/presentation/graph"
	"github.com/aretw0/duet/internal/presentation/tui"
	"github.com/aretw0/duet/pkg/machine/coproc"
	duetvm "github.com/aretw0/duet/pkg/machine/duet"
	"github.com/aretw0/duet/pkg/puzzle"
)

// ErrFailed is returned when at least one day failed; details were
// already printed.
var ErrFailed = errors.New("one or more days failed")

// Solve runs the given days (all when empty) and returns one row per day.
func Solve(ctx context.Context, eng *duet.Engine, days []puzzle.Day) []tui.Row {
	if len(days) == 0 {
		results, _ := eng.SolveAll(ctx)
		rows := make([]tui.Row, len(results))
		for i, r := range results {
			rows[i] = tui.Row{Day: r.Day, Answer: r.Answer, Err: r.Err}
		}
		return rows
	}
	rows := make([]tui.Row, 0, len(days))
	for _, d := range days {
		ans, err := eng.Solve(ctx, d)
		rows = append(rows, tui.Row{Day: d, Answer: ans, Err: err})
	}
	return rows
}

// PrintAnswers writes one line per row and reports ErrFailed if any row
// carries an error.
func PrintAnswers(w io.Writer, rows []tui.Row, p tui.Palette) error {
	failed := false
	for _, r := range rows {
		if r.Err != nil {
			failed = true
			fmt.Fprintf(w, "%s  %s\n", p.Day(r.Day), p.Error(r.Err.Error()))
			continue
		}
		line := fmt.Sprintf("%s  part1=%s", p.Day(r.Day), p.Value(r.Answer.Part1))
		if r.Answer.Part2 != "" {
			line += fmt.Sprintf("  part2=%s", p.Value(r.Answer.Part2))
		}
		fmt.Fprintln(w, line)
	}
	if failed {
		return ErrFailed
	}
	return nil
}

// PrintList writes every registered day with its input path.
func PrintList(w io.Writer, eng *duet.Engine) {
	cfg := eng.Config()
	for _, d := range eng.Days() {
		status := ""
		if cfg.ForDay(d).Disabled {
			status = " (disabled)"
		}
		fmt.Fprintf(w, "%s  %s%s\n", d, eng.InputPath(d), status)
	}
}

// Report renders the rows as markdown, through glamour when render is set.
func Report(w io.Writer, rows []tui.Row, render func(string) (string, error)) error {
	md := tui.Markdown(rows)
	if render != nil {
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("render report: %w", err)
		}
		md = out
	}
	_, err := io.WriteString(w, md)
	return err
}

// Graph writes a Mermaid flowchart of the program in path. The dialect is
// chosen by day: 18 is the duet machine, 23 the coprocessor.
func Graph(w io.Writer, day puzzle.Day, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read program: %w", err)
	}
	var nodes []graph.Node
	switch day {
	case 18:
		prog, err := duetvm.ParseStrict(string(data))
		if err != nil {
			return err
		}
		nodes = graph.FromDuet(prog)
	case 23:
		prog, err := coproc.Parse(string(data))
		if err != nil {
			return err
		}
		nodes = graph.FromCoproc(prog)
	default:
		return fmt.Errorf("%w: %s has no program to draw", puzzle.ErrUnknownDay, day)
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(nodes))
	return err
}
