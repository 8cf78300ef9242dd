package parse

import "strings"

// Complete parses the whole of s with p and rejects leftovers.
func Complete[T any](p Parser[T], s string) (T, error) {
	v, out, err := p(NewInput(s))
	if err != nil {
		var zero T
		return zero, err
	}
	if !out.AtEOF() {
		var zero T
		return zero, fail(out, ErrTrailing, "end of input")
	}
	return v, nil
}

// LineResult is the outcome of parsing one line.
type LineResult[T any] struct {
	Line  int // 1-based
	Text  string
	Value T
	Err   error
}

// SplitLines splits s on line endings. A single trailing line ending does not
// produce an extra empty line, and an empty input has no lines.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Lines parses every line of s completely with p and reports each outcome.
func Lines[T any](p Parser[T], s string) []LineResult[T] {
	lines := SplitLines(s)
	results := make([]LineResult[T], 0, len(lines))
	for i, text := range lines {
		v, err := Complete(p, text)
		results = append(results, LineResult[T]{Line: i + 1, Text: text, Value: v, Err: err})
	}
	return results
}

// Lenient returns the values of the lines that parsed and silently drops
// the others.
func Lenient[T any](p Parser[T], s string) []T {
	results := Lines(p, s)
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			values = append(values, r.Value)
		}
	}
	return values
}

// Strict returns every line's value, or a *LineError for the first line that
// failed to parse.
func Strict[T any](p Parser[T], s string) ([]T, error) {
	results := Lines(p, s)
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, &LineError{Line: r.Line, Text: r.Text, Err: r.Err}
		}
		values = append(values, r.Value)
	}
	return values, nil
}
