package parse

import (
	"errors"
	"fmt"
	"strconv"
)

// Failure kinds. Every *Error wraps exactly one of them.
var (
	ErrTag      = errors.New("unmatched tag")
	ErrEOF      = errors.New("unexpected end of input")
	ErrDigit    = errors.New("invalid digit")
	ErrVerify   = errors.New("verification failed")
	ErrAlt      = errors.New("no alternative matched")
	ErrTrailing = errors.New("unconsumed input")
)

// Error describes where and why a parser failed.
type Error struct {
	Kind     error
	Pos      int
	Expected string
	Found    string
}

func (e *Error) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("offset %d: %s, found %s", e.Pos, e.Kind, e.Found)
	}
	return fmt.Sprintf("offset %d: %s: expected %s, found %s", e.Pos, e.Kind, e.Expected, e.Found)
}

func (e *Error) Unwrap() error { return e.Kind }

// LineError locates a failure inside a multi-line input.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

const foundWidth = 12

func fail(in Input, kind error, expected string) *Error {
	return &Error{
		Kind:     kind,
		Pos:      in.Pos(),
		Expected: expected,
		Found:    describe(in),
	}
}

func describe(in Input) string {
	rest := in.Rest()
	if rest == "" {
		return "end of input"
	}
	if len(rest) > foundWidth {
		return strconv.Quote(rest[:foundWidth]) + "..."
	}
	return strconv.Quote(rest)
}

func expectation(err error) string {
	var pe *Error
	if errors.As(err, &pe) && pe.Expected != "" {
		return pe.Expected
	}
	return "?"
}
