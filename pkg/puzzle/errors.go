package puzzle

import "errors"

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// ErrNoInput is returned when a day's input file is missing or empty.
var ErrNoInput = errors.New("no input")

// ErrNoAnswer is returned when a solver cannot produce an answer for a
// well-formed input, e.g. a duet program that never recovers a value.
var ErrNoAnswer = errors.New("no answer")
