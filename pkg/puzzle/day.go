package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Day identifies a puzzle, 1 to 25.
type Day int

// String returns the canonical name, e.g. "day07".
func (d Day) String() string {
	return fmt.Sprintf("day%02d", int(d))
}

// Valid reports whether d is in 1..25.
func (d Day) Valid() bool {
	return d >= 1 && d <= 25
}

// ParseDay accepts "18", "day18" or "day07".
func ParseDay(s string) (Day, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
	}
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d out of range", ErrUnknownDay, n)
	}
	return d, nil
}
