package machine

import "math"

// InRange reports whether pc addresses an instruction of a program of
// length n.
func InRange(pc, n int) bool {
	return pc >= 0 && pc < n
}

// Jump applies a signed offset to pc. The result may fall outside the
// program, which callers treat as a halt; it is clamped to [-1, MaxInt32]
// so that no offset can wrap back into range.
func Jump(pc int, offset int64) int {
	if offset > 0 && int64(pc) > math.MaxInt64-offset {
		return math.MaxInt32
	}
	target := int64(pc) + offset
	switch {
	case target < 0:
		return -1
	case target > math.MaxInt32:
		return math.MaxInt32
	}
	return int(target)
}
