package parse

// Input is a read-only view over the source text with a cursor.
// Advancing returns a new Input; the source is never modified.
type Input struct {
	src string
	pos int
}

// NewInput creates a cursor positioned at the start of s.
func NewInput(s string) Input {
	return Input{src: s}
}

// Rest returns the unconsumed part of the source.
func (in Input) Rest() string {
	return in.src[in.pos:]
}

// Pos returns the byte offset of the cursor.
func (in Input) Pos() int {
	return in.pos
}

// AtEOF reports whether every byte has been consumed.
func (in Input) AtEOF() bool {
	return in.pos >= len(in.src)
}

func (in Input) peek() (byte, bool) {
	if in.AtEOF() {
		return 0, false
	}
	return in.src[in.pos], true
}

func (in Input) advance(n int) Input {
	in.pos += n
	return in
}

// since returns the text consumed between start and in.
func (in Input) since(start Input) string {
	return in.src[start.pos:in.pos]
}
