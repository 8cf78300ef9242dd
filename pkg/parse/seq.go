package parse

// Seq threads an Input through a sequence of parsers and remembers the
// first failure. After a failure every further Run is a no-op.
type Seq struct {
	start Input
	cur   Input
	err   error
}

// Begin starts a sequence at in.
func Begin(in Input) *Seq {
	return &Seq{start: in, cur: in}
}

// Err returns the first failure, if any.
func (s *Seq) Err() error {
	return s.err
}

// Run applies p at the current position and returns its value.
func Run[T any](s *Seq, p Parser[T]) T {
	var zero T
	if s.err != nil {
		return zero
	}
	v, out, err := p(s.cur)
	if err != nil {
		s.err = err
		return zero
	}
	s.cur = out
	return v
}

// Skip applies p and discards its value.
func Skip[T any](s *Seq, p Parser[T]) {
	Run(s, p)
}

// Finish closes the sequence. On failure the original input is returned so
// that the enclosing rule stays all-or-nothing.
func Finish[T any](s *Seq, v T) (T, Input, error) {
	if s.err != nil {
		var zero T
		return zero, s.start, s.err
	}
	return v, s.cur, nil
}
