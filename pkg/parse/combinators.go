package parse

import (
	"strings"
	"sync"
)

// Tuple holds the results of Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Map transforms the value produced by p.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (B, Input, error) {
		a, out, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), out, nil
	}
}

// TryMap transforms the value produced by p with a conversion that may fail.
// A conversion error is reported as ErrVerify at the start of p's match.
func TryMap[A, B any](p Parser[A], expected string, f func(A) (B, error)) Parser[B] {
	return func(in Input) (B, Input, error) {
		var zero B
		a, out, err := p(in)
		if err != nil {
			return zero, in, err
		}
		b, err := f(a)
		if err != nil {
			return zero, in, fail(in, ErrVerify, expected)
		}
		return b, out, nil
	}
}

// Value replaces whatever p produces with v.
func Value[A, B any](v B, p Parser[A]) Parser[B] {
	return Map(p, func(A) B { return v })
}

// Verify fails with ErrVerify unless pred accepts p's result.
func Verify[T any](p Parser[T], expected string, pred func(T) bool) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, out, err := p(in)
		if err != nil {
			return v, in, err
		}
		if !pred(v) {
			var zero T
			return zero, in, fail(in, ErrVerify, expected)
		}
		return v, out, nil
	}
}

// Alt tries each parser in order and commits to the first that succeeds.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		expected := make([]string, 0, len(ps))
		for _, p := range ps {
			v, out, err := p(in)
			if err == nil {
				return v, out, nil
			}
			expected = append(expected, expectation(err))
		}
		return zero, in, fail(in, ErrAlt, strings.Join(expected, " | "))
	}
}

// Opt applies p if it matches and yields the zero value otherwise.
func Opt[T any](p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		v, out, err := p(in)
		if err != nil {
			var zero T
			return zero, in, nil
		}
		return v, out, nil
	}
}

// Present reports whether p matched, consuming its input if it did.
func Present[T any](p Parser[T]) Parser[bool] {
	return func(in Input) (bool, Input, error) {
		_, out, err := p(in)
		if err != nil {
			return false, in, nil
		}
		return true, out, nil
	}
}

// Not succeeds without consuming input when p fails.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(in Input) (struct{}, Input, error) {
		if _, _, err := p(in); err == nil {
			return struct{}{}, in, fail(in, ErrVerify, "not "+describe(in))
		}
		return struct{}{}, in, nil
	}
}

// Many0 applies p until it fails. It stops if p succeeds without consuming.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return Fold0(p, func() []T { return []T{} }, func(acc []T, v T) []T { return append(acc, v) })
}

// Many1 is Many0 but requires at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		first, out, err := p(in)
		if err != nil {
			return nil, in, err
		}
		rest, out, _ := Many0(p)(out)
		return append([]T{first}, rest...), out, nil
	}
}

// Fold0 accumulates the results of repeated applications of p.
func Fold0[T, A any](p Parser[T], init func() A, f func(A, T) A) Parser[A] {
	return func(in Input) (A, Input, error) {
		acc := init()
		cur := in
		for {
			v, out, err := p(cur)
			if err != nil || out.Pos() == cur.Pos() {
				return acc, cur, nil
			}
			acc = f(acc, v)
			cur = out
		}
	}
}

// SeparatedList matches zero or more items separated by sep. A separator is
// only consumed when an item follows it, so the list ends cleanly.
func SeparatedList[S, T any](sep Parser[S], item Parser[T]) Parser[[]T] {
	next := Preceded(sep, item)
	return func(in Input) ([]T, Input, error) {
		items := []T{}
		first, cur, err := item(in)
		if err != nil {
			return items, in, nil
		}
		items = append(items, first)
		for {
			v, out, err := next(cur)
			if err != nil || out.Pos() == cur.Pos() {
				return items, cur, nil
			}
			items = append(items, v)
			cur = out
		}
	}
}

// Pair runs a then b.
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[Tuple[A, B]] {
	return func(in Input) (Tuple[A, B], Input, error) {
		va, out, err := a(in)
		if err != nil {
			return Tuple[A, B]{}, in, err
		}
		vb, out, err := b(out)
		if err != nil {
			return Tuple[A, B]{}, in, err
		}
		return Tuple[A, B]{First: va, Second: vb}, out, nil
	}
}

// Preceded runs a then p and keeps p's value.
func Preceded[A, T any](a Parser[A], p Parser[T]) Parser[T] {
	return Map(Pair(a, p), func(t Tuple[A, T]) T { return t.Second })
}

// Terminated runs p then b and keeps p's value.
func Terminated[T, B any](p Parser[T], b Parser[B]) Parser[T] {
	return Map(Pair(p, b), func(t Tuple[T, B]) T { return t.First })
}

// Delimited runs l, p, r and keeps p's value.
func Delimited[L, T, R any](l Parser[L], p Parser[T], r Parser[R]) Parser[T] {
	return Preceded(l, Terminated(p, r))
}

// Recognize returns the text consumed by p instead of its value.
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Input) (string, Input, error) {
		_, out, err := p(in)
		if err != nil {
			return "", in, err
		}
		return out.since(in), out, nil
	}
}

// Ws skips surrounding spaces, tabs and line endings around p.
func Ws[T any](p Parser[T]) Parser[T] {
	return Delimited(Multispace0(), p, Multispace0())
}

// Lazy defers building the parser until first use, for recursive grammars.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(in Input) (T, Input, error) {
		once.Do(func() { p = build() })
		return p(in)
	}
}
