package parse

import (
	"strconv"
	"strings"
)

// Parser consumes a prefix of in. On failure it returns the original input.
type Parser[T any] func(in Input) (T, Input, error)

// Tag matches s exactly.
func Tag(s string) Parser[string] {
	expected := strconv.Quote(s)
	return func(in Input) (string, Input, error) {
		if !strings.HasPrefix(in.Rest(), s) {
			if len(in.Rest()) < len(s) && strings.HasPrefix(s, in.Rest()) {
				return "", in, fail(in, ErrEOF, expected)
			}
			return "", in, fail(in, ErrTag, expected)
		}
		return s, in.advance(len(s)), nil
	}
}

// Satisfy matches one byte accepted by pred.
func Satisfy(expected string, pred func(byte) bool) Parser[byte] {
	return func(in Input) (byte, Input, error) {
		c, ok := in.peek()
		if !ok {
			return 0, in, fail(in, ErrEOF, expected)
		}
		if !pred(c) {
			return 0, in, fail(in, ErrTag, expected)
		}
		return c, in.advance(1), nil
	}
}

// Char matches the byte c.
func Char(c byte) Parser[byte] {
	return Satisfy(strconv.QuoteRune(rune(c)), func(b byte) bool { return b == c })
}

// AnyChar matches any single byte.
func AnyChar() Parser[byte] {
	return Satisfy("any character", func(byte) bool { return true })
}

// OneOf matches one byte from set.
func OneOf(set string) Parser[byte] {
	return Satisfy("one of "+strconv.Quote(set), func(b byte) bool {
		return strings.IndexByte(set, b) >= 0
	})
}

// Register matches a single register name, a lowercase ASCII letter.
func Register() Parser[byte] {
	return Satisfy("register a-z", isLower)
}

// TakeWhile0 consumes the longest (possibly empty) run of bytes accepted by pred.
func TakeWhile0(pred func(byte) bool) Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		return rest[:n], in.advance(n), nil
	}
}

// TakeWhile1 is TakeWhile0 but requires at least one byte.
func TakeWhile1(expected string, pred func(byte) bool) Parser[string] {
	return func(in Input) (string, Input, error) {
		s, out, _ := TakeWhile0(pred)(in)
		if s == "" {
			if in.AtEOF() {
				return "", in, fail(in, ErrEOF, expected)
			}
			return "", in, fail(in, ErrTag, expected)
		}
		return s, out, nil
	}
}

// IsNot consumes one or more bytes that are not in set.
func IsNot(set string) Parser[string] {
	return TakeWhile1("characters not in "+strconv.Quote(set), func(b byte) bool {
		return strings.IndexByte(set, b) < 0
	})
}

// Digit1 matches one or more decimal digits.
func Digit1() Parser[string] {
	return TakeWhile1("digit", isDigit)
}

// Alpha1 matches one or more ASCII letters.
func Alpha1() Parser[string] {
	return TakeWhile1("letter", isAlpha)
}

// Alnum1 matches one or more ASCII letters or digits.
func Alnum1() Parser[string] {
	return TakeWhile1("letter or digit", func(b byte) bool { return isAlpha(b) || isDigit(b) })
}

// Space0 skips spaces and tabs.
func Space0() Parser[string] {
	return TakeWhile0(isSpace)
}

// Space1 requires at least one space or tab.
func Space1() Parser[string] {
	return TakeWhile1("space", isSpace)
}

// Multispace0 skips spaces, tabs and line endings.
func Multispace0() Parser[string] {
	return TakeWhile0(isMultispace)
}

// LineEnding matches "\n" or "\r\n".
func LineEnding() Parser[string] {
	return Alt(Tag("\n"), Tag("\r\n"))
}

// EOF succeeds only when the input is exhausted.
func EOF() Parser[struct{}] {
	return func(in Input) (struct{}, Input, error) {
		if !in.AtEOF() {
			return struct{}{}, in, fail(in, ErrTrailing, "end of input")
		}
		return struct{}{}, in, nil
	}
}

// Int64 matches an optional '-' followed by decimal digits.
func Int64() Parser[int64] {
	return signed(64)
}

// Int32 is Int64 restricted to the int32 range.
func Int32() Parser[int32] {
	return Map(signed(32), func(n int64) int32 { return int32(n) })
}

// Int matches a signed integer sized to the platform int.
func Int() Parser[int] {
	return Map(signed(strconv.IntSize), func(n int64) int { return int(n) })
}

// Uint32 matches decimal digits without a sign.
func Uint32() Parser[uint32] {
	return Map(unsigned(32), func(n uint64) uint32 { return uint32(n) })
}

// Uint64 matches decimal digits without a sign.
func Uint64() Parser[uint64] {
	return unsigned(64)
}

func signed(bits int) Parser[int64] {
	text := Recognize(Pair(Opt(Char('-')), Digit1()))
	return func(in Input) (int64, Input, error) {
		s, out, err := text(in)
		if err != nil {
			return 0, in, fail(in, ErrDigit, "integer")
		}
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, in, fail(in, ErrDigit, "integer")
		}
		return n, out, nil
	}
}

func unsigned(bits int) Parser[uint64] {
	return func(in Input) (uint64, Input, error) {
		s, out, err := Digit1()(in)
		if err != nil {
			return 0, in, fail(in, ErrDigit, "unsigned integer")
		}
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return 0, in, fail(in, ErrDigit, "unsigned integer")
		}
		return n, out, nil
	}
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return isLower(b) || (b >= 'A' && b <= 'Z') }
func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func isMultispace(b byte) bool {
	return isSpace(b) || b == '\n' || b == '\r'
}
