// Package particle parses particle descriptions such as
// "p=<3,0,0>, v=<2,0,0>, a=<-1,0,0>" and simulates them.
package particle

import (
	"fmt"

	"github.com/aretw0/duet/pkg/parse"
)

// Vec3 is an integer point or vector.
type Vec3 struct {
	X, Y, Z int64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Scale(k int64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Manhattan returns |X|+|Y|+|Z|.
func (v Vec3) Manhattan() int64 {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

func (v Vec3) String() string { return fmt.Sprintf("<%d,%d,%d>", v.X, v.Y, v.Z) }

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Particle has a position, a velocity and a constant acceleration.
type Particle struct {
	P, V, A Vec3
}

func (p Particle) String() string {
	return fmt.Sprintf("p=%s, v=%s, a=%s", p.P, p.V, p.A)
}

// PositionAt returns twice the position after t ticks. Each tick adds A to
// V and then V to P, so the position is P + V*t + A*t*(t+1)/2; doubling
// keeps it integral.
func (p Particle) PositionAt(t int64) Vec3 {
	return p.A.Scale(t * t).Add(p.A.Add(p.V.Scale(2)).Scale(t)).Add(p.P.Scale(2))
}

var number = parse.Delimited(parse.Space0(), parse.Int64(), parse.Space0())

var triplet parse.Parser[Vec3] = func(in parse.Input) (Vec3, parse.Input, error) {
	s := parse.Begin(in)
	parse.Skip(s, parse.Char('<'))
	x := parse.Run(s, number)
	parse.Skip(s, parse.Char(','))
	y := parse.Run(s, number)
	parse.Skip(s, parse.Char(','))
	z := parse.Run(s, number)
	parse.Skip(s, parse.Char('>'))
	return parse.Finish(s, Vec3{x, y, z})
}

var line parse.Parser[Particle] = func(in parse.Input) (Particle, parse.Input, error) {
	s := parse.Begin(in)
	parse.Skip(s, parse.Tag("p="))
	p := parse.Run(s, triplet)
	parse.Skip(s, parse.Tag(", v="))
	v := parse.Run(s, triplet)
	parse.Skip(s, parse.Tag(", a="))
	a := parse.Run(s, triplet)
	return parse.Finish(s, Particle{P: p, V: v, A: a})
}

// ParseLine decodes one particle.
func ParseLine(text string) (Particle, error) {
	return parse.Complete(line, text)
}

// Parse decodes every particle in order. A malformed line fails the parse
// since particle indices must match line numbers.
func Parse(input string) ([]Particle, error) {
	return parse.Strict(line, input)
}
