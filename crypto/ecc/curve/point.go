// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"github.com/tobysharp/btcdev/common/math/wide"
)

// Point is an affine curve point. (0, 0) is the point at infinity; New
// refuses curves on which (0, 0) is a real point.
type Point struct {
	X, Y FieldVal
}

// Group is the capability set of the curve's point group.
type Group interface {
	Infinity() Point
	Neg(p Point) Point
	Add(p, q Point) Point
	Double(p Point) Point
	ScalarMult(k wide.Uint, p Point) Point
}

var _ Group = (*Curve)(nil)

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

func (p Point) String() string {
	if p.IsInfinity() {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Infinity returns the identity element.
func (c *Curve) Infinity() Point {
	return Point{X: c.Fp.Zero(), Y: c.Fp.Zero()}
}

// NewPoint returns the point (x, y) after checking that both coordinates are
// below p and that the point is on the curve.
func (c *Curve) NewPoint(x, y wide.Uint) (Point, error) {
	if !c.Fp.Contains(x) {
		return Point{}, makeError(ErrPubKeyXTooBig, "x coordinate is not below the field prime")
	}
	if !c.Fp.Contains(y) {
		return Point{}, makeError(ErrPubKeyYTooBig, "y coordinate is not below the field prime")
	}
	p := Point{X: c.Fp.FromUint(x), Y: c.Fp.FromUint(y)}
	if p.IsInfinity() {
		return Point{}, makeError(ErrPubKeyInfinity, "point is the point at infinity")
	}
	if !c.IsOnCurve(p) {
		return Point{}, makeError(ErrPubKeyNotOnCurve,
			fmt.Sprintf("point (%s, %s) is not on the curve", x, y))
	}
	return p, nil
}

// Neg returns -p.
func (c *Curve) Neg(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return Point{X: p.X, Y: c.Fp.Neg(p.Y)}
}

// Add returns p+q.
func (c *Curve) Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	fp := c.Fp
	if !p.X.Equal(q.X) {
		// The denominator is nonzero because the x coordinates differ.
		lambda, _ := fp.Div(fp.Sub(q.Y, p.Y), fp.Sub(q.X, p.X))
		return c.chord(lambda, p, q)
	}
	if p.Y.Equal(fp.Neg(q.Y)) {
		return c.Infinity()
	}
	return c.Double(p)
}

// Double returns p+p.
func (c *Curve) Double(p Point) Point {
	if p.IsInfinity() || p.Y.IsZero() {
		return c.Infinity()
	}
	fp := c.Fp
	num := fp.Add(fp.Mul(fp.FromUint64(3), fp.Square(p.X)), c.A)
	lambda, _ := fp.Div(num, fp.Add(p.Y, p.Y))
	return c.chord(lambda, p, p)
}

// chord finishes an addition once the slope is known:
// x3 = lambda^2 - px - qx, y3 = lambda*(px - x3) - py.
func (c *Curve) chord(lambda FieldVal, p, q Point) Point {
	fp := c.Fp
	x3 := fp.Sub(fp.Sub(fp.Square(lambda), p.X), q.X)
	y3 := fp.Sub(fp.Mul(lambda, fp.Sub(p.X, x3)), p.Y)
	return Point{X: x3, Y: y3}
}

// ScalarMult returns k*p by double-and-add over the bits of k, least
// significant first. The running time depends on k.
func (c *Curve) ScalarMult(k wide.Uint, p Point) Point {
	acc := c.Infinity()
	power := p
	top := k.HighestBit()
	for i := 0; i <= top; i++ {
		if k.Bit(uint(i)) == 1 {
			acc = c.Add(acc, power)
		}
		if i < top {
			power = c.Double(power)
		}
	}
	return acc
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k wide.Uint) Point {
	return c.ScalarMult(k, c.G)
}
