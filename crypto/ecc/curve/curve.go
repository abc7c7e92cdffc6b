// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curve implements the affine group law of short-Weierstrass curves
// y^2 = x^3 + a*x + b over a prime field, and the secp256k1 domain.
package curve

import (
	"fmt"

	"github.com/tobysharp/btcdev/common/math/wide"
	"github.com/tobysharp/btcdev/crypto/ecc/field"
)

// Coord tags the coordinate field, integers modulo the curve prime p.
type Coord struct{}

// Order tags the scalar field, integers modulo the group order n.
type Order struct{}

// FieldVal is a coordinate field element.
type FieldVal = field.Element[Coord]

// ScalarVal is a scalar field element.
type ScalarVal = field.Element[Order]

// Params are the raw domain parameters of a curve.
type Params struct {
	Name   string
	P      wide.Uint
	A, B   wide.Uint
	Gx, Gy wide.Uint
	N      wide.Uint
	H      uint64
}

// Curve is an immutable, validated curve domain. It is safe for concurrent
// use.
type Curve struct {
	Name string

	// Fp is the coordinate field, Fn the scalar field.
	Fp *field.Field[Coord]
	Fn *field.Field[Order]

	A, B FieldVal
	G    Point
	H    uint64

	// BitSize is the width of the field prime.
	BitSize int
}

// New validates params and returns the curve they describe.
func New(params *Params) (*Curve, error) {
	fp, err := field.New[Coord](params.P)
	if err != nil {
		return nil, makeError(ErrInvalidDomain, fmt.Sprintf("%s: prime: %v", params.Name, err))
	}
	fn, err := field.New[Order](params.N)
	if err != nil {
		return nil, makeError(ErrInvalidDomain, fmt.Sprintf("%s: order: %v", params.Name, err))
	}
	for _, v := range []wide.Uint{params.A, params.B, params.Gx, params.Gy} {
		if !fp.Contains(v) {
			return nil, makeError(ErrInvalidDomain,
				fmt.Sprintf("%s: coefficient %s not below the prime", params.Name, v))
		}
	}
	c := &Curve{
		Name:    params.Name,
		Fp:      fp,
		Fn:      fn,
		A:       fp.FromUint(params.A),
		B:       fp.FromUint(params.B),
		H:       params.H,
		BitSize: int(params.P.Bits()),
	}
	// (0, 0) stands for the point at infinity, so it must not be a real
	// point of the curve. That is the case exactly when b != 0.
	if c.B.IsZero() {
		return nil, makeError(ErrInvalidDomain,
			fmt.Sprintf("%s: b = 0 puts (0, 0) on the curve", params.Name))
	}
	c.G = Point{X: fp.FromUint(params.Gx), Y: fp.FromUint(params.Gy)}
	if !c.IsOnCurve(c.G) || c.G.IsInfinity() {
		return nil, makeError(ErrInvalidDomain,
			fmt.Sprintf("%s: base point is not on the curve", params.Name))
	}
	if !c.ScalarMult(params.N, c.G).IsInfinity() {
		return nil, makeError(ErrInvalidDomain,
			fmt.Sprintf("%s: base point does not have order n", params.Name))
	}
	return c, nil
}

// N returns the group order.
func (c *Curve) N() wide.Uint {
	return c.Fn.Modulus()
}

// P returns the field prime.
func (c *Curve) P() wide.Uint {
	return c.Fp.Modulus()
}

// ByteLen is the length of one serialized coordinate.
func (c *Curve) ByteLen() int {
	return (c.BitSize + 7) / 8
}

// IsOnCurve reports whether p satisfies the curve equation. The point at
// infinity is on every curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	fp := c.Fp
	lhs := fp.Square(p.Y)
	rhs := fp.Mul(fp.Square(p.X), p.X)
	rhs = fp.Add(rhs, fp.Mul(c.A, p.X))
	rhs = fp.Add(rhs, c.B)
	return lhs.Equal(rhs)
}

// IsValidPublicKey reports whether p may be used as a public key: it is
// not infinity, both coordinates are canonical, it is on the curve, and it
// lies in the subgroup generated by G.
func (c *Curve) IsValidPublicKey(p Point) bool {
	if p.IsInfinity() {
		return false
	}
	if !c.Fp.Contains(p.X.Uint()) || !c.Fp.Contains(p.Y.Uint()) {
		return false
	}
	if !c.IsOnCurve(p) {
		return false
	}
	return c.ScalarMult(c.N(), p).IsInfinity()
}
