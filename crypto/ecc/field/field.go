// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package field implements arithmetic modulo an odd prime on top of
// wide.Uint.
//
// A Field is tagged with a type parameter that has no runtime meaning. Two
// fields built with different tags produce element types that the compiler
// will not let you mix, which keeps curve coordinates and scalars apart even
// though both are 256-bit residues.
package field

import (
	"errors"

	"github.com/tobysharp/btcdev/common/math/wide"
)

var (
	// ErrInvalidModulus is returned by New when the modulus is even or too
	// small to be an odd prime.
	ErrInvalidModulus = errors.New("modulus must be an odd prime")

	// ErrNotInvertible is returned when the value shares a factor with the
	// modulus. For a prime modulus this only happens for zero.
	ErrNotInvertible = errors.New("value is not invertible")

	// ErrNotSquare is returned by Sqrt for quadratic non-residues.
	ErrNotSquare = errors.New("value is not a square")

	// ErrSqrtUnsupported is returned by Sqrt when the modulus is not 3 mod 4.
	ErrSqrtUnsupported = errors.New("square root needs a modulus that is 3 mod 4")
)

// Arithmetic is the capability set of a prime field over elements E.
type Arithmetic[E any] interface {
	Zero() E
	One() E
	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	Inverse(a E) (E, error)
	Div(a, b E) (E, error)
}

// Element is a residue in [0, p) of a field tagged T.
type Element[T any] struct {
	v wide.Uint
}

// Uint returns the residue as an integer of the field's width.
func (e Element[T]) Uint() wide.Uint {
	return e.v
}

// Bytes returns the big-endian encoding of the residue.
func (e Element[T]) Bytes() []byte {
	return e.v.Bytes()
}

// IsZero reports whether e is the additive identity.
func (e Element[T]) IsZero() bool {
	return e.v.IsZero()
}

// IsOdd reports whether the residue is odd.
func (e Element[T]) IsOdd() bool {
	return e.v.IsOdd()
}

// Equal reports whether e and o are the same residue.
func (e Element[T]) Equal(o Element[T]) bool {
	return e.v.Equal(o.v)
}

func (e Element[T]) String() string {
	return e.v.String()
}

// Field holds an odd prime modulus p.
type Field[T any] struct {
	p    wide.Uint
	bits uint

	// (p+1)/4 when p is 3 mod 4, used by Sqrt.
	sqrtExp wide.Uint
	hasSqrt bool
}

var _ Arithmetic[Element[struct{}]] = (*Field[struct{}])(nil)

// New returns the field of integers modulo p. The width of p sets the width
// of every element.
func New[T any](p wide.Uint) (*Field[T], error) {
	if p.Bits() == 0 || !p.IsOdd() || p.HighestBit() < 1 {
		return nil, ErrInvalidModulus
	}
	f := &Field[T]{p: p, bits: p.Bits()}
	if p.Bit(1) == 1 {
		f.sqrtExp = p.AddExtend(wide.FromUint64(1, 1)).Rsh(2).Truncate(f.bits)
		f.hasSqrt = true
	}
	return f, nil
}

// Modulus returns p.
func (f *Field[T]) Modulus() wide.Uint {
	return f.p
}

// Bits returns the width of p and of every element.
func (f *Field[T]) Bits() uint {
	return f.bits
}

// Contains reports whether x is already a canonical residue, that is x < p.
func (f *Field[T]) Contains(x wide.Uint) bool {
	return x.Cmp(f.p) < 0
}

// val returns the residue of e, treating an uninitialized element as zero.
func (f *Field[T]) val(e Element[T]) wide.Uint {
	if e.v.Bits() == 0 {
		return wide.New(f.bits)
	}
	return e.v
}

func (f *Field[T]) elem(x wide.Uint) Element[T] {
	return Element[T]{v: x}
}

// FromUint reduces x modulo p. x may have any width.
func (f *Field[T]) FromUint(x wide.Uint) Element[T] {
	if x.Bits() < f.bits {
		x = x.ZeroExtend(f.bits)
	}
	if x.Cmp(f.p) >= 0 {
		_, r, _ := x.DivQR(f.p)
		return f.elem(r)
	}
	return f.elem(x.Truncate(f.bits))
}

// FromUint64 returns v modulo p.
func (f *Field[T]) FromUint64(v uint64) Element[T] {
	bits := f.bits
	if bits < 64 {
		bits = 64
	}
	return f.FromUint(wide.FromUint64(bits, v))
}

// FromBytes interprets b as a big-endian integer and reduces it modulo p.
func (f *Field[T]) FromBytes(b []byte) Element[T] {
	bits := uint(len(b)) * 8
	if bits < f.bits {
		bits = f.bits
	}
	x, _ := wide.FromBytes(bits, b)
	return f.FromUint(x)
}

// FromHex parses a big-endian hex string no wider than the field and
// reduces it modulo p.
func (f *Field[T]) FromHex(s string) (Element[T], error) {
	x, err := wide.FromHex(f.bits, s)
	if err != nil {
		return Element[T]{}, err
	}
	return f.FromUint(x), nil
}

// Zero returns 0.
func (f *Field[T]) Zero() Element[T] {
	return f.elem(wide.New(f.bits))
}

// One returns 1.
func (f *Field[T]) One() Element[T] {
	return f.elem(wide.FromUint64(f.bits, 1))
}
