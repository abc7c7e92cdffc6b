// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import "github.com/tobysharp/btcdev/common/math/wide"

// Add returns a+b mod p. Both inputs are below p, so the sum is below 2p
// and one conditional subtraction is enough.
func (f *Field[T]) Add(a, b Element[T]) Element[T] {
	s := f.val(a).AddExtend(f.val(b))
	if s.Cmp(f.p) >= 0 {
		s = s.Sub(f.p)
	}
	return f.elem(s.Truncate(f.bits))
}

// Sub returns a-b mod p.
func (f *Field[T]) Sub(a, b Element[T]) Element[T] {
	x, y := f.val(a), f.val(b)
	if x.Cmp(y) < 0 {
		return f.elem(x.AddExtend(f.p).Sub(y).Truncate(f.bits))
	}
	return f.elem(x.Sub(y))
}

// Neg returns -a mod p.
func (f *Field[T]) Neg(a Element[T]) Element[T] {
	return f.Sub(f.Zero(), a)
}

// Mul returns a*b mod p.
func (f *Field[T]) Mul(a, b Element[T]) Element[T] {
	_, r, _ := f.val(a).MulExtend(f.val(b)).DivQR(f.p)
	return f.elem(r)
}

// Square returns a*a mod p.
func (f *Field[T]) Square(a Element[T]) Element[T] {
	return f.Mul(a, a)
}

// Half returns a/2 mod p. An odd residue has p added first, which makes the
// shift exact.
func (f *Field[T]) Half(a Element[T]) Element[T] {
	x := f.val(a)
	if !x.IsOdd() {
		return f.elem(x.Rsh(1))
	}
	return f.elem(x.AddExtend(f.p).Rsh(1).Truncate(f.bits))
}

// Inverse returns a^-1 mod p using the binary extended Euclidean algorithm.
//
// The pair (aa, bb) starts at (a, p) and is driven towards (0, gcd). The
// coefficients keep aa = uu*a and bb = vv*a mod p throughout, so when the
// gcd is 1, vv is the inverse.
func (f *Field[T]) Inverse(a Element[T]) (Element[T], error) {
	aa := f.val(a)
	bb := f.p
	uu := f.One()
	vv := f.Zero()
	for !aa.IsZero() {
		if !aa.IsOdd() {
			aa = aa.Rsh(1)
			uu = f.Half(uu)
			continue
		}
		if aa.Cmp(bb) < 0 {
			aa, bb = bb, aa
			uu, vv = vv, uu
		}
		aa = aa.Sub(bb).Rsh(1)
		uu = f.Half(f.Sub(uu, vv))
	}
	if !bb.Equal(wide.FromUint64(1, 1)) {
		return Element[T]{}, ErrNotInvertible
	}
	return vv, nil
}

// Div returns a/b mod p.
func (f *Field[T]) Div(a, b Element[T]) (Element[T], error) {
	inv, err := f.Inverse(b)
	if err != nil {
		return Element[T]{}, err
	}
	return f.Mul(a, inv), nil
}

// Exp returns a^e mod p by square-and-multiply over the bits of e.
func (f *Field[T]) Exp(a Element[T], e wide.Uint) Element[T] {
	result := f.One()
	power := f.elem(f.val(a))
	for i := 0; i <= e.HighestBit(); i++ {
		if e.Bit(uint(i)) == 1 {
			result = f.Mul(result, power)
		}
		power = f.Square(power)
	}
	return result
}

// Sqrt returns a square root of a for moduli that are 3 mod 4.
func (f *Field[T]) Sqrt(a Element[T]) (Element[T], error) {
	if !f.hasSqrt {
		return Element[T]{}, ErrSqrtUnsupported
	}
	r := f.Exp(a, f.sqrtExp)
	if !f.Square(r).Equal(f.elem(f.val(a))) {
		return Element[T]{}, ErrNotSquare
	}
	return r, nil
}
