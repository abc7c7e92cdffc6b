// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wide

import "fmt"

func maxBits(a, b Uint) uint {
	if a.bits > b.bits {
		return a.bits
	}
	return b.bits
}

// AddWithCarry returns a+b at the wider of the two widths, and whether the
// true sum overflowed that width.
func (a Uint) AddWithCarry(b Uint) (Uint, bool) {
	bits := maxBits(a, b)
	z := New(bits)
	var carry uint64
	for i := range z.words {
		s := uint64(a.word(i)) + uint64(b.word(i)) + carry
		z.words[i] = uint32(s)
		carry = s >> WordBits
	}
	overflow := carry != 0 || z.words[len(z.words)-1]&^highMask(bits) != 0
	z.normalize()
	return z, overflow
}

// Add returns a+b at the wider of the two widths, discarding any carry.
func (a Uint) Add(b Uint) Uint {
	z, _ := a.AddWithCarry(b)
	return z
}

// AddExtend returns a+b one bit wider than the wider operand. It never
// overflows.
func (a Uint) AddExtend(b Uint) Uint {
	z, _ := a.ZeroExtend(maxBits(a, b) + 1).AddWithCarry(b)
	return z
}

// TwosComplement returns 2^Bits - a, truncated to the width.
func (a Uint) TwosComplement() Uint {
	z := New(a.bits)
	for i, w := range a.words {
		z.words[i] = ^w
	}
	z.normalize()
	return z.Add(FromUint64(1, 1))
}

// Sub returns a-b at the wider of the two widths, wrapping on underflow.
// Callers that need modular subtraction add the modulus back themselves.
func (a Uint) Sub(b Uint) Uint {
	bits := maxBits(a, b)
	return a.Resize(bits).Add(b.Resize(bits).TwosComplement())
}

// MulExtend returns the exact product a*b with width Bits(a)+Bits(b).
func (a Uint) MulExtend(b Uint) Uint {
	z := New(a.bits + b.bits)
	for i, x := range a.words {
		if x == 0 {
			continue
		}
		var carry uint64
		for j, y := range b.words {
			t := uint64(x)*uint64(y) + uint64(z.words[i+j]) + carry
			z.words[i+j] = uint32(t)
			carry = t >> WordBits
		}
		for k := i + len(b.words); carry != 0 && k < len(z.words); k++ {
			t := uint64(z.words[k]) + carry
			z.words[k] = uint32(t)
			carry = t >> WordBits
		}
	}
	z.normalize()
	return z
}

// DivQR divides a by b. The quotient has the width of a and the remainder
// the width of b. The divisor must not be wider than the dividend.
//
// This is binary restoring division: the running remainder is shifted left,
// the next dividend bit is brought in, and the divisor is subtracted when it
// fits. The running remainder is kept one bit wider than the divisor; the
// comparison has to see that extra bit, so it is only dropped at the end.
func (a Uint) DivQR(b Uint) (q, r Uint, err error) {
	if b.bits > a.bits {
		panic(fmt.Sprintf("wide: divisor of %d bits wider than dividend of %d", b.bits, a.bits))
	}
	if b.IsZero() {
		return Uint{}, Uint{}, ErrDivisionByZero
	}
	q = New(a.bits)
	rem := New(b.bits + 1)
	div := b.ZeroExtend(b.bits + 1)
	for i := int(a.bits) - 1; i >= 0; i-- {
		rem.shiftInBit(uint32(a.Bit(uint(i))))
		if rem.Cmp(div) >= 0 {
			rem.subInPlace(div)
			q.words[i/WordBits] |= 1 << (uint(i) % WordBits)
		}
	}
	return q, rem.Truncate(b.bits), nil
}

// shiftInBit shifts z left by one in place and sets bit 0 to bit.
func (z Uint) shiftInBit(bit uint32) {
	carry := bit
	for i, w := range z.words {
		z.words[i] = w<<1 | carry
		carry = w >> (WordBits - 1)
	}
	z.normalize()
}

// subInPlace sets z to z-x. The caller guarantees z >= x.
func (z Uint) subInPlace(x Uint) {
	var borrow uint64
	for i := range z.words {
		d := uint64(z.words[i]) - uint64(x.word(i)) - borrow
		z.words[i] = uint32(d)
		borrow = d >> 63
	}
}
