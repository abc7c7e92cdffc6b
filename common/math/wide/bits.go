// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wide

import "fmt"

// Exp2 returns 2^n as a Uint of the given width.
func Exp2(bits, n uint) Uint {
	if n >= bits {
		panic(fmt.Sprintf("wide: 2^%d does not fit in %d bits", n, bits))
	}
	z := New(bits)
	z.words[n/WordBits] = 1 << (n % WordBits)
	return z
}

// Bit returns the value of bit i. Bits past the width read as zero.
func (a Uint) Bit(i uint) uint {
	if i >= a.bits {
		return 0
	}
	return uint(a.words[i/WordBits]>>(i%WordBits)) & 1
}

// SetBit returns a copy of a with bit i set to v (0 or 1).
func (a Uint) SetBit(i uint, v uint) Uint {
	if i >= a.bits {
		panic(fmt.Sprintf("wide: bit %d out of range for %d bits", i, a.bits))
	}
	z := a.clone()
	m := uint32(1) << (i % WordBits)
	if v&1 == 1 {
		z.words[i/WordBits] |= m
	} else {
		z.words[i/WordBits] &^= m
	}
	return z
}

// HighestBit returns the index of the most significant set bit, or -1 if
// a is zero.
func (a Uint) HighestBit() int {
	for i := len(a.words) - 1; i >= 0; i-- {
		w := a.words[i]
		if w == 0 {
			continue
		}
		n := 0
		for w > 1 {
			w >>= 1
			n++
		}
		return i*WordBits + n
	}
	return -1
}

// Truncate drops the bits at and above position n.
func (a Uint) Truncate(n uint) Uint {
	if n > a.bits {
		panic(fmt.Sprintf("wide: cannot truncate %d bits to %d", a.bits, n))
	}
	return FromWords(n, a.words...)
}

// ZeroExtend widens a to n bits, filling with zeros.
func (a Uint) ZeroExtend(n uint) Uint {
	if n < a.bits {
		panic(fmt.Sprintf("wide: cannot zero-extend %d bits to %d", a.bits, n))
	}
	z := New(n)
	copy(z.words, a.words)
	return z
}

// SignExtend widens a to n bits, copying its top bit into the new bits.
func (a Uint) SignExtend(n uint) Uint {
	if n < a.bits {
		panic(fmt.Sprintf("wide: cannot sign-extend %d bits to %d", a.bits, n))
	}
	z := a.ZeroExtend(n)
	if a.Bit(a.bits-1) == 1 {
		for i := a.bits; i < n; i++ {
			z.words[i/WordBits] |= 1 << (i % WordBits)
		}
	}
	return z
}

// Resize truncates or zero-extends a to n bits.
func (a Uint) Resize(n uint) Uint {
	if n < a.bits {
		return a.Truncate(n)
	}
	return a.ZeroExtend(n)
}

// Lsh shifts a left by n bits, keeping the width. Bits shifted past the
// width are lost.
func (a Uint) Lsh(n uint) Uint {
	z := New(a.bits)
	ws, bs := int(n/WordBits), n%WordBits
	for i := len(z.words) - 1; i >= ws; i-- {
		v := a.words[i-ws] << bs
		if bs > 0 && i-ws-1 >= 0 {
			v |= a.words[i-ws-1] >> (WordBits - bs)
		}
		z.words[i] = v
	}
	z.normalize()
	return z
}

// Rsh shifts a right by n bits, keeping the width.
func (a Uint) Rsh(n uint) Uint {
	z := New(a.bits)
	ws, bs := int(n/WordBits), n%WordBits
	for i := 0; i+ws < len(a.words); i++ {
		v := a.words[i+ws] >> bs
		if bs > 0 && i+ws+1 < len(a.words) {
			v |= a.words[i+ws+1] << (WordBits - bs)
		}
		z.words[i] = v
	}
	return z
}
