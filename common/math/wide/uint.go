// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wide implements fixed-width unsigned integers.
//
// A Uint carries its bit width with it. The value is stored as uint32 words
// in little word order (word 0 holds the least significant bits) and every
// bit at or above the width is kept at zero. All operations return a new
// value; none of them modify their receiver or arguments.
//
// Operations that change the width are explicit (Truncate, ZeroExtend,
// SignExtend, Resize, AddExtend, MulExtend). Asking for a width change in
// the wrong direction is a programming error and panics.
package wide

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// WordBits is the number of bits held by each storage word.
const WordBits = 32

var (
	// ErrDivisionByZero is returned by DivQR when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when a value does not fit the requested width.
	ErrOverflow = errors.New("value overflows bit width")
)

// Uint is an unsigned integer of a fixed number of bits.
type Uint struct {
	bits  uint
	words []uint32
}

func numWords(bits uint) int {
	return int((bits + WordBits - 1) / WordBits)
}

// highMask returns the mask for the most significant storage word.
func highMask(bits uint) uint32 {
	r := bits % WordBits
	if r == 0 {
		return 0xffffffff
	}
	return uint32(1)<<r - 1
}

// New returns a zero valued Uint of the given width.
func New(bits uint) Uint {
	if bits == 0 {
		panic("wide: zero bit width")
	}
	return Uint{bits: bits, words: make([]uint32, numWords(bits))}
}

// FromWords builds a Uint from little word order words. Words and bits
// beyond the width are dropped.
func FromWords(bits uint, words ...uint32) Uint {
	z := New(bits)
	copy(z.words, words)
	z.normalize()
	return z
}

// FromUint64 returns v as a Uint of the given width, truncated if needed.
func FromUint64(bits uint, v uint64) Uint {
	return FromWords(bits, uint32(v), uint32(v>>32))
}

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(bits uint, b []byte) (Uint, error) {
	z := New(bits)
	for i := 0; i < len(b); i++ {
		v := b[len(b)-1-i]
		if v == 0 {
			continue
		}
		w := i / 4
		if w >= len(z.words) {
			return Uint{}, ErrOverflow
		}
		z.words[w] |= uint32(v) << (8 * uint(i%4))
	}
	if z.words[len(z.words)-1]&^highMask(bits) != 0 {
		return Uint{}, ErrOverflow
	}
	return z, nil
}

// FromHex parses a big-endian hexadecimal string. An optional 0x prefix and
// embedded whitespace are accepted.
func FromHex(bits uint, s string) (Uint, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Uint{}, err
	}
	return FromBytes(bits, b)
}

// MustFromHex is like FromHex but panics on error. It is intended for
// constants.
func MustFromHex(bits uint, s string) Uint {
	z, err := FromHex(bits, s)
	if err != nil {
		panic(fmt.Sprintf("wide: bad constant %q: %v", s, err))
	}
	return z
}

// Random fills a Uint of the given width with words read from r.
func Random(r io.Reader, bits uint) (Uint, error) {
	z := New(bits)
	buf := make([]byte, 4*len(z.words))
	if _, err := io.ReadFull(r, buf); err != nil {
		return Uint{}, err
	}
	for i := range z.words {
		z.words[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	z.normalize()
	return z, nil
}

// normalize clears the bits above the width. It must only be used on
// values that have not been handed out yet.
func (z Uint) normalize() {
	if len(z.words) > 0 {
		z.words[len(z.words)-1] &= highMask(z.bits)
	}
}

func (a Uint) clone() Uint {
	z := Uint{bits: a.bits, words: make([]uint32, len(a.words))}
	copy(z.words, a.words)
	return z
}

// word returns the i'th storage word, or zero past the end.
func (a Uint) word(i int) uint32 {
	if i < len(a.words) {
		return a.words[i]
	}
	return 0
}

// Bits returns the declared width.
func (a Uint) Bits() uint {
	return a.bits
}

// Words returns a copy of the storage words in little word order.
func (a Uint) Words() []uint32 {
	w := make([]uint32, len(a.words))
	copy(w, a.words)
	return w
}

// Bytes returns the big-endian encoding padded to ceil(Bits/8) bytes.
func (a Uint) Bytes() []byte {
	n := int((a.bits + 7) / 8)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = byte(a.words[i/4] >> (8 * uint(i%4)))
	}
	return out
}

// Uint64 returns the low 64 bits.
func (a Uint) Uint64() uint64 {
	return uint64(a.word(1))<<32 | uint64(a.word(0))
}

// String returns the value as zero padded hex.
func (a Uint) String() string {
	return hex.EncodeToString(a.Bytes())
}

// IsZero reports whether every bit is clear.
func (a Uint) IsZero() bool {
	for _, w := range a.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsOdd reports whether bit 0 is set.
func (a Uint) IsOdd() bool {
	return len(a.words) > 0 && a.words[0]&1 == 1
}

// Cmp compares a and b as unsigned integers, regardless of their widths.
// It returns -1, 0 or +1.
func (a Uint) Cmp(b Uint) int {
	n := len(a.words)
	if len(b.words) > n {
		n = len(b.words)
	}
	for i := n - 1; i >= 0; i-- {
		x, y := a.word(i), b.word(i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b hold the same value.
func (a Uint) Equal(b Uint) bool {
	return a.Cmp(b) == 0
}
