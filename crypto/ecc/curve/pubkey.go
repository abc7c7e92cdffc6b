// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"github.com/tobysharp/btcdev/common/math/wide"
)

const (
	pubkeyCompressed   byte = 0x2
	pubkeyUncompressed byte = 0x4
)

// PubKeyBytesLenCompressed returns the length of a compressed point.
func (c *Curve) PubKeyBytesLenCompressed() int {
	return 1 + c.ByteLen()
}

// PubKeyBytesLenUncompressed returns the length of an uncompressed point.
func (c *Curve) PubKeyBytesLenUncompressed() int {
	return 1 + 2*c.ByteLen()
}

// SerializeCompressed encodes p as 0x02 or 0x03 (the parity of y) followed
// by x.
func (c *Curve) SerializeCompressed(p Point) []byte {
	b := make([]byte, 0, c.PubKeyBytesLenCompressed())
	format := pubkeyCompressed
	if p.Y.IsOdd() {
		format |= 0x1
	}
	b = append(b, format)
	return append(b, c.Fp.FromUint(p.X.Uint()).Bytes()...)
}

// SerializeUncompressed encodes p as 0x04 followed by x and y.
func (c *Curve) SerializeUncompressed(p Point) []byte {
	b := make([]byte, 0, c.PubKeyBytesLenUncompressed())
	b = append(b, pubkeyUncompressed)
	b = append(b, c.Fp.FromUint(p.X.Uint()).Bytes()...)
	return append(b, c.Fp.FromUint(p.Y.Uint()).Bytes()...)
}

// ParsePubKey decodes a compressed or uncompressed public key and checks
// that it is a point on the curve.
func (c *Curve) ParsePubKey(b []byte) (Point, error) {
	n := c.ByteLen()
	switch len(b) {
	case c.PubKeyBytesLenUncompressed():
		if b[0] != pubkeyUncompressed {
			return Point{}, makeError(ErrPubKeyInvalidFormat,
				fmt.Sprintf("invalid public key: unsupported format: %x", b[0]))
		}
		x, err := wide.FromBytes(uint(c.BitSize), b[1:1+n])
		if err != nil {
			return Point{}, makeError(ErrPubKeyXTooBig, "invalid public key: x exceeds the field width")
		}
		y, err := wide.FromBytes(uint(c.BitSize), b[1+n:])
		if err != nil {
			return Point{}, makeError(ErrPubKeyYTooBig, "invalid public key: y exceeds the field width")
		}
		return c.NewPoint(x, y)

	case c.PubKeyBytesLenCompressed():
		format := b[0]
		if format&^0x1 != pubkeyCompressed {
			return Point{}, makeError(ErrPubKeyInvalidFormat,
				fmt.Sprintf("invalid public key: unsupported format: %x", format))
		}
		x, err := wide.FromBytes(uint(c.BitSize), b[1:])
		if err != nil || !c.Fp.Contains(x) {
			return Point{}, makeError(ErrPubKeyXTooBig, "invalid public key: x is not below the field prime")
		}
		return c.decompress(x, format&0x1 == 1)

	default:
		return Point{}, makeError(ErrPubKeyInvalidLen,
			fmt.Sprintf("malformed public key: invalid length: %d", len(b)))
	}
}

// decompress recovers y from x and the parity bit.
func (c *Curve) decompress(x wide.Uint, odd bool) (Point, error) {
	fp := c.Fp
	xv := fp.FromUint(x)
	rhs := fp.Add(fp.Add(fp.Mul(fp.Square(xv), xv), fp.Mul(c.A, xv)), c.B)
	y, err := fp.Sqrt(rhs)
	if err != nil {
		return Point{}, makeError(ErrPubKeyNotOnCurve,
			fmt.Sprintf("invalid public key: x coordinate %s is not on the curve", x))
	}
	if y.IsOdd() != odd {
		y = fp.Neg(y)
	}
	return c.NewPoint(x, y.Uint())
}
