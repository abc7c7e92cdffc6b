// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements the modified base58 encoding used by Bitcoin
// addresses and private keys, and its checksummed Base58Check form.
package base58

import (
	"errors"
	"fmt"

	"github.com/tobysharp/btcdev/common/math/wide"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const alphabetIdx0 = '1'

// ErrInvalidChar is returned when a string contains a character outside the
// base58 alphabet.
var ErrInvalidChar = errors.New("invalid base58 character")

var b58 = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 255
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return t
}()

var radix = wide.FromUint64(8, 58)

// Encode encodes a byte slice to a modified base58 string. Every leading
// zero byte becomes a leading '1'.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}
	var digits []byte
	if rest := b[zeros:]; len(rest) > 0 {
		x, _ := wide.FromBytes(uint(len(rest))*8, rest)
		for !x.IsZero() {
			q, r, _ := x.DivQR(radix)
			digits = append(digits, alphabet[r.Uint64()])
			x = q
		}
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = alphabetIdx0
	}
	for i, d := range digits {
		out[len(out)-1-i] = d
	}
	return string(out)
}

// Decode decodes a modified base58 string to a byte slice.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabetIdx0 {
		zeros++
	}
	rest := s[zeros:]
	if len(rest) == 0 {
		return make([]byte, zeros), nil
	}

	// 58^k < 2^(6k)
	width := uint(len(rest)) * 6
	acc := wide.New(width)
	for i := 0; i < len(rest); i++ {
		d := b58[rest[i]]
		if d == 255 {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidChar, rest[i], zeros+i)
		}
		acc = acc.MulExtend(radix).Truncate(width).Add(wide.FromUint64(width, uint64(d)))
	}

	val := acc.Bytes()
	for len(val) > 0 && val[0] == 0 {
		val = val[1:]
	}
	out := make([]byte, zeros, zeros+len(val))
	return append(out, val...), nil
}
