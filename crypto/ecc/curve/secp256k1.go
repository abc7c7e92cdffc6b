// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"sync"

	"github.com/tobysharp/btcdev/common/math/wide"
)

// Secp256k1Params are the SEC 2 parameters of secp256k1.
func Secp256k1Params() *Params {
	return &Params{
		Name: "secp256k1",
		P:    wide.MustFromHex(256, "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE FFFFFC2F"),
		A:    wide.New(256),
		B:    wide.FromUint64(256, 7),
		Gx:   wide.MustFromHex(256, "79BE667E F9DCBBAC 55A06295 CE870B07 029BFCDB 2DCE28D9 59F2815B 16F81798"),
		Gy:   wide.MustFromHex(256, "483ADA77 26A3C465 5DA4FBFC 0E1108A8 FD17B448 A6855419 9C47D08F FB10D4B8"),
		N:    wide.MustFromHex(256, "FFFFFFFF FFFFFFFF FFFFFFFF FFFFFFFE BAAEDCE6 AF48A03B BFD25E8C D0364141"),
		H:    1,
	}
}

var (
	initonce sync.Once
	s256     *Curve
)

// S256 returns the secp256k1 curve. It is built and validated on first use
// and shared afterwards.
func S256() *Curve {
	initonce.Do(func() {
		c, err := New(Secp256k1Params())
		if err != nil {
			panic(err)
		}
		s256 = c
	})
	return s256
}
