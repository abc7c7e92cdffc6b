// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	btcbase58 "github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobysharp/btcdev/common/encode/base58"
)

var stringTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{" ", "Z"},
	{"-", "n"},
	{"0", "q"},
	{"1", "r"},
	{"-1", "4SU"},
	{"11", "4k8"},
	{"abc", "ZiCa"},
	{"1234598760", "3mJr7AoUXx2Wqd"},
	{"abcdefghijklmnopqrstuvwxyz", "3yxU3u1igY8WkgtjK92fbJQCd4BZiiT1v25f"},
}

var hexTests = []struct {
	in  string
	out string
}{
	{"61", "2g"},
	{"626262", "a3gV"},
	{"636363", "aPEr"},
	{"00000000000000000000", "1111111111"},
	{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
	{"516b6fcd0f", "ABnLTmg"},
	{"572e4794", "3EFU7m"},
	{"10c8511e", "Rt5zm"},
}

func TestBase58(t *testing.T) {
	for x, test := range stringTests {
		assert.Equal(t, test.out, base58.Encode([]byte(test.in)), "Encode test #%d", x)
		got, err := base58.Decode(test.out)
		require.NoError(t, err)
		assert.Equal(t, test.in, string(got), "Decode test #%d", x)
	}
	for x, test := range hexTests {
		b, _ := hex.DecodeString(test.in)
		assert.Equal(t, test.out, base58.Encode(b), "Encode hex test #%d", x)
		got, err := base58.Decode(test.out)
		require.NoError(t, err)
		assert.Equal(t, b, got, "Decode hex test #%d", x)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "3mJr0", "abc\xff", "1 1"} {
		_, err := base58.Decode(s)
		assert.True(t, errors.Is(err, base58.ErrInvalidChar), s)
	}
}

func TestMatchesBtcutil(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		b := make([]byte, rng.Intn(40))
		rng.Read(b)
		// Leading zero runs are the interesting part of the encoding.
		if i%4 == 0 && len(b) > 2 {
			b[0], b[1] = 0, 0
		}
		enc := base58.Encode(b)
		require.Equal(t, btcbase58.Encode(b), enc, "%x", b)
		dec, err := base58.Decode(enc)
		require.NoError(t, err)
		require.True(t, bytes.Equal(b, dec), "%x != %x", b, dec)
	}
}
