// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobysharp/btcdev/common/math/wide"
)

type testTag struct{}

const (
	secpP = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	secpN = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

func newTestField(t *testing.T, hexP string) *Field[testTag] {
	f, err := New[testTag](wide.MustFromHex(256, hexP))
	require.NoError(t, err)
	return f
}

func toBig(e Element[testTag]) *big.Int {
	return new(big.Int).SetBytes(e.Bytes())
}

func randElem(rng *rand.Rand, f *Field[testTag]) Element[testTag] {
	x, err := wide.Random(rng, f.Bits())
	if err != nil {
		panic(err)
	}
	return f.FromUint(x)
}

func TestNewRejectsBadModulus(t *testing.T) {
	_, err := New[testTag](wide.FromUint64(16, 100))
	assert.Equal(t, ErrInvalidModulus, err)

	_, err = New[testTag](wide.FromUint64(8, 1))
	assert.Equal(t, ErrInvalidModulus, err)

	_, err = New[testTag](wide.Uint{})
	assert.Equal(t, ErrInvalidModulus, err)

	f, err := New[testTag](wide.FromUint64(8, 251))
	require.NoError(t, err)
	assert.Equal(t, uint(8), f.Bits())
}

func TestFromUintReduces(t *testing.T) {
	f := newTestField(t, secpP)
	p := f.Modulus()

	assert.True(t, f.FromUint(p).IsZero())
	assert.Equal(t, uint64(5), f.FromUint(p.AddExtend(wide.FromUint64(8, 5))).Uint().Uint64())
	assert.Equal(t, uint(256), f.FromUint(wide.FromUint64(8, 7)).Uint().Bits())
	assert.Equal(t, uint64(7), f.FromUint64(7).Uint().Uint64())

	// A 512-bit value reduces through division.
	x := wide.MustFromHex(512, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"+
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	want := new(big.Int).Mod(new(big.Int).SetBytes(x.Bytes()), new(big.Int).SetBytes(p.Bytes()))
	assert.Equal(t, 0, want.Cmp(toBig(f.FromUint(x))))
}

func TestFieldClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, hexP := range []string{secpP, secpN} {
		f := newTestField(t, hexP)
		p := new(big.Int).SetBytes(f.Modulus().Bytes())
		for i := 0; i < 40; i++ {
			a, b := randElem(rng, f), randElem(rng, f)
			x, y := toBig(a), toBig(b)

			sum := f.Add(a, b)
			assert.True(t, f.Contains(sum.Uint()))
			assert.Equal(t, 0, new(big.Int).Mod(new(big.Int).Add(x, y), p).Cmp(toBig(sum)))

			diff := f.Sub(a, b)
			assert.True(t, f.Contains(diff.Uint()))
			assert.Equal(t, 0, new(big.Int).Mod(new(big.Int).Sub(x, y), p).Cmp(toBig(diff)))

			prod := f.Mul(a, b)
			assert.True(t, f.Contains(prod.Uint()))
			assert.Equal(t, 0, new(big.Int).Mod(new(big.Int).Mul(x, y), p).Cmp(toBig(prod)))

			assert.True(t, f.Add(a, f.Neg(a)).IsZero())
			assert.True(t, f.Add(f.Half(a), f.Half(a)).Equal(a))
		}
	}
}

func TestEdgeValues(t *testing.T) {
	f := newTestField(t, secpP)
	pm1 := f.FromUint(f.Modulus().Sub(wide.FromUint64(1, 1)))

	assert.True(t, f.Add(pm1, f.One()).IsZero())
	assert.True(t, f.Sub(f.Zero(), f.One()).Equal(pm1))
	assert.True(t, f.Mul(pm1, pm1).Equal(f.One()))
	assert.True(t, f.Neg(f.Zero()).IsZero())

	// Uninitialized elements behave as zero.
	var z Element[testTag]
	assert.True(t, f.Add(z, f.One()).Equal(f.One()))
	assert.True(t, f.Mul(z, pm1).IsZero())
}

func TestInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, hexP := range []string{secpP, secpN} {
		f := newTestField(t, hexP)
		for i := 0; i < 20; i++ {
			a := randElem(rng, f)
			if a.IsZero() {
				continue
			}
			inv, err := f.Inverse(a)
			require.NoError(t, err)
			assert.True(t, f.Mul(a, inv).Equal(f.One()), "a=%s", a)

			q, err := f.Div(f.One(), a)
			require.NoError(t, err)
			assert.True(t, q.Equal(inv))
		}
	}

	f := newTestField(t, secpP)
	_, err := f.Inverse(f.Zero())
	assert.Equal(t, ErrNotInvertible, err)
	_, err = f.Div(f.One(), f.Zero())
	assert.Equal(t, ErrNotInvertible, err)
}

func TestInverseCompositeModulus(t *testing.T) {
	// 15 is odd but not prime; 6 shares the factor 3.
	f, err := New[testTag](wide.FromUint64(8, 15))
	require.NoError(t, err)

	_, err = f.Inverse(f.FromUint64(6))
	assert.Equal(t, ErrNotInvertible, err)

	inv, err := f.Inverse(f.FromUint64(7))
	require.NoError(t, err)
	assert.Equal(t, uint64(13), inv.Uint().Uint64())
}

func TestExpAndSqrt(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	f := newTestField(t, secpP)

	assert.True(t, f.Exp(f.FromUint64(3), wide.FromUint64(8, 5)).Equal(f.FromUint64(243)))
	assert.True(t, f.Exp(f.FromUint64(3), wide.New(8)).Equal(f.One()))

	for i := 0; i < 10; i++ {
		a := randElem(rng, f)
		sq := f.Square(a)
		r, err := f.Sqrt(sq)
		require.NoError(t, err)
		assert.True(t, r.Equal(a) || r.Equal(f.Neg(a)))
	}

	// -1 is not a square when p is 3 mod 4.
	_, err := f.Sqrt(f.Neg(f.One()))
	assert.Equal(t, ErrNotSquare, err)

	g, err := New[testTag](wide.FromUint64(8, 13))
	require.NoError(t, err)
	_, err = g.Sqrt(g.FromUint64(4))
	assert.Equal(t, ErrSqrtUnsupported, err)
}
