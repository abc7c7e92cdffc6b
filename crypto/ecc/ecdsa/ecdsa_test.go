package ecdsa

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobysharp/btcdev/common/hash/btc"
	"github.com/tobysharp/btcdev/common/math/wide"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/crypto/ecc/der"
	"github.com/tobysharp/btcdev/metrics"
)

const (
	vectorKey        = "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"
	vectorCompressed = "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352"
)

// scalarReader returns a reader that makes wide.Random produce vs in order.
func scalarReader(vs ...wide.Uint) *bytes.Reader {
	var buf []byte
	for _, v := range vs {
		for _, w := range v.Words() {
			buf = binary.LittleEndian.AppendUint32(buf, w)
		}
	}
	return bytes.NewReader(buf)
}

func vectorPrivKey(t *testing.T) *PrivateKey {
	b, _ := hex.DecodeString(vectorKey)
	priv, err := PrivKeyFromBytes(curve.S256(), b)
	require.NoError(t, err)
	return priv
}

func TestPrivKeyFromBytes(t *testing.T) {
	priv := vectorPrivKey(t)
	assert.Equal(t, vectorKey, hex.EncodeToString(priv.Serialize()))
	assert.Equal(t, vectorCompressed, hex.EncodeToString(priv.PubKey().SerializeCompressed()))

	c := curve.S256()
	_, err := PrivKeyFromBytes(c, make([]byte, 32))
	assert.True(t, errors.Is(err, ErrInvalidPrivateKey))
	_, err = PrivKeyFromBytes(c, c.N().Bytes())
	assert.True(t, errors.Is(err, ErrInvalidPrivateKey))
	_, err = PrivKeyFromBytes(c, bytes.Repeat([]byte{0x01}, 33))
	assert.True(t, errors.Is(err, ErrInvalidPrivateKey))

	pub, err := ParsePubKey(c, priv.PubKey().SerializeUncompressed())
	require.NoError(t, err)
	assert.True(t, pub.IsEqual(priv.PubKey()))
}

func TestGenerateKeyRejectsOutOfRange(t *testing.T) {
	c := curve.S256()
	n := c.N()
	one := wide.FromUint64(256, 1)
	r := scalarReader(wide.New(256), n, n.Add(one), one)

	priv, err := GenerateKey(c, r)
	require.NoError(t, err)
	assert.True(t, priv.D.Uint().Equal(one))
	assert.True(t, priv.Point.Equal(c.G))
	assert.Equal(t, 0, r.Len())

	_, err = GenerateKey(c, bytes.NewReader(make([]byte, 31)))
	assert.Error(t, err)
}

func TestSignVerify(t *testing.T) {
	c := curve.S256()
	rng := rand.New(rand.NewSource(7))
	msgs := [][]byte{[]byte("abc"), {}, bytes.Repeat([]byte{0xa5}, 200)}
	for i, msg := range msgs {
		priv, err := GenerateKey(c, rng)
		require.NoError(t, err)
		sig, err := priv.Sign(msg, btc.HashB, rng)
		require.NoError(t, err)

		n := c.N()
		assert.False(t, sig.R.IsZero())
		assert.False(t, sig.S.IsZero())
		assert.Equal(t, -1, sig.R.Cmp(n))
		assert.Equal(t, -1, sig.S.Cmp(n))
		assert.True(t, priv.PubKey().Verify(msg, sig, btc.HashB), "test %d: %s", i, spew.Sdump(sig))
	}
}

func TestVerifyRejects(t *testing.T) {
	c := curve.S256()
	rng := rand.New(rand.NewSource(11))
	priv := vectorPrivKey(t)
	msg := []byte("abc")
	sig, err := Sign(priv, msg, btc.HashB, rng)
	require.NoError(t, err)
	require.True(t, Verify(priv.PubKey(), msg, sig, btc.HashB))

	other, err := GenerateKey(c, rng)
	require.NoError(t, err)
	n := c.N()

	tests := []struct {
		name string
		pub  *PublicKey
		msg  []byte
		sig  *Signature
	}{
		{"tampered message", priv.PubKey(), []byte("abd"), sig},
		{"wrong key", other.PubKey(), msg, sig},
		{"r zero", priv.PubKey(), msg, NewSignature(wide.New(256), sig.S)},
		{"s zero", priv.PubKey(), msg, NewSignature(sig.R, wide.New(256))},
		{"r equals n", priv.PubKey(), msg, NewSignature(n, sig.S)},
		{"s equals n", priv.PubKey(), msg, NewSignature(sig.R, n)},
		{"swapped", priv.PubKey(), msg, NewSignature(sig.S, sig.R)},
		{"nil signature", priv.PubKey(), msg, nil},
		{"empty signature", priv.PubKey(), msg, &Signature{}},
		{"nil key", nil, msg, sig},
		{"infinity key", &PublicKey{Curve: c, Point: c.Infinity()}, msg, sig},
		{"off curve key", &PublicKey{Curve: c, Point: curve.Point{X: priv.Point.X, Y: c.Fp.One()}}, msg, sig},
	}
	for _, test := range tests {
		assert.False(t, Verify(test.pub, test.msg, test.sig, btc.HashB), test.name)
	}
}

func TestSignRetriesOnZeroS(t *testing.T) {
	c := curve.S256()
	fn := c.Fn
	msg := []byte("retry")
	e := hashToScalar(c, btc.HashB(msg))

	// Choose d so that the first nonce gives e + r*d = 0.
	k1 := wide.FromUint64(256, 3)
	k2 := wide.FromUint64(256, 5)
	r1 := fn.FromUint(c.ScalarBaseMult(k1).X.Uint())
	q, err := fn.Div(e, r1)
	require.NoError(t, err)
	priv, err := NewPrivateKey(c, fn.Neg(q).Uint())
	require.NoError(t, err)

	sig, err := Sign(priv, msg, btc.HashB, scalarReader(k1, k2))
	require.NoError(t, err)
	r2 := fn.FromUint(c.ScalarBaseMult(k2).X.Uint())
	assert.True(t, sig.R.Equal(r2.Uint()))
	assert.True(t, Verify(priv.PubKey(), msg, sig, btc.HashB))

	_, err = Sign(priv, msg, btc.HashB, scalarReader(k1))
	assert.Error(t, err)
}

func TestHashToScalarTruncates(t *testing.T) {
	c := curve.S256()
	long := append(bytes.Repeat([]byte{0x01}, 32), 0xff, 0xff)
	assert.True(t, hashToScalar(c, long).Equal(hashToScalar(c, long[:32])))

	short := []byte{0x01, 0x02}
	assert.Equal(t, uint64(0x0102), hashToScalar(c, short).Uint().Uint64())

	n := c.N().Bytes()
	assert.True(t, hashToScalar(c, n).IsZero())
}

func TestSignatureDER(t *testing.T) {
	c := curve.S256()
	rng := rand.New(rand.NewSource(3))
	priv := vectorPrivKey(t)
	msg := []byte("der round trip")
	sig, err := priv.Sign(msg, btc.HashB, rng)
	require.NoError(t, err)

	enc := sig.Serialize()
	got, err := ParseDERSignature(c, enc)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(sig), spew.Sdump(sig, got))

	// Values out of range still decode so that Verify can reject them.
	bad := NewSignature(c.N(), sig.S).Serialize()
	got, err = ParseDERSignature(c, bad)
	require.NoError(t, err)
	assert.False(t, Verify(priv.PubKey(), msg, got, btc.HashB))

	tooWide := der.Encode(bytes.Repeat([]byte{0x7f}, 33), sig.S.Bytes())
	_, err = ParseDERSignature(c, tooWide)
	assert.True(t, errors.Is(err, wide.ErrOverflow))

	_, err = ParseDERSignature(c, []byte{0x30, 0x01})
	assert.True(t, errors.Is(err, der.ErrSigTooShort))
}

func TestAgainstBtcec(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	keyBytes, _ := hex.DecodeString(vectorKey)
	bpriv, bpub := btcec.PrivKeyFromBytes(btcec.S256(), keyBytes)
	priv := vectorPrivKey(t)
	assert.Equal(t, bpub.SerializeCompressed(), priv.PubKey().SerializeCompressed())

	msg := []byte("cross check")
	digest := btc.HashB(msg)

	// Ours verified by btcec.
	sig, err := priv.Sign(msg, btc.HashB, rng)
	require.NoError(t, err)
	bsig, err := btcec.ParseDERSignature(sig.Serialize(), btcec.S256())
	require.NoError(t, err)
	assert.True(t, bsig.Verify(digest, bpub))

	// btcec verified by ours.
	theirs, err := bpriv.Sign(digest)
	require.NoError(t, err)
	got, err := ParseDERSignature(curve.S256(), theirs.Serialize())
	require.NoError(t, err)
	assert.True(t, Verify(priv.PubKey(), msg, got, btc.HashB))
}

func TestMetrics(t *testing.T) {
	old := metrics.Enabled
	metrics.Enabled = true
	defer func() { metrics.Enabled = old }()

	priv := vectorPrivKey(t)
	msg := []byte("counted")
	sig, err := priv.Sign(msg, btc.HashB, rand.New(rand.NewSource(13)))
	require.NoError(t, err)
	assert.False(t, priv.PubKey().Verify([]byte("other"), sig, btc.HashB))

	counts := make(map[string]int64)
	for _, s := range metrics.Snapshot() {
		counts[s.Name] = s.Count
	}
	assert.GreaterOrEqual(t, counts[signCounter], int64(1))
	assert.GreaterOrEqual(t, counts[signTimer], int64(1))
	assert.GreaterOrEqual(t, counts[signBytes], int64(len(msg)))
	assert.GreaterOrEqual(t, counts[verifyCounter], int64(1))
	assert.GreaterOrEqual(t, counts[verifyFailed], int64(1))
}
