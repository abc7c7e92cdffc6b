// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"errors"
	"io"

	"github.com/tobysharp/btcdev/common/math/wide"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/metrics"
)

// PrivKeyBytesLen is the length of a serialized secp256k1 private key.
const PrivKeyBytesLen = 32

// ErrInvalidPrivateKey is returned for private scalars outside [1, n-1].
var ErrInvalidPrivateKey = errors.New("private key must be in [1, n-1]")

const (
	keygenCounter = "ecdsa/keygen"
	keygenRetries = "ecdsa/keygen/retries"
)

// PublicKey is a curve point together with the curve it belongs to.
type PublicKey struct {
	Curve *curve.Curve
	Point curve.Point
}

// PrivateKey is a scalar d in [1, n-1] and its public key d*G.
type PrivateKey struct {
	PublicKey
	D curve.ScalarVal
}

// GenerateKey draws a private key from rand. Candidates outside [1, n-1]
// are discarded and a new one is read.
func GenerateKey(c *curve.Curve, rand io.Reader) (*PrivateKey, error) {
	d, err := randScalar(c, rand)
	if err != nil {
		return nil, err
	}
	metrics.NewCounter(keygenCounter).Inc(1)
	return newPrivateKey(c, d), nil
}

// randScalar reads words from rand until they form a value in [1, n-1].
func randScalar(c *curve.Curve, rand io.Reader) (wide.Uint, error) {
	n := c.N()
	for {
		k, err := wide.Random(rand, n.Bits())
		if err != nil {
			return wide.Uint{}, err
		}
		if !k.IsZero() && k.Cmp(n) < 0 {
			return k, nil
		}
		metrics.NewCounter(keygenRetries).Inc(1)
		log.Trace("Rejected out of range scalar", "bits", k.HighestBit()+1)
	}
}

// NewPrivateKey returns the key pair for the scalar d.
func NewPrivateKey(c *curve.Curve, d wide.Uint) (*PrivateKey, error) {
	if d.IsZero() || d.Cmp(c.N()) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	return newPrivateKey(c, d.Resize(c.Fn.Bits())), nil
}

func newPrivateKey(c *curve.Curve, d wide.Uint) *PrivateKey {
	return &PrivateKey{
		PublicKey: PublicKey{Curve: c, Point: c.ScalarBaseMult(d)},
		D:         c.Fn.FromUint(d),
	}
}

// PrivKeyFromBytes returns the key pair for the big-endian scalar b.
func PrivKeyFromBytes(c *curve.Curve, b []byte) (*PrivateKey, error) {
	d, err := wide.FromBytes(c.Fn.Bits(), b)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return NewPrivateKey(c, d)
}

// PubKey returns the public half of the key pair.
func (p *PrivateKey) PubKey() *PublicKey {
	return &p.PublicKey
}

// Serialize returns the private scalar as a 32-byte big-endian number.
func (p *PrivateKey) Serialize() []byte {
	return p.D.Bytes()
}

// Sign signs msg with the private key. See Sign.
func (p *PrivateKey) Sign(msg []byte, hash HashFunc, rand io.Reader) (*Signature, error) {
	return Sign(p, msg, hash, rand)
}

// ParsePubKey decodes a compressed or uncompressed public key.
func ParsePubKey(c *curve.Curve, b []byte) (*PublicKey, error) {
	pt, err := c.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Curve: c, Point: pt}, nil
}

// SerializeCompressed encodes the key in the 33-byte compressed format.
func (p *PublicKey) SerializeCompressed() []byte {
	return p.Curve.SerializeCompressed(p.Point)
}

// SerializeUncompressed encodes the key in the 65-byte uncompressed format.
func (p *PublicKey) SerializeUncompressed() []byte {
	return p.Curve.SerializeUncompressed(p.Point)
}

// IsEqual reports whether both keys are the same point.
func (p *PublicKey) IsEqual(o *PublicKey) bool {
	return p.Point.Equal(o.Point)
}

// Verify reports whether sig is a valid signature of msg. See Verify.
func (p *PublicKey) Verify(msg []byte, sig *Signature, hash HashFunc) bool {
	return Verify(p, msg, sig, hash)
}
