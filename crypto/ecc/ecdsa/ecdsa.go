// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecdsa signs and verifies messages with the elliptic curve digital
// signature algorithm over a curve.Curve.
//
// The nonce of every signature is read from a caller supplied io.Reader, so
// the reader must be a cryptographically secure source outside of tests. A
// degenerate nonce (r = 0 or s = 0) is discarded and a fresh one is drawn.
package ecdsa

import (
	"io"
	"time"

	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	l "github.com/tobysharp/btcdev/log"
	"github.com/tobysharp/btcdev/metrics"
)

// HashFunc hashes a message to the digest that gets signed.
type HashFunc func([]byte) []byte

// Metric names. They are looked up on every use since collection may be
// switched on after start up.
const (
	signCounter   = "ecdsa/sign"
	signRetries   = "ecdsa/sign/retries"
	signTimer     = "ecdsa/sign/time"
	signBytes     = "ecdsa/sign/bytes"
	verifyCounter = "ecdsa/verify"
	verifyFailed  = "ecdsa/verify/failed"
	verifyTimer   = "ecdsa/verify/time"
)

// hashToScalar interprets digest as a big-endian integer, first byte most
// significant, and reduces it modulo n. Digests longer than the order are
// cut to their leftmost bytes first.
func hashToScalar(c *curve.Curve, digest []byte) curve.ScalarVal {
	if size := int(c.Fn.Bits()+7) / 8; len(digest) > size {
		digest = digest[:size]
	}
	return c.Fn.FromBytes(digest)
}

// Sign hashes msg and signs the digest with priv, drawing nonces from rand.
// It only fails when rand does.
func Sign(priv *PrivateKey, msg []byte, hash HashFunc, rand io.Reader) (*Signature, error) {
	defer metrics.NewTimer(signTimer).UpdateSince(time.Now())
	metrics.NewMeter(signBytes).Mark(int64(len(msg)))

	c := priv.Curve
	fn := c.Fn
	e := hashToScalar(c, hash(msg))
	for attempt := 1; ; attempt++ {
		k, err := randScalar(c, rand)
		if err != nil {
			return nil, err
		}
		R := c.ScalarBaseMult(k)
		r := fn.FromUint(R.X.Uint())
		if r.IsZero() {
			metrics.NewCounter(signRetries).Inc(1)
			log.Debug("Retrying signature", "attempt", attempt, "reason", "r = 0")
			continue
		}
		// k is in [1, n-1] so it is invertible.
		s, _ := fn.Div(fn.Add(e, fn.Mul(r, priv.D)), fn.FromUint(k))
		if s.IsZero() {
			metrics.NewCounter(signRetries).Inc(1)
			log.Debug("Retrying signature", "attempt", attempt, "reason", "s = 0")
			continue
		}
		sig := &Signature{R: r.Uint(), S: s.Uint()}
		metrics.NewCounter(signCounter).Inc(1)
		log.Trace("Signed message", "digest", e, "sig", l.NewLogClosure(sig.String))
		return sig, nil
	}
}

// Verify reports whether sig is a valid signature of msg under pub. Any
// malformed input, including out of range signature values and invalid
// public keys, yields false.
func Verify(pub *PublicKey, msg []byte, sig *Signature, hash HashFunc) bool {
	defer metrics.NewTimer(verifyTimer).UpdateSince(time.Now())
	metrics.NewCounter(verifyCounter).Inc(1)

	ok := verify(pub, msg, sig, hash)
	if !ok {
		metrics.NewCounter(verifyFailed).Inc(1)
	}
	return ok
}

func verify(pub *PublicKey, msg []byte, sig *Signature, hash HashFunc) bool {
	if pub == nil || pub.Curve == nil || sig == nil {
		return false
	}
	c := pub.Curve
	fn := c.Fn
	n := c.N()
	if sig.R.IsZero() || sig.R.Cmp(n) >= 0 {
		log.Trace("Signature R out of range")
		return false
	}
	if sig.S.IsZero() || sig.S.Cmp(n) >= 0 {
		log.Trace("Signature S out of range")
		return false
	}
	if !c.IsValidPublicKey(pub.Point) {
		log.Trace("Invalid public key", "point", pub.Point)
		return false
	}

	e := hashToScalar(c, hash(msg))
	r := fn.FromUint(sig.R)
	w, err := fn.Inverse(fn.FromUint(sig.S))
	if err != nil {
		return false
	}
	u1 := fn.Mul(e, w)
	u2 := fn.Mul(r, w)
	X := c.Add(c.ScalarBaseMult(u1.Uint()), c.ScalarMult(u2.Uint(), pub.Point))
	if X.IsInfinity() {
		return false
	}
	return fn.FromUint(X.X.Uint()).Equal(r)
}
