// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"

	"github.com/tobysharp/btcdev/common/math/wide"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/crypto/ecc/der"
)

// Signature is an ECDSA signature. R and S are kept as decoded so that a
// signature with out of range values can still be represented; Verify
// rejects it.
type Signature struct {
	R, S wide.Uint
}

// NewSignature returns the signature (r, s).
func NewSignature(r, s wide.Uint) *Signature {
	return &Signature{R: r, S: s}
}

// Serialize returns the DER encoding of the signature.
func (sig *Signature) Serialize() []byte {
	return der.Encode(sig.R.Bytes(), sig.S.Bytes())
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.R.Equal(other.R) && sig.S.Equal(other.S)
}

func (sig *Signature) String() string {
	return fmt.Sprintf("(r=%s, s=%s)", sig.R, sig.S)
}

// ParseDERSignature decodes a DER signature for the curve c. Values are not
// range checked beyond fitting the width of the group order.
func ParseDERSignature(c *curve.Curve, b []byte) (*Signature, error) {
	rb, sb, err := der.Decode(b)
	if err != nil {
		return nil, err
	}
	r, err := wide.FromBytes(c.Fn.Bits(), rb)
	if err != nil {
		return nil, fmt.Errorf("signature R is wider than the curve order: %w", err)
	}
	s, err := wide.FromBytes(c.Fn.Bits(), sb)
	if err != nil {
		return nil, fmt.Errorf("signature S is wider than the curve order: %w", err)
	}
	return &Signature{R: r, S: s}, nil
}
