// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qx

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/tobysharp/btcdev/core/address"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/crypto/ecc/ecdsa"
	"github.com/tobysharp/btcdev/params"
)

const smokeMessage = "abc"

// Smoke walks the whole stack once: a fresh key, its WIF, public key and
// address, then a signature of "abc" and its verification.
func Smoke(net *params.Params, rand io.Reader) (string, error) {
	priv, err := ecdsa.GenerateKey(curve.S256(), rand)
	if err != nil {
		return "", errors.Wrap(err, "generate key")
	}
	w, err := address.NewWIF(priv, net, true)
	if err != nil {
		return "", err
	}
	pub := priv.PubKey()
	sig, err := priv.Sign([]byte(smokeMessage), msgHash, rand)
	if err != nil {
		return "", errors.Wrap(err, "sign")
	}
	verified := "no"
	if pub.Verify([]byte(smokeMessage), sig, msgHash) {
		verified = "yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Private key: %x\n", priv.Serialize())
	fmt.Fprintf(&b, "Wallet Import Format: %s\n", w)
	fmt.Fprintf(&b, "Public key: %x\n", pub.SerializeCompressed())
	fmt.Fprintf(&b, "Address: %s\n", address.FromPublicKey(pub, net))
	fmt.Fprintf(&b, "Message: %s\n", smokeMessage)
	fmt.Fprintf(&b, "Signature: %x\n", sig.Serialize())
	fmt.Fprintf(&b, "Verified: %s", verified)
	return b.String(), nil
}
