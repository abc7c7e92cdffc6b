// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qx

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/tobysharp/btcdev/common/hash/btc"
	"github.com/tobysharp/btcdev/core/address"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/crypto/ecc/ecdsa"
	"github.com/tobysharp/btcdev/params"
)

// msgHash is the digest signed by the message commands.
var msgHash ecdsa.HashFunc = btc.DoubleHashB

// MsgSign signs msg with the key in wif and returns the DER signature.
func MsgSign(net *params.Params, wif string, msg string, rand io.Reader, showDetails bool) (string, error) {
	w, err := address.DecodeWIF(wif, net)
	if err != nil {
		return "", errors.Wrap(err, "wif")
	}
	sig, err := w.PrivKey.Sign([]byte(msg), msgHash, rand)
	if err != nil {
		return "", errors.Wrap(err, "sign")
	}
	der := fmt.Sprintf("%x", sig.Serialize())
	return render(showDetails, der,
		row{"address", w.Address().String()},
		row{"message hash", btc.DoubleHashH([]byte(msg)).String()},
		row{"r", sig.R.String()},
		row{"s", sig.S.String()},
		row{"signature", der},
	), nil
}

// VerifyMsgSignature checks a DER signature of msg against a public key.
func VerifyMsgSignature(pubkey string, msg string, signature string) (string, error) {
	pub, err := parsePublicKey(pubkey)
	if err != nil {
		return "", err
	}
	sig, err := parseSignature(signature)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", pub.Verify([]byte(msg), sig, msgHash)), nil
}

func parseSignature(signature string) (*ecdsa.Signature, error) {
	data, err := decodeHex("signature", signature)
	if err != nil {
		return nil, err
	}
	sig, err := ecdsa.ParseDERSignature(curve.S256(), data)
	if err != nil {
		return nil, errors.Wrap(err, "signature")
	}
	return sig, nil
}

// DecodeSignature splits a DER signature into r and s.
func DecodeSignature(signature string, showDetails bool) (string, error) {
	sig, err := parseSignature(signature)
	if err != nil {
		return "", err
	}
	return render(showDetails, fmt.Sprintf("%s %s", sig.R, sig.S),
		row{"r", sig.R.String()},
		row{"s", sig.S.String()},
	), nil
}
