// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qx

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/tobysharp/btcdev/core/address"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/crypto/ecc/ecdsa"
	"github.com/tobysharp/btcdev/params"
)

// EcNew generates a new secp256k1 private key.
func EcNew(rand io.Reader) (string, error) {
	priv, err := ecdsa.GenerateKey(curve.S256(), rand)
	if err != nil {
		return "", errors.Wrap(err, "generate key")
	}
	return fmt.Sprintf("%x", priv.Serialize()), nil
}

func parsePrivateKey(privateKeyStr string) (*ecdsa.PrivateKey, error) {
	data, err := decodeHex("private key", privateKeyStr)
	if err != nil {
		return nil, err
	}
	if len(data) != ecdsa.PrivKeyBytesLen {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", ecdsa.PrivKeyBytesLen, len(data))
	}
	priv, err := ecdsa.PrivKeyFromBytes(curve.S256(), data)
	if err != nil {
		return nil, errors.Wrap(err, "private key")
	}
	return priv, nil
}

func parsePublicKey(pubKeyStr string) (*ecdsa.PublicKey, error) {
	data, err := decodeHex("public key", pubKeyStr)
	if err != nil {
		return nil, err
	}
	pub, err := ecdsa.ParsePubKey(curve.S256(), data)
	if err != nil {
		return nil, errors.Wrap(err, "public key")
	}
	return pub, nil
}

func EcPrivateKeyToEcPublicKey(uncompressed bool, privateKeyStr string) (string, error) {
	priv, err := parsePrivateKey(privateKeyStr)
	if err != nil {
		return "", err
	}
	var key []byte
	if uncompressed {
		key = priv.PubKey().SerializeUncompressed()
	} else {
		key = priv.PubKey().SerializeCompressed()
	}
	return fmt.Sprintf("%x", key[:]), nil
}

func EcPrivateKeyToWif(net *params.Params, uncompressed bool, privateKeyStr string) (string, error) {
	priv, err := parsePrivateKey(privateKeyStr)
	if err != nil {
		return "", err
	}
	w, err := address.NewWIF(priv, net, !uncompressed)
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

func WifToEcPrivateKey(net *params.Params, wif string, showDetails bool) (string, error) {
	w, err := address.DecodeWIF(wif, net)
	if err != nil {
		return "", errors.Wrap(err, "wif")
	}
	key := fmt.Sprintf("%x", w.PrivKey.Serialize())
	return render(showDetails, key,
		row{"network", w.Net.Name},
		row{"private key", key},
		row{"compressed", fmt.Sprintf("%v", w.CompressPubKey)},
	), nil
}

// WifToEcPubkey returns the public key in the serialization the WIF asks
// for.
func WifToEcPubkey(net *params.Params, wif string) (string, error) {
	w, err := address.DecodeWIF(wif, net)
	if err != nil {
		return "", errors.Wrap(err, "wif")
	}
	return fmt.Sprintf("%x", w.SerializePubKey()), nil
}

func EcPubKeyToAddress(net *params.Params, pubkey string) (string, error) {
	data, err := decodeHex("public key", pubkey)
	if err != nil {
		return "", err
	}
	if _, err := parsePublicKey(pubkey); err != nil {
		return "", err
	}
	return address.FromSerializedPubKey(data, net).String(), nil
}

func DecodeAddress(net *params.Params, addr string, showDetails bool) (string, error) {
	a, err := address.Decode(addr, net)
	if err != nil {
		return "", errors.Wrap(err, "address")
	}
	h := fmt.Sprintf("%x", a.Hash160()[:])
	return render(showDetails, h,
		row{"network", net.Name},
		row{"version", fmt.Sprintf("%02x", net.PubKeyHashAddrID)},
		row{"hash160", h},
	), nil
}
