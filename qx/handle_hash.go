// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qx

import (
	"fmt"

	"github.com/tobysharp/btcdev/common/hash"
	"github.com/tobysharp/btcdev/common/hash/btc"
)

// HashCommands lists the digest commands by name.
var HashCommands = []string{
	"sha256", "double-sha256", "ripemd160", "bitcoin160",
	"keccak-256", "sha3-256", "sha3-512", "blake2b256", "blake2b512", "blake256",
}

// Hash returns the hex digest of the hex input under the named function.
func Hash(name string, input string) (string, error) {
	data, err := decodeHex("input", input)
	if err != nil {
		return "", err
	}
	switch name {
	case "sha256":
		return btc.HashH(data).String(), nil
	case "double-sha256":
		return btc.DoubleHashH(data).String(), nil
	case "bitcoin160":
		return fmt.Sprintf("%x", btc.Hash160(data)), nil
	}
	ht, err := hash.HashTypeFromString(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", hash.Func(ht)(data)), nil
}
