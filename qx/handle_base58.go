// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qx

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tobysharp/btcdev/common/encode/base58"
	"github.com/tobysharp/btcdev/common/hash"
)

func Base58Encode(input string) (string, error) {
	data, err := decodeHex("input", input)
	if err != nil {
		return "", err
	}
	return base58.Encode(data), nil
}

func Base58Decode(input string) (string, error) {
	data, err := base58.Decode(input)
	if err != nil {
		return "", errors.Wrap(err, "base58 decode")
	}
	return fmt.Sprintf("%x", data), nil
}

// checksumFunc returns the named checksum, or the Bitcoin one for "".
func checksumFunc(hasher string, cksumSize int) (func([]byte) []byte, error) {
	switch hasher {
	case "", "dsha256":
		return base58.DoubleHashChecksumFunc(hash.GetHasher(hash.SHA256), cksumSize), nil
	case "sha256":
		return base58.SingleHashChecksumFunc(hash.GetHasher(hash.SHA256), cksumSize), nil
	case "blake2b256":
		return base58.SingleHashChecksumFunc(hash.GetHasher(hash.Blake2b_256), cksumSize), nil
	case "dblake2b256":
		return base58.DoubleHashChecksumFunc(hash.GetHasher(hash.Blake2b_256), cksumSize), nil
	case "blake2b512":
		return base58.SingleHashChecksumFunc(hash.GetHasher(hash.Blake2b_512), cksumSize), nil
	}
	return nil, fmt.Errorf("unknown hasher %s", hasher)
}

// Base58CheckEncode encodes the hex input with the given version bytes and
// checksum.
func Base58CheckEncode(version []byte, hasher string, cksumSize int, input string) (string, error) {
	if cksumSize < 1 || cksumSize > 32 {
		return "", fmt.Errorf("invalid checksum size %d", cksumSize)
	}
	data, err := decodeHex("input", input)
	if err != nil {
		return "", err
	}
	cksumfunc, err := checksumFunc(hasher, cksumSize)
	if err != nil {
		return "", err
	}
	return base58.CheckEncode(data, version, cksumSize, cksumfunc)
}

// Base58CheckDecode verifies and strips the checksum and version.
func Base58CheckDecode(versionSize int, hasher string, cksumSize int, input string, showDetails bool) (string, error) {
	if cksumSize < 1 || cksumSize > 32 {
		return "", fmt.Errorf("invalid checksum size %d", cksumSize)
	}
	cksumfunc, err := checksumFunc(hasher, cksumSize)
	if err != nil {
		return "", err
	}
	payload, version, err := base58.CheckDecode(input, versionSize, cksumSize, cksumfunc)
	if err != nil {
		return "", errors.Wrap(err, "base58check decode")
	}
	decoded, _ := base58.Decode(input)
	return render(showDetails, fmt.Sprintf("%x", payload),
		row{"version", fmt.Sprintf("%x", version)},
		row{"payload", fmt.Sprintf("%x", payload)},
		row{"checksum", fmt.Sprintf("%x", decoded[len(decoded)-cksumSize:])},
	), nil
}
