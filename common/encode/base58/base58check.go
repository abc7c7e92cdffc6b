// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"errors"

	"github.com/tobysharp/btcdev/common/hash"
	"github.com/tobysharp/btcdev/common/hash/btc"
)

// ErrChecksum indicates that the checksum of a check-encoded string does not verify against
// the checksum.
var ErrChecksum = errors.New("checksum error")

// ErrInvalidFormat indicates that the check-encoded string has an invalid format.
var ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")

// BtcChecksumSize is the length of the Bitcoin checksum.
const BtcChecksumSize = 4

// btc checksum: first four bytes of double-sha256.
func checksumBtc(input []byte) []byte {
	h := btc.DoubleHashB(input)
	var cksum [BtcChecksumSize]byte
	copy(cksum[:], h[:])
	return cksum[:]
}

func SingleHashChecksumFunc(hasher hash.Hasher, cksumSize int) func([]byte) []byte {
	return func(input []byte) []byte {
		h := hash.CalcHash(input, hasher)
		var cksum []byte
		cksum = append(cksum, h[:cksumSize]...)
		return cksum[:]
	}
}

func DoubleHashChecksumFunc(hasher hash.Hasher, cksumSize int) func([]byte) []byte {
	return func(input []byte) []byte {
		first := hash.CalcHash(input, hasher)
		second := hash.CalcHash(first[:], hasher)
		var cksum []byte
		cksum = append(cksum, second[:cksumSize]...)
		return cksum[:]
	}
}

func checkInputOverflow(n int) error {
	if n > 64*1024*1024 {
		return errors.New("value too large")
	}
	return nil
}

// CheckEncode prepends the version bytes, appends cksumSize bytes of
// cksumfunc over version and payload, and base58 encodes the result.
func CheckEncode(input []byte, version []byte, cksumSize int, cksumfunc func([]byte) []byte) (string, error) {
	if err := checkInputOverflow(len(input)); err != nil {
		return "", err
	}
	b := make([]byte, 0, len(version)+len(input)+cksumSize)
	b = append(b, version[:]...)
	b = append(b, input[:]...)
	cksum := cksumfunc(b)
	b = append(b, cksum[:cksumSize]...)
	return Encode(b), nil
}

// CheckDecode reverses CheckEncode and returns the payload and version.
func CheckDecode(input string, versionSize, cksumSize int, cksumfunc func([]byte) []byte) (result []byte, version []byte, err error) {
	if err := checkInputOverflow(len(input)); err != nil {
		return nil, nil, err
	}
	decoded, err := Decode(input)
	if err != nil {
		return nil, nil, err
	}
	if len(decoded) < cksumSize+versionSize {
		return nil, nil, ErrInvalidFormat
	}
	version = append(version, decoded[:versionSize]...)
	cksum := decoded[len(decoded)-cksumSize:]
	if !bytes.Equal(cksumfunc(decoded[:len(decoded)-cksumSize])[:cksumSize], cksum) {
		return nil, nil, ErrChecksum
	}
	payload := decoded[versionSize : len(decoded)-cksumSize]
	result = append(result, payload...)
	return result, version, nil
}

// BtcCheckEncode encodes input with a one byte version and a four byte
// double SHA-256 checksum.
func BtcCheckEncode(input []byte, version byte) (string, error) {
	return CheckEncode(input, []byte{version}, BtcChecksumSize, checksumBtc)
}

// BtcCheckDecode decodes a string produced by BtcCheckEncode.
func BtcCheckDecode(input string) (result []byte, version byte, err error) {
	r, v, err := CheckDecode(input, 1, BtcChecksumSize, checksumBtc)
	if err != nil {
		return nil, 0, err
	}
	return r, v[0], nil
}

// IsValid reports whether s is a well formed Base58Check string.
func IsValid(s string) bool {
	_, _, err := BtcCheckDecode(s)
	return err == nil
}
