// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"errors"

	"github.com/tobysharp/btcdev/common/encode/base58"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/crypto/ecc/ecdsa"
	"github.com/tobysharp/btcdev/params"
)

// compressMagic is the byte after the key that marks a compressed public key.
const compressMagic byte = 0x01

// ErrMalformedPrivateKey describes an error where a WIF-encoded private
// key cannot be decoded due to being improperly formatted.
var ErrMalformedPrivateKey = errors.New("malformed private key")

// WIF contains the individual components described by the Wallet Import Format
// (WIF).  A WIF string is typically used to represent a private key and its
// associated address in a way that may be easily copied and imported into or
// exported from wallet software.
type WIF struct {
	// PrivKey is the private key being imported or exported.
	PrivKey *ecdsa.PrivateKey

	// CompressPubKey specifies whether the address controlled by the
	// imported or exported private key was created by hashing a
	// compressed (33-byte) serialized public key, rather than an
	// uncompressed (65-byte) one.
	CompressPubKey bool

	// Net is the network the key is for.
	Net *params.Params
}

// NewWIF creates a new WIF structure to export an address and its private key
// as a string encoded in the Wallet Import Format.
func NewWIF(privKey *ecdsa.PrivateKey, net *params.Params, compress bool) (*WIF, error) {
	if net == nil {
		return nil, errors.New("no network")
	}
	return &WIF{PrivKey: privKey, CompressPubKey: compress, Net: net}, nil
}

// DecodeWIF creates a new WIF structure by decoding the string encoding of
// the import format. The key must be for net.
//
// The WIF string must be a base58-encoded string of the following byte
// sequence:
//
//   - 1 byte to identify the network
//   - 32 bytes of a binary-encoded, big-endian, zero-padded private key
//   - Optional 1 byte (equal to 0x01) if the address being imported or exported
//     was created by taking the RIPEMD160 after SHA256 hash of a serialized
//     compressed (33-byte) public key
//   - 4 bytes of checksum, must equal the first four bytes of the double SHA256
//     of every byte before the checksum in this sequence
func DecodeWIF(wif string, net *params.Params) (*WIF, error) {
	payload, netID, err := base58.BtcCheckDecode(wif)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, ErrChecksumMismatch
		}
		return nil, ErrMalformedPrivateKey
	}

	var compress bool
	switch len(payload) {
	case ecdsa.PrivKeyBytesLen + 1:
		if payload[ecdsa.PrivKeyBytesLen] != compressMagic {
			return nil, ErrMalformedPrivateKey
		}
		compress = true
	case ecdsa.PrivKeyBytesLen:
	default:
		return nil, ErrMalformedPrivateKey
	}
	if netID != net.PrivateKeyID {
		return nil, ErrWrongNetwork
	}

	privKey, err := ecdsa.PrivKeyFromBytes(curve.S256(), payload[:ecdsa.PrivKeyBytesLen])
	if err != nil {
		return nil, err
	}
	return &WIF{PrivKey: privKey, CompressPubKey: compress, Net: net}, nil
}

// String creates the Wallet Import Format string encoding of a WIF structure.
// See DecodeWIF for a detailed breakdown of the format and requirements of
// a valid WIF string.
func (w *WIF) String() string {
	payload := make([]byte, 0, ecdsa.PrivKeyBytesLen+1)
	payload = append(payload, w.PrivKey.Serialize()...)
	if w.CompressPubKey {
		payload = append(payload, compressMagic)
	}
	s, _ := base58.BtcCheckEncode(payload, w.Net.PrivateKeyID)
	return s
}

// SerializePubKey serializes the associated public key of the imported or
// exported private key in either a compressed or uncompressed format.  The
// serialization format chosen depends on the value of w.CompressPubKey.
func (w *WIF) SerializePubKey() []byte {
	if w.CompressPubKey {
		return w.PrivKey.PubKey().SerializeCompressed()
	}
	return w.PrivKey.PubKey().SerializeUncompressed()
}

// Address returns the P2PKH address of the key in the serialization the
// WIF asks for.
func (w *WIF) Address() *PubKeyHashAddress {
	return FromSerializedPubKey(w.SerializePubKey(), w.Net)
}
