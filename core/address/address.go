// Copyright 2017-2018 The qitmeer developers

// Package address encodes pay-to-pubkey-hash addresses and WIF private keys
// for the networks defined in the params package.
package address

import (
	"errors"
	"fmt"

	"github.com/tobysharp/btcdev/common/encode/base58"
	"github.com/tobysharp/btcdev/common/hash/btc"
	"github.com/tobysharp/btcdev/crypto/ecc/ecdsa"
	"github.com/tobysharp/btcdev/params"
	"golang.org/x/crypto/ripemd160"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnknownAddressType describes an error where an address can not
	// decoded as a specific address type due to the string encoding
	// begining with an identifier byte unknown to any standard or
	// registered (via params.Register) network.
	ErrUnknownAddressType = errors.New("unknown address type")

	// ErrWrongNetwork is returned when an address or key was encoded for a
	// different network than the one asked for.
	ErrWrongNetwork = errors.New("encoded for another network")
)

// encodeAddress returns a human-readable payment address given a ripemd160 hash
// and netID which encodes the network and address type.
func encodeAddress(hash160 []byte, netID byte) string {
	// Format is 1 byte for a network and address class (i.e. P2PKH vs
	// P2SH), 20 bytes for a RIPEMD160 hash, and 4 bytes of checksum.
	res, _ := base58.BtcCheckEncode(hash160[:ripemd160.Size], netID)
	return res
}

// PubKeyHashAddress is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type PubKeyHashAddress struct {
	net   *params.Params
	netID byte
	hash  [ripemd160.Size]byte
}

// NewPubKeyHashAddress returns a new PubKeyHashAddress.  pkHash must
// be 20 bytes.
func NewPubKeyHashAddress(pkHash []byte, net *params.Params) (*PubKeyHashAddress, error) {
	apkh, err := newPubKeyHashAddress(pkHash, net.PubKeyHashAddrID)
	if err != nil {
		return nil, err
	}
	apkh.net = net
	return apkh, nil
}

// newPubKeyHashAddress is the internal API to create a pubkey hash address
// with a known leading identifier byte for a network, rather than looking
// it up through its parameters.  This is useful when creating a new address
// structure from a string encoding where the identifer byte is already
// known.
func newPubKeyHashAddress(pkHash []byte, netID byte) (*PubKeyHashAddress, error) {
	// Check for a valid pubkey hash length.
	if len(pkHash) != ripemd160.Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}
	addr := &PubKeyHashAddress{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// FromPublicKey returns the address of the compressed serialization of pub.
func FromPublicKey(pub *ecdsa.PublicKey, net *params.Params) *PubKeyHashAddress {
	addr, _ := NewPubKeyHashAddress(btc.Hash160(pub.SerializeCompressed()), net)
	return addr
}

// FromSerializedPubKey returns the address of an already serialized public
// key, compressed or not.
func FromSerializedPubKey(serializedPK []byte, net *params.Params) *PubKeyHashAddress {
	addr, _ := NewPubKeyHashAddress(btc.Hash160(serializedPK), net)
	return addr
}

// Decode decodes the string encoding of an address and checks that it
// belongs to net.
func Decode(addr string, net *params.Params) (*PubKeyHashAddress, error) {
	decoded, netID, err := base58.BtcCheckDecode(addr)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, ErrChecksumMismatch
		}
		return nil, fmt.Errorf("decoded address is of unknown format: %v", err)
	}
	if len(decoded) != ripemd160.Size {
		return nil, ErrUnknownAddressType
	}
	if netID != net.PubKeyHashAddrID {
		if params.IsPubKeyHashAddrID(netID) {
			return nil, ErrWrongNetwork
		}
		return nil, ErrUnknownAddressType
	}
	a, err := newPubKeyHashAddress(decoded, netID)
	if err != nil {
		return nil, err
	}
	a.net = net
	return a, nil
}

// Encode returns the Base58Check string of the address.
func (a *PubKeyHashAddress) Encode() string {
	return encodeAddress(a.hash[:], a.netID)
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling Encode, but is provided so the type can
// be used as a fmt.Stringer.
func (a *PubKeyHashAddress) String() string {
	return a.Encode()
}

func (a *PubKeyHashAddress) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// Net returns the network the address belongs to.
func (a *PubKeyHashAddress) Net() *params.Params {
	return a.net
}

// IsForNetwork returns whether or not the address is associated with the
// passed network.
func (a *PubKeyHashAddress) IsForNetwork(p *params.Params) bool {
	return a.netID == p.PubKeyHashAddrID
}
