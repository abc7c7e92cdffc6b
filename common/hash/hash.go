// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/dchest/blake256"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

// Hash is a 32 byte digest, printed in the order it was produced.
type Hash [HashSize]byte

type Hasher interface {
	hash.Hash
}

// ZeroHash is the Hash value of all zero bytes.
var ZeroHash Hash

type HashType byte

const (
	SHA256 HashType = iota
	Keccak_256
	SHA3_256
	SHA3_512
	Ripemd160
	Blake2b_256
	Blake2b_512
	Blake256
)

var hashTypeNames = map[HashType]string{
	SHA256:      "sha256",
	Keccak_256:  "keccak-256",
	SHA3_256:    "sha3-256",
	SHA3_512:    "sha3-512",
	Ripemd160:   "ripemd160",
	Blake2b_256: "blake2b256",
	Blake2b_512: "blake2b512",
	Blake256:    "blake256",
}

func (ht HashType) String() string {
	if s, ok := hashTypeNames[ht]; ok {
		return s
	}
	return fmt.Sprintf("HashType(%d)", byte(ht))
}

// HashTypeFromString returns the HashType with the given command-line name.
func HashTypeFromString(name string) (HashType, error) {
	for ht, s := range hashTypeNames {
		if s == name {
			return ht, nil
		}
	}
	return 0, fmt.Errorf("unknown hash type: %s", name)
}

// GetHasher returns a fresh hasher of the given type, or nil if the type is
// unknown.
func GetHasher(ht HashType) Hasher {
	switch ht {
	case SHA256:
		return sha256.New()
	case Keccak_256:
		return sha3.NewLegacyKeccak256()
	case SHA3_256:
		return sha3.New256()
	case SHA3_512:
		return sha3.New512()
	case Ripemd160:
		return ripemd160.New()
	case Blake2b_256:
		h, _ := blake2b.New256(nil)
		return h
	case Blake2b_512:
		h, _ := blake2b.New512(nil)
		return h
	case Blake256:
		return blake256.New()
	}
	return nil
}

// Func returns a one-shot hash function of the given type. Each call uses
// its own hasher, so the function is safe for concurrent use.
func Func(ht HashType) func([]byte) []byte {
	return func(b []byte) []byte {
		return CalcHash(b, GetHasher(ht))
	}
}

// String returns the Hash as a hexadecimal string.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte { return h[:] }

// SetBytes sets the bytes which represent the hash.  An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen,
			HashSize)
	}
	copy(h[:], newHash)

	return nil
}

// NewHash returns a new Hash from a byte slice.  An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, err
}
