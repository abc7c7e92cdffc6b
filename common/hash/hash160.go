package hash

import (
	h "hash"
)

// Calculate the hash of hasher over buf.
func CalcHash(buf []byte, hasher h.Hash) []byte {
	defer hasher.Reset()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// DoubleCalcHash calculates hasher(hasher(buf)).
func DoubleCalcHash(buf []byte, hasher h.Hash) []byte {
	return CalcHash(CalcHash(buf, hasher), hasher)
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return CalcHash(CalcHash(buf, GetHasher(SHA256)), GetHasher(Ripemd160))
}
