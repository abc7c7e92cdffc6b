// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package der encodes and decodes ECDSA signatures as the ASN.1 structure
//
//	ECDSASignature ::= SEQUENCE {
//	    r   INTEGER,
//	    s   INTEGER
//	}
//
// Only the short length form is supported, which limits each integer to
// well over 256 bits.
package der

import "fmt"

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer and is used when
	// parsing and serializing signatures encoded with the Distinguished
	// Encoding Rules (DER) format per section 10 of [ISO/IEC 8825-1].
	asn1IntegerID = 0x02

	// MinSigLen is the shortest buffer Decode accepts: two headers and two
	// single byte integers.
	MinSigLen = 6

	// maxShortLen is the largest length the short form can express.
	maxShortLen = 0x7f
)

// canonicalizeInt returns the minimal signed big-endian form of the
// unsigned magnitude b: leading zeros are dropped and a single 0x00 is
// prepended when the high bit would otherwise mark it negative.
func canonicalizeInt(b []byte) []byte {
	for len(b) > 1 && b[0] == 0x00 {
		b = b[1:]
	}
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		return append([]byte{0x00}, b...)
	}
	return append([]byte(nil), b...)
}

// Encode returns the DER encoding of the signature (r, s), given as
// big-endian unsigned integers. It panics if the result needs the long
// length form.
func Encode(r, s []byte) []byte {
	rb := canonicalizeInt(r)
	sb := canonicalizeInt(s)

	// total length of returned signature is 1 byte for the sequence ID,
	// 1 byte for the sequence length, 1 byte for the integer ID and 1 byte
	// for the length of each of R and S, plus their contents.
	contentLen := 2 + len(rb) + 2 + len(sb)
	if contentLen > maxShortLen {
		panic(fmt.Sprintf("der: signature content of %d bytes needs long form lengths", contentLen))
	}
	b := make([]byte, 0, 2+contentLen)
	b = append(b, asn1SequenceID, byte(contentLen))
	b = append(b, asn1IntegerID, byte(len(rb)))
	b = append(b, rb...)
	b = append(b, asn1IntegerID, byte(len(sb)))
	b = append(b, sb...)
	return b
}

// Decode parses a strict DER signature and returns r and s as big-endian
// unsigned integers without leading zero bytes. The sequence must cover the
// whole buffer, and both integers must be non-negative and minimally
// encoded.
func Decode(sig []byte) (r, s []byte, err error) {
	// The format of a DER encoded signature is as follows:
	//
	// 0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
	if len(sig) < MinSigLen {
		str := fmt.Sprintf("malformed signature: too short: %d < %d", len(sig), MinSigLen)
		return nil, nil, signatureError(ErrSigTooShort, str)
	}
	if sig[0] != asn1SequenceID {
		str := fmt.Sprintf("malformed signature: format has wrong type: %#x", sig[0])
		return nil, nil, signatureError(ErrSigInvalidSeqID, str)
	}
	seqLen := int(sig[1])
	if seqLen > maxShortLen || 2+seqLen != len(sig) {
		str := fmt.Sprintf("malformed signature: bad length: %d != %d", seqLen, len(sig)-2)
		return nil, nil, signatureError(ErrSigInvalidDataLen, str)
	}
	end := 2 + seqLen

	// R
	idx := 2
	if idx+2 > end || sig[idx] != asn1IntegerID {
		str := "malformed signature: R is not an integer"
		return nil, nil, signatureError(ErrSigInvalidRIntID, str)
	}
	rLen := int(sig[idx+1])
	if rLen == 0 {
		return nil, nil, signatureError(ErrSigZeroRLen, "malformed signature: R length is zero")
	}
	idx += 2
	if rLen > maxShortLen || idx+rLen > end {
		str := fmt.Sprintf("malformed signature: R length %d runs past the sequence", rLen)
		return nil, nil, signatureError(ErrSigInvalidRLen, str)
	}
	if err := checkInt(sig[idx:idx+rLen], ErrSigNegativeR, ErrSigTooMuchRPadding, "R"); err != nil {
		return nil, nil, err
	}
	r = trimLeadingZeros(sig[idx : idx+rLen])
	idx += rLen

	// S
	if idx >= end {
		str := "malformed signature: S type indicator missing"
		return nil, nil, signatureError(ErrSigMissingSTypeID, str)
	}
	if sig[idx] != asn1IntegerID {
		str := "malformed signature: S is not an integer"
		return nil, nil, signatureError(ErrSigInvalidSIntID, str)
	}
	idx++
	if idx >= end {
		str := "malformed signature: S length missing"
		return nil, nil, signatureError(ErrSigMissingSLen, str)
	}
	sLen := int(sig[idx])
	if sLen == 0 {
		return nil, nil, signatureError(ErrSigZeroSLen, "malformed signature: S length is zero")
	}
	idx++
	if sLen > maxShortLen || idx+sLen != end {
		str := fmt.Sprintf("malformed signature: S length %d does not end the sequence", sLen)
		return nil, nil, signatureError(ErrSigInvalidSLen, str)
	}
	if err := checkInt(sig[idx:end], ErrSigNegativeS, ErrSigTooMuchSPadding, "S"); err != nil {
		return nil, nil, err
	}
	s = trimLeadingZeros(sig[idx:end])
	return r, s, nil
}

// checkInt rejects a non-empty INTEGER body that is negative or carries a
// leading zero byte not needed to clear the sign bit.
func checkInt(b []byte, negative, padding ErrorKind, name string) error {
	if b[0]&0x80 != 0 {
		return signatureError(negative, "malformed signature: "+name+" is negative")
	}
	if len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		return signatureError(padding, "malformed signature: "+name+" value has too much padding")
	}
	return nil
}

func trimLeadingZeros(b []byte) []byte {
	for len(b) > 0 && b[0] == 0x00 {
		b = b[1:]
	}
	return append([]byte(nil), b...)
}
