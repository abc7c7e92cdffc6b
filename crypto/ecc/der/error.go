// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package der

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrSigTooShort is returned when a signature is shorter than the
	// smallest possible encoding.
	ErrSigTooShort = ErrorKind("ErrSigTooShort")

	// ErrSigInvalidSeqID is returned when a signature does not start with
	// the ASN.1 sequence ID.
	ErrSigInvalidSeqID = ErrorKind("ErrSigInvalidSeqID")

	// ErrSigInvalidDataLen is returned when the sequence length does not
	// match the buffer or uses the long form.
	ErrSigInvalidDataLen = ErrorKind("ErrSigInvalidDataLen")

	// ErrSigInvalidRIntID is returned when R is not tagged as an ASN.1
	// integer.
	ErrSigInvalidRIntID = ErrorKind("ErrSigInvalidRIntID")

	// ErrSigZeroRLen is returned when R has a length of zero.
	ErrSigZeroRLen = ErrorKind("ErrSigZeroRLen")

	// ErrSigInvalidRLen is returned when R runs past the end of the
	// sequence.
	ErrSigInvalidRLen = ErrorKind("ErrSigInvalidRLen")

	// ErrSigNegativeR is returned when R has its sign bit set.
	ErrSigNegativeR = ErrorKind("ErrSigNegativeR")

	// ErrSigTooMuchRPadding is returned when R starts with a zero byte that
	// is not needed to clear the sign bit.
	ErrSigTooMuchRPadding = ErrorKind("ErrSigTooMuchRPadding")

	// ErrSigMissingSTypeID is returned when the sequence ends before the
	// type ID of S.
	ErrSigMissingSTypeID = ErrorKind("ErrSigMissingSTypeID")

	// ErrSigInvalidSIntID is returned when S is not tagged as an ASN.1
	// integer.
	ErrSigInvalidSIntID = ErrorKind("ErrSigInvalidSIntID")

	// ErrSigMissingSLen is returned when the sequence ends before the length
	// of S.
	ErrSigMissingSLen = ErrorKind("ErrSigMissingSLen")

	// ErrSigZeroSLen is returned when S has a length of zero.
	ErrSigZeroSLen = ErrorKind("ErrSigZeroSLen")

	// ErrSigInvalidSLen is returned when S does not end exactly at the end
	// of the sequence.
	ErrSigInvalidSLen = ErrorKind("ErrSigInvalidSLen")

	// ErrSigNegativeS is returned when S has its sign bit set.
	ErrSigNegativeS = ErrorKind("ErrSigNegativeS")

	// ErrSigTooMuchSPadding is returned when S starts with a zero byte that
	// is not needed to clear the sign bit.
	ErrSigTooMuchSPadding = ErrorKind("ErrSigTooMuchSPadding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a DER parsing error. It has full support for errors.Is
// and errors.As.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// signatureError creates an Error given a set of arguments.
func signatureError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
