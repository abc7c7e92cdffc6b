// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPubKeyInvalidLen is returned when a serialized public key is not
	// one of the recognized lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when a serialized public key has an
	// unknown format byte.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when the x coordinate is not below the
	// field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when the y coordinate is not below the
	// field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when a point does not satisfy the
	// curve equation.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyInfinity is returned when a point is the point at infinity.
	ErrPubKeyInfinity = ErrorKind("ErrPubKeyInfinity")

	// ErrInvalidDomain is returned by New for inconsistent curve parameters.
	ErrInvalidDomain = ErrorKind("ErrInvalidDomain")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve points and parameters. It has
// full support for errors.Is and errors.As.
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

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
