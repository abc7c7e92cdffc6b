// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package params holds the version bytes that tie addresses and private
// keys to a Bitcoin network.
package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Params defines a network by the prefixes of its encoded keys and
// addresses.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being a standard
	// network or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet is returned by ByName for unregistered networks.
	ErrUnknownNet = errors.New("unknown network")
)

var registeredNets = make(map[string]*Params)

// Register registers the network parameters for a Bitcoin network.  This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Name] = params
	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ByName returns the registered network called name.
func ByName(name string) (*Params, error) {
	p, ok := registeredNets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNet, name)
	}
	return p, nil
}

// Names lists the registered networks in order.
func Names() []string {
	names := make([]string, 0, len(registeredNets))
	for name := range registeredNets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any default or registered network.
func IsPubKeyHashAddrID(id byte) bool {
	for _, p := range registeredNets {
		if p.PubKeyHashAddrID == id {
			return true
		}
	}
	return false
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegNetParams)
}
