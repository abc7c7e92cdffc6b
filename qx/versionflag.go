// Copyright 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package qx

import (
	"encoding/hex"

	"github.com/tobysharp/btcdev/params"
)

// Base58checkVersionFlag parses a Base58Check version given either as a
// network name, meaning its P2PKH prefix, or as hex bytes.
type Base58checkVersionFlag struct {
	Ver  []byte
	flag string
}

func (n *Base58checkVersionFlag) Set(s string) error {
	if p, err := params.ByName(s); err == nil {
		n.Ver = []byte{p.PubKeyHashAddrID}
		n.flag = s
		return nil
	}
	v, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	n.Ver = v
	n.flag = s
	return nil
}

func (n *Base58checkVersionFlag) String() string {
	return n.flag
}
