// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

// RegNetParams defines the network parameters for the regression test
// network. It shares its prefixes with the test network.
var RegNetParams = Params{
	Name: "regnet",

	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xef,
}
