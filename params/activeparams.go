// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

// ActiveNetParams is a pointer to the parameters specific to the
// currently active network.
var ActiveNetParams = &MainNetParams

// SetActive makes the network called name the active one.
func SetActive(name string) error {
	p, err := ByName(name)
	if err != nil {
		return err
	}
	ActiveNetParams = p
	return nil
}
