// Copyright (c) 2017-2018 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// btcdev is a toolbox for secp256k1 keys, Bitcoin addresses and ECDSA
// signatures built on a from-scratch big integer and curve stack.
package main

import (
	"fmt"
	"os"

	"github.com/tobysharp/btcdev/log"
	"github.com/tobysharp/btcdev/qx"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func main() {
	if err := btcdev(os.Args); err != nil {
		qx.ErrExit(err)
	}
}

func btcdev(args []string) error {
	app := &cli.App{
		Name:      "btcdev",
		Version:   version,
		Usage:     "secp256k1 keys, addresses and signatures",
		Copyright: "(c) 2020 btcdev",
		Flags:     AppFlags,
		Commands:  commands(),
		Before: func(c *cli.Context) error {
			return loadConfig(c)
		},
		After: func(c *cli.Context) error {
			if conf.Metrics {
				if t := qx.MetricsTable(); t != "" {
					fmt.Fprintln(os.Stderr, t)
				}
			}
			log.Close()
			return nil
		},
		EnableBashCompletion: true,
	}
	return app.Run(args)
}
