package main

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/tobysharp/btcdev/qx"
	"github.com/urfave/cli/v2"
)

// printResult prints the output of a qx function.
func printResult(out string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// arg returns the n-th positional argument or an error naming it.
func arg(c *cli.Context, n int, name string) (string, error) {
	if c.NArg() <= n {
		return "", fmt.Errorf("missing %s", name)
	}
	return c.Args().Get(n), nil
}

// unary builds a command taking one positional argument.
func unary(name, usage, argName string, f func(string) (string, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<" + argName + ">",
		Action: func(c *cli.Context) error {
			a, err := arg(c, 0, argName)
			if err != nil {
				return err
			}
			return printResult(f(a))
		},
	}
}

func commands() []*cli.Command {
	cmds := []*cli.Command{
		{
			Name:  "ec-new",
			Usage: "generate a new secp256k1 private key",
			Action: func(c *cli.Context) error {
				return printResult(qx.EcNew(rand.Reader))
			},
		},
		{
			Name:      "ec-to-public",
			Usage:     "derive the public key of a private key",
			ArgsUsage: "<private key hex>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "uncompressed", Aliases: []string{"u"}, Usage: "output the 65-byte uncompressed key"},
			},
			Action: func(c *cli.Context) error {
				k, err := arg(c, 0, "private key")
				if err != nil {
					return err
				}
				return printResult(qx.EcPrivateKeyToEcPublicKey(c.Bool("uncompressed"), k))
			},
		},
		{
			Name:      "ec-to-wif",
			Usage:     "encode a private key in wallet import format",
			ArgsUsage: "<private key hex>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "uncompressed", Aliases: []string{"u"}, Usage: "mark the key as controlling an uncompressed public key"},
			},
			Action: func(c *cli.Context) error {
				k, err := arg(c, 0, "private key")
				if err != nil {
					return err
				}
				return printResult(qx.EcPrivateKeyToWif(conf.Net(), c.Bool("uncompressed"), k))
			},
		},
		unary("wif-to-ec", "decode a WIF private key", "wif", func(s string) (string, error) {
			return qx.WifToEcPrivateKey(conf.Net(), s, conf.Details)
		}),
		unary("wif-to-public", "derive the public key of a WIF private key", "wif", func(s string) (string, error) {
			return qx.WifToEcPubkey(conf.Net(), s)
		}),
		unary("ec-to-addr", "derive the P2PKH address of a public key", "public key hex", func(s string) (string, error) {
			return qx.EcPubKeyToAddress(conf.Net(), s)
		}),
		unary("addr-decode", "decode a P2PKH address to its hash160", "address", func(s string) (string, error) {
			return qx.DecodeAddress(conf.Net(), s, conf.Details)
		}),
		{
			Name:      "msg-sign",
			Usage:     "sign a message with a WIF private key",
			ArgsUsage: "<wif> <message>",
			Action: func(c *cli.Context) error {
				w, err := arg(c, 0, "wif")
				if err != nil {
					return err
				}
				m, err := arg(c, 1, "message")
				if err != nil {
					return err
				}
				return printResult(qx.MsgSign(conf.Net(), w, m, rand.Reader, conf.Details))
			},
		},
		{
			Name:      "msg-verify",
			Usage:     "verify a DER signature of a message",
			ArgsUsage: "<public key hex> <message> <signature hex>",
			Action: func(c *cli.Context) error {
				var a [3]string
				for i, name := range []string{"public key", "message", "signature"} {
					v, err := arg(c, i, name)
					if err != nil {
						return err
					}
					a[i] = v
				}
				return printResult(qx.VerifyMsgSignature(a[0], a[1], a[2]))
			},
		},
		unary("signature-decode", "split a DER signature into r and s", "signature hex", func(s string) (string, error) {
			return qx.DecodeSignature(s, conf.Details)
		}),
		unary("base58-encode", "encode hex data as base58", "hex", qx.Base58Encode),
		unary("base58-decode", "decode base58 to hex", "base58", qx.Base58Decode),
		base58CheckEncodeCommand(),
		{
			Name:      "base58check-decode",
			Usage:     "verify and decode a Base58Check string",
			ArgsUsage: "<base58check>",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "versionsize", Value: 1, Usage: "number of version bytes"},
				&cli.StringFlag{Name: "hasher", Aliases: []string{"a"}, Usage: "checksum hasher {dsha256, sha256, blake2b256, dblake2b256, blake2b512}"},
				&cli.IntFlag{Name: "cksumsize", Aliases: []string{"c"}, Value: 4, Usage: "checksum size"},
			},
			Action: func(c *cli.Context) error {
				s, err := arg(c, 0, "base58check")
				if err != nil {
					return err
				}
				return printResult(qx.Base58CheckDecode(c.Int("versionsize"), c.String("hasher"), c.Int("cksumsize"), s, conf.Details))
			},
		},
		{
			Name:  "smoke",
			Usage: "generate a key, derive its WIF and address, sign and verify \"abc\"",
			Action: func(c *cli.Context) error {
				return printResult(qx.Smoke(conf.Net(), rand.Reader))
			},
		},
	}
	for _, name := range qx.HashCommands {
		name := name
		cmds = append(cmds, &cli.Command{
			Name:      name,
			Usage:     "compute the " + name + " digest of hex data",
			Category:  "hash",
			ArgsUsage: "<hex>",
			Action: func(c *cli.Context) error {
				return printResult(qx.Hash(name, strings.Join(c.Args().Slice(), "")))
			},
		})
	}
	return cmds
}

func base58CheckEncodeCommand() *cli.Command {
	ver := &qx.Base58checkVersionFlag{}
	ver.Set("mainnet")
	return &cli.Command{
		Name:      "base58check-encode",
		Usage:     "encode hex data as Base58Check",
		ArgsUsage: "<hex>",
		Flags: []cli.Flag{
			&cli.GenericFlag{Name: "version", Aliases: []string{"v"}, Value: ver, Usage: "version bytes: a network name or hex"},
			&cli.StringFlag{Name: "hasher", Aliases: []string{"a"}, Usage: "checksum hasher {dsha256, sha256, blake2b256, dblake2b256, blake2b512}"},
			&cli.IntFlag{Name: "cksumsize", Aliases: []string{"c"}, Value: 4, Usage: "checksum size"},
		},
		Action: func(c *cli.Context) error {
			s, err := arg(c, 0, "hex")
			if err != nil {
				return err
			}
			return printResult(qx.Base58CheckEncode(ver.Ver, c.String("hasher"), c.Int("cksumsize"), s))
		},
	}
}
