package address

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobysharp/btcdev/crypto/ecc/curve"
	"github.com/tobysharp/btcdev/crypto/ecc/ecdsa"
	"github.com/tobysharp/btcdev/params"
)

const (
	vectorKey     = "18e14a7b6a307f426a94f8114701e7c8e774e7f9a47e2c2035db29a206321725"
	vectorHash160 = "f54a5851e9372b87810a8e60cdd2e7cfd80b6e31"
)

func vectorPrivKey(t *testing.T) *ecdsa.PrivateKey {
	b, _ := hex.DecodeString(vectorKey)
	priv, err := ecdsa.PrivKeyFromBytes(curve.S256(), b)
	require.NoError(t, err)
	return priv
}

func TestFromPublicKey(t *testing.T) {
	priv := vectorPrivKey(t)

	addr := FromPublicKey(priv.PubKey(), &params.MainNetParams)
	assert.Equal(t, "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs", addr.String())
	assert.Equal(t, vectorHash160, hex.EncodeToString(addr.Hash160()[:]))
	assert.True(t, addr.IsForNetwork(&params.MainNetParams))
	assert.False(t, addr.IsForNetwork(&params.TestNetParams))

	addr = FromPublicKey(priv.PubKey(), &params.TestNetParams)
	assert.Equal(t, "n3svudhm7bt6j3nTT9uu1A57Cs9pKK3iXW", addr.String())
}

func TestDecode(t *testing.T) {
	addr, err := Decode("1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs", &params.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, vectorHash160, hex.EncodeToString(addr.Hash160()[:]))
	assert.Equal(t, &params.MainNetParams, addr.Net())

	tests := []struct {
		name string
		addr string
		net  *params.Params
		err  error
	}{
		{"bad checksum", "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAt", &params.MainNetParams, ErrChecksumMismatch},
		{"other network", "n3svudhm7bt6j3nTT9uu1A57Cs9pKK3iXW", &params.MainNetParams, ErrWrongNetwork},
		{"unknown prefix", base58.CheckEncode(make([]byte, 20), 0x42), &params.MainNetParams, ErrUnknownAddressType},
		{"short hash", base58.CheckEncode(make([]byte, 19), 0x00), &params.MainNetParams, ErrUnknownAddressType},
	}
	for _, test := range tests {
		_, err := Decode(test.addr, test.net)
		assert.Equal(t, test.err, err, test.name)
	}

	_, err = Decode("1PMycacnJaSqwwJqjawXBErnLsZ7RkXUA0", &params.MainNetParams)
	assert.Error(t, err)
}

func TestNewPubKeyHashAddress(t *testing.T) {
	_, err := NewPubKeyHashAddress(make([]byte, 21), &params.MainNetParams)
	assert.Error(t, err)

	h, _ := hex.DecodeString("62e907b15cbf27d5425399ebf6f0fb50ebb88f18")
	addr, err := NewPubKeyHashAddress(h, &params.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", addr.Encode())
}
