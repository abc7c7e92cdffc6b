package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherVectors(t *testing.T) {
	tests := []struct {
		ht   HashType
		in   string
		want string
	}{
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{Ripemd160, "abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{Keccak_256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{SHA3_256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{Blake2b_256, "abc", "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
		{Blake2b_512, "abc", "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d1" +
			"7d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
		{Blake256, "", "716f6e863f744b9ac22c97ec7b76ea5f5908bc5b2f67c61510bfc4751384ea7a"},
	}
	for _, test := range tests {
		got := CalcHash([]byte(test.in), GetHasher(test.ht))
		assert.Equal(t, test.want, hex.EncodeToString(got), test.ht.String())
		assert.Equal(t, test.want, hex.EncodeToString(Func(test.ht)([]byte(test.in))), test.ht.String())
	}
}

func TestCalcHashResetsHasher(t *testing.T) {
	h := GetHasher(SHA256)
	first := CalcHash([]byte("abc"), h)
	second := CalcHash([]byte("abc"), h)
	assert.Equal(t, first, second)

	assert.Equal(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358",
		hex.EncodeToString(DoubleCalcHash([]byte("abc"), h)))
}

func TestHash160(t *testing.T) {
	pub, _ := hex.DecodeString("0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352")
	assert.Equal(t, "f54a5851e9372b87810a8e60cdd2e7cfd80b6e31", hex.EncodeToString(Hash160(pub)))
}

func TestHashTypeNames(t *testing.T) {
	for ht := SHA256; ht <= Blake256; ht++ {
		got, err := HashTypeFromString(ht.String())
		require.NoError(t, err)
		assert.Equal(t, ht, got)
		assert.NotNil(t, GetHasher(ht))
	}
	_, err := HashTypeFromString("md5")
	assert.Error(t, err)
	assert.Nil(t, GetHasher(HashType(200)))
	assert.Equal(t, "HashType(200)", HashType(200).String())
}

func TestNewHash(t *testing.T) {
	_, err := NewHash(make([]byte, 31))
	assert.Error(t, err)

	h, err := NewHash(make([]byte, HashSize))
	require.NoError(t, err)
	assert.Equal(t, ZeroHash, *h)
	assert.Len(t, h.String(), 64)
}
