package account

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/AlexZinkM/local-nano/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	genesisKey     = "e89208dd038fbb269987689621d52292ae9c35941a7484756ecced92a65093ba"
	genesisAccount = "xrb_3t6k35gi95xu6tergt6p69ck76ogmitsa8mnijtpxm9fkcm736xtoncuohr3"
	burnAccount    = "nano_1111111111111111111111111111111111111111111111111111hifc8npp"
)

func mustKey(t *testing.T, s string) [KeyLen]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, KeyLen)
	return [KeyLen]byte(b)
}

func TestEncode_KnownAccounts(t *testing.T) {
	var zero [KeyLen]byte
	assert.Equal(t, burnAccount, (&Codec{}).Encode(zero))

	xrb, err := NewCodec(PrefixXRB)
	require.NoError(t, err)
	assert.Equal(t, genesisAccount, xrb.Encode(mustKey(t, genesisKey)))
}

func TestDecode_KnownAccounts(t *testing.T) {
	c := &Codec{}

	pub, err := c.Decode(genesisAccount)
	require.NoError(t, err)
	assert.Equal(t, genesisKey, hex.EncodeToString(pub[:]))

	// both prefixes and separators resolve to the same key
	body := strings.TrimPrefix(genesisAccount, PrefixXRB)
	for _, p := range []string{"nano_", "nano-", "xrb-"} {
		got, err := c.Decode(p + body)
		require.NoError(t, err, p)
		assert.Equal(t, pub, got)
	}

	pub, err = c.Decode(burnAccount)
	require.NoError(t, err)
	assert.Equal(t, [KeyLen]byte{}, pub)
}

func TestDecode_Format(t *testing.T) {
	c := &Codec{}
	body := strings.TrimPrefix(burnAccount, PrefixNano)

	tests := map[string]string{
		"no prefix":      body,
		"bad prefix":     "ban_" + body,
		"short":          burnAccount[:len(burnAccount)-1],
		"long":           burnAccount + "1",
		"bad alphabet":   "nano_0" + body[1:],
		"uppercase":      strings.ToUpper(burnAccount),
		"padding bits":   "nano_4" + body[1:],
		"excluded chars": "nano_" + strings.Repeat("l", 52) + body[52:],
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.Decode(in)
			assert.ErrorIs(t, err, common.ErrInvalidFormat)
		})
	}
}

func TestDecode_ChecksumFlip(t *testing.T) {
	c := &Codec{}
	body := strings.TrimPrefix(genesisAccount, PrefixXRB)

	// position 0 only carries one key bit, flips there are format errors
	for i := 1; i < len(body); i++ {
		replacement := byte('1')
		if body[i] == '1' {
			replacement = '3'
		}
		tampered := PrefixXRB + body[:i] + string(replacement) + body[i+1:]

		_, err := c.Decode(tampered)
		assert.ErrorIs(t, err, common.ErrInvalidChecksum, "position %d", i)
	}

	// '3' -> '1' flips the key's top bit
	_, err := c.Decode(PrefixXRB + "1" + body[1:])
	assert.ErrorIs(t, err, common.ErrInvalidChecksum)
}

func TestRoundTrip(t *testing.T) {
	c := &Codec{}
	rapid.Check(t, func(t *rapid.T) {
		key := [KeyLen]byte(rapid.SliceOfN(rapid.Byte(), KeyLen, KeyLen).Draw(t, "key"))

		account := c.Encode(key)
		if len(account) != len(PrefixNano)+bodyChars {
			t.Fatalf("unexpected length %d for %s", len(account), account)
		}
		got, err := c.Decode(account)
		if err != nil {
			t.Fatalf("Decode(%s): %v", account, err)
		}
		if got != key {
			t.Fatalf("round trip mismatch for %x", key)
		}
	})
}

func TestNewCodec(t *testing.T) {
	_, err := NewCodec("ban_")
	assert.ErrorIs(t, err, common.ErrInvalidFormat)

	c, err := NewCodec(PrefixNano)
	require.NoError(t, err)
	assert.True(t, c.Valid(burnAccount))
	assert.False(t, c.Valid("nano_"))
}
