// Package account encodes public keys as checksummed Nano account strings.
//
// An account is a prefix followed by 60 characters of a custom base-32
// alphabet: 52 characters for the 256-bit key (left-padded with 4 zero bits)
// and 8 characters for a 5-byte Blake2b checksum stored in reversed byte
// order.
package account

import (
	"bytes"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/AlexZinkM/local-nano/internal/common"

	"golang.org/x/crypto/blake2b"
)

const (
	Alphabet = "13456789abcdefghijkmnopqrstuwxyz"

	PrefixNano = "nano_"
	PrefixXRB  = "xrb_"

	KeyLen      = 32
	checksumLen = 5

	keyChars      = 52
	checksumChars = 8
	bodyChars     = keyChars + checksumChars

	// the key is encoded as 35 bytes (3 leading zero bytes) so that it lines
	// up with 5-bit groups; the first 4 characters cover 20 of those 24 zero
	// bits and are dropped
	paddedKeyLen = KeyLen + 3
	droppedChars = 4
)

var encoding = base32.NewEncoding(Alphabet).WithPadding(base32.NoPadding)

// prefixes accepted on decode
var prefixes = []string{PrefixNano, PrefixXRB, "nano-", "xrb-"}

// Codec encodes and decodes accounts. The zero value encodes with PrefixNano.
type Codec struct {
	Prefix string
}

// NewCodec returns a Codec that encodes with prefix, which must be one of
// PrefixNano or PrefixXRB.
func NewCodec(prefix string) (*Codec, error) {
	if prefix != PrefixNano && prefix != PrefixXRB {
		return nil, fmt.Errorf("unsupported account prefix %q: %w", prefix, common.ErrInvalidFormat)
	}
	return &Codec{Prefix: prefix}, nil
}

// Encode returns the account string for a public key
func (c *Codec) Encode(pub [KeyLen]byte) string {
	prefix := c.Prefix
	if prefix == "" {
		prefix = PrefixNano
	}

	var padded [paddedKeyLen]byte
	copy(padded[3:], pub[:])
	key := encoding.EncodeToString(padded[:])[droppedChars:]

	sum := checksum(pub)

	var b strings.Builder
	b.Grow(len(prefix) + bodyChars)
	b.WriteString(prefix)
	b.WriteString(key)
	b.WriteString(encoding.EncodeToString(sum[:]))
	return b.String()
}

// Decode returns the public key of an account string.
// Prefix, length, alphabet and padding problems fail with
// common.ErrInvalidFormat; a checksum mismatch fails with
// common.ErrInvalidChecksum.
func (c *Codec) Decode(account string) ([KeyLen]byte, error) {
	var pub [KeyLen]byte

	body, ok := stripPrefix(account)
	if !ok {
		return pub, fmt.Errorf("account %q has unknown prefix: %w", account, common.ErrInvalidFormat)
	}
	if len(body) != bodyChars {
		return pub, fmt.Errorf("account body must be %d characters, got %d: %w", bodyChars, len(body), common.ErrInvalidFormat)
	}

	padded, err := encoding.DecodeString(strings.Repeat("1", droppedChars) + body[:keyChars])
	if err != nil {
		return pub, fmt.Errorf("invalid account characters: %w", common.ErrInvalidFormat)
	}
	if len(padded) != paddedKeyLen || padded[0] != 0 || padded[1] != 0 || padded[2] != 0 {
		return pub, fmt.Errorf("account has non-zero padding bits: %w", common.ErrInvalidFormat)
	}

	got, err := encoding.DecodeString(body[keyChars:])
	if err != nil || len(got) != checksumLen {
		return pub, fmt.Errorf("invalid checksum characters: %w", common.ErrInvalidFormat)
	}

	copy(pub[:], padded[3:])
	want := checksum(pub)
	if !bytes.Equal(got, want[:]) {
		clear(pub[:])
		return pub, fmt.Errorf("account %q: %w", account, common.ErrInvalidChecksum)
	}
	return pub, nil
}

// Valid reports whether account decodes without error
func (c *Codec) Valid(account string) bool {
	_, err := c.Decode(account)
	return err == nil
}

func stripPrefix(account string) (string, bool) {
	for _, p := range prefixes {
		if body, ok := strings.CutPrefix(account, p); ok {
			return body, true
		}
	}
	return "", false
}

// checksum is the 5-byte Blake2b digest of the key, byte-reversed
func checksum(pub [KeyLen]byte) [checksumLen]byte {
	h, err := blake2b.New(checksumLen, nil)
	if err != nil {
		// only fails for sizes outside 1..64 or oversized keys
		panic(err)
	}
	h.Write(pub[:])

	var sum [checksumLen]byte
	digest := h.Sum(nil)
	for i := range sum {
		sum[i] = digest[checksumLen-1-i]
	}
	return sum
}
