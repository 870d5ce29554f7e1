// Package nano is the string-in, string-out operation set of the toolkit.
//
// Amounts are decimal strings, keys and seeds are hex strings (any case on
// input, lowercase on output) and accounts are nano_/xrb_ strings. A Service
// holds only immutable configuration and is safe for concurrent use as long as
// its random source is.
package nano

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/AlexZinkM/local-nano/internal/account"
	"github.com/AlexZinkM/local-nano/internal/common"
	"github.com/AlexZinkM/local-nano/internal/crypto"
)

// Service exposes the toolkit operations
type Service struct {
	random  io.Reader
	deriver crypto.PublicKeyDeriver
	prefix  string
	codec   *account.Codec
}

// Option configures a Service
type Option func(*Service)

// WithRandom sets the entropy source used for new seeds. Defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(s *Service) { s.random = r }
}

// WithPublicKeyDeriver replaces the Blake2b Ed25519 public key derivation.
// A nil deriver keeps the default.
func WithPublicKeyDeriver(d crypto.PublicKeyDeriver) Option {
	return func(s *Service) {
		if d != nil {
			s.deriver = d
		}
	}
}

// WithPrefix sets the prefix of encoded accounts (account.PrefixNano or account.PrefixXRB)
func WithPrefix(prefix string) Option {
	return func(s *Service) { s.prefix = prefix }
}

// New creates a Service
func New(opts ...Option) (*Service, error) {
	s := &Service{
		deriver: crypto.Blake2bEd25519{},
		prefix:  account.PrefixNano,
	}
	for _, opt := range opts {
		opt(s)
	}

	codec, err := account.NewCodec(s.prefix)
	if err != nil {
		return nil, err
	}
	s.codec = codec
	return s, nil
}

// decodeHex32 decodes a 64-character hex string.
// Non-hex characters fail with common.ErrParse, other lengths with lengthErr.
func decodeHex32(s, what string, lengthErr error) ([32]byte, error) {
	var out [32]byte
	s = strings.TrimSpace(s)
	if len(s) != hex.EncodedLen(len(out)) {
		return out, fmt.Errorf("%s must be %d hex characters, got %d: %w", what, hex.EncodedLen(len(out)), len(s), lengthErr)
	}
	if _, err := hex.Decode(out[:], []byte(s)); err != nil {
		clear(out[:])
		return out, fmt.Errorf("%s is not valid hex: %w", what, common.ErrParse)
	}
	return out, nil
}

func parseSeed(s string) (crypto.Seed, error) {
	b, err := decodeHex32(s, "seed", common.ErrInvalidFormat)
	return crypto.Seed(b), err
}

func parsePrivateKey(s string) (crypto.PrivateKey, error) {
	b, err := decodeHex32(s, "private key", common.ErrInvalidFormat)
	return crypto.PrivateKey(b), err
}

func parsePublicKey(s string) (crypto.PublicKey, error) {
	b, err := decodeHex32(s, "public key", common.ErrInvalidFormat)
	return crypto.PublicKey(b), err
}
