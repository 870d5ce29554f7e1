// Package crypto implements Nano key material handling: seed generation,
// deterministic private keys, public keys and password-based seed encryption.
package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"
)

const (
	SeedLen       = 32
	PrivateKeyLen = 32
	PublicKeyLen  = 32
)

// Seed is the root secret all accounts of a wallet are derived from.
type Seed [SeedLen]byte

// PrivateKey is an Ed25519 private key (the 32-byte RFC 8032 seed form).
type PrivateKey [PrivateKeyLen]byte

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeyLen]byte

// Wipe zeroes the seed
func (s *Seed) Wipe() { clear(s[:]) }

// Wipe zeroes the private key
func (k *PrivateKey) Wipe() { clear(k[:]) }

// NewSeed reads a fresh seed from r, or from crypto/rand when r is nil.
// A short read is an error; there is no fallback source.
func NewSeed(r io.Reader) (Seed, error) {
	if r == nil {
		r = rand.Reader
	}
	var seed Seed
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		seed.Wipe()
		return Seed{}, fmt.Errorf("failed to generate seed: %w", err)
	}
	return seed, nil
}

// DerivePrivateKey returns the private key of account index for seed:
// Blake2b-256(seed || big-endian uint32 index).
func DerivePrivateKey(seed Seed, index uint32) PrivateKey {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)
	h.Write(seed[:])
	h.Write(idx[:])

	var priv PrivateKey
	h.Sum(priv[:0])
	return priv
}

// PublicKeyDeriver turns a private key into its public key.
// Implementations must be deterministic and safe for concurrent use.
type PublicKeyDeriver interface {
	PublicKey(priv PrivateKey) PublicKey
}

// Blake2bEd25519 is the Ed25519 variant used by the Nano ledger, which hashes
// the private key with Blake2b-512 instead of SHA-512.
type Blake2bEd25519 struct{}

// PublicKey implements PublicKeyDeriver
func (Blake2bEd25519) PublicKey(priv PrivateKey) PublicKey {
	h := blake2b.Sum512(priv[:])
	defer clear(h[:])
	return scalarBasePoint(h[:32])
}

// StandardEd25519 is RFC 8032 Ed25519 (SHA-512).
type StandardEd25519 struct{}

// PublicKey implements PublicKeyDeriver
func (StandardEd25519) PublicKey(priv PrivateKey) PublicKey {
	key := ed25519.NewKeyFromSeed(priv[:])
	defer clear(key)

	var pub PublicKey
	copy(pub[:], key[ed25519.SeedSize:])
	return pub
}

// scalarBasePoint clamps the 32-byte hash prefix into a scalar s and returns s*B
func scalarBasePoint(prefix []byte) PublicKey {
	s, err := edwards25519.NewScalar().SetBytesWithClamping(prefix)
	if err != nil {
		// prefix is always 32 bytes
		panic(err)
	}
	var pub PublicKey
	copy(pub[:], new(edwards25519.Point).ScalarBaseMult(s).Bytes())
	return pub
}
