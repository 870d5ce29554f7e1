package crypto

import (
	"crypto/aes"
	"fmt"

	"github.com/AlexZinkM/local-nano/internal/common"
)

// BlobLen is the size of an encrypted seed: two AES blocks
const BlobLen = 32

// DeriveKeyFromPassword returns the AES-256 key for a password.
//
// The key is a single unsalted SHA-256 round over the password bytes. This is
// the scheme existing encrypted seed files use, so it cannot be stretched
// without breaking them.
func DeriveKeyFromPassword(password []byte) [32]byte {
	return Sha256(password)
}

// EncryptSeed encrypts a 32-byte seed with AES-256 in ECB mode under the
// password key.
// password must be []byte for security (caller should zero it after use)
func EncryptSeed(seed []byte, password []byte) ([BlobLen]byte, error) {
	var blob [BlobLen]byte
	if len(seed) != SeedLen {
		return blob, fmt.Errorf("seed must be %d bytes, got %d: %w", SeedLen, len(seed), common.ErrInvalidLength)
	}

	key := DeriveKeyFromPassword(password)
	defer clear(key[:])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return blob, fmt.Errorf("failed to create cipher: %w", err)
	}

	for i := 0; i < BlobLen; i += aes.BlockSize {
		block.Encrypt(blob[i:i+aes.BlockSize], seed[i:i+aes.BlockSize])
	}
	return blob, nil
}
