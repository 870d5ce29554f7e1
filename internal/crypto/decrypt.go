package crypto

import (
	"crypto/aes"
	"fmt"

	"github.com/AlexZinkM/local-nano/internal/common"
)

// DecryptSeed reverses EncryptSeed.
//
// The format carries no authentication tag: a wrong password yields 32 bytes
// of garbage rather than an error. Callers that need to detect this must
// compare a derived account against a known one.
// password must be []byte for security (caller should zero it after use)
func DecryptSeed(blob []byte, password []byte) (Seed, error) {
	var seed Seed
	if len(blob) != BlobLen {
		return seed, fmt.Errorf("encrypted seed must be %d bytes, got %d: %w", BlobLen, len(blob), common.ErrInvalidLength)
	}

	key := DeriveKeyFromPassword(password)
	defer clear(key[:])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return seed, fmt.Errorf("failed to create cipher: %w", err)
	}

	for i := 0; i < BlobLen; i += aes.BlockSize {
		block.Decrypt(seed[i:i+aes.BlockSize], blob[i:i+aes.BlockSize])
	}
	return seed, nil
}
