package crypto

import (
	"crypto/sha256"
)

// Sha256 returns the SHA-256 digest of data
func Sha256(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}
