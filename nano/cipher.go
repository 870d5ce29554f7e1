package nano

import (
	"encoding/hex"

	"github.com/AlexZinkM/local-nano/internal/common"
	"github.com/AlexZinkM/local-nano/internal/crypto"
)

// Sha256 returns the hex SHA-256 digest of the UTF-8 bytes of data
func (s *Service) Sha256(data string) string {
	sum := crypto.Sha256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Encrypt encrypts a hex seed with password and returns the hex ciphertext.
// A seed that is not 32 bytes fails with common.ErrInvalidLength.
func (s *Service) Encrypt(seedHex, password string) (string, error) {
	seed, err := decodeHex32(seedHex, "seed", common.ErrInvalidLength)
	if err != nil {
		return "", err
	}
	defer clear(seed[:])

	passwordBytes := []byte(password)
	defer clear(passwordBytes)

	blob, err := crypto.EncryptSeed(seed[:], passwordBytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(blob[:]), nil
}

// Decrypt decrypts a hex ciphertext with password and returns the hex seed,
// or "" together with the error.
//
// A wrong password is not detected: it yields a different, well-formed seed.
func (s *Service) Decrypt(cipherHex, password string) (string, error) {
	blob, err := decodeHex32(cipherHex, "encrypted seed", common.ErrInvalidLength)
	if err != nil {
		return "", err
	}

	passwordBytes := []byte(password)
	defer clear(passwordBytes)

	seed, err := crypto.DecryptSeed(blob[:], passwordBytes)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()
	return hex.EncodeToString(seed[:]), nil
}

// SeedToMnemonic returns the 24-word BIP-39 phrase of a hex seed
func (s *Service) SeedToMnemonic(seedHex string) (string, error) {
	seed, err := parseSeed(seedHex)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()
	return crypto.SeedToMnemonic(seed)
}

// MnemonicToSeed returns the hex seed of a 24-word BIP-39 phrase
func (s *Service) MnemonicToSeed(mnemonic string) (string, error) {
	seed, err := crypto.MnemonicToSeed(mnemonic)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()
	return hex.EncodeToString(seed[:]), nil
}
