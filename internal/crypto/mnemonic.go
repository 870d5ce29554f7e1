package crypto

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/local-nano/internal/common"

	"github.com/tyler-smith/go-bip39"
)

// SeedToMnemonic returns the 24-word BIP-39 phrase whose entropy is the seed
func SeedToMnemonic(seed Seed) (string, error) {
	m, err := bip39.NewMnemonic(seed[:])
	if err != nil {
		return "", fmt.Errorf("failed to create mnemonic: %w", err)
	}
	return m, nil
}

// MnemonicToSeed recovers the seed from a 24-word BIP-39 phrase.
// Words are matched case-insensitively; extra whitespace is ignored.
func MnemonicToSeed(mnemonic string) (Seed, error) {
	words := strings.Fields(strings.ToLower(mnemonic))
	if len(words) != 24 {
		return Seed{}, fmt.Errorf("mnemonic must have 24 words, got %d: %w", len(words), common.ErrParse)
	}

	entropy, err := bip39.EntropyFromMnemonic(strings.Join(words, " "))
	if err != nil {
		return Seed{}, fmt.Errorf("invalid mnemonic: %v: %w", err, common.ErrParse)
	}
	defer clear(entropy)
	if len(entropy) != SeedLen {
		return Seed{}, fmt.Errorf("mnemonic entropy must be %d bytes, got %d: %w", SeedLen, len(entropy), common.ErrInvalidLength)
	}

	var seed Seed
	copy(seed[:], entropy)
	return seed, nil
}
