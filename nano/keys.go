package nano

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/AlexZinkM/local-nano/internal/common"
	"github.com/AlexZinkM/local-nano/internal/crypto"
	"github.com/AlexZinkM/local-nano/internal/model"
)

// MaxDeriveCount caps DeriveAccounts batches
const MaxDeriveCount = 1000

// CreateSeed returns a new random seed as hex
func (s *Service) CreateSeed() (string, error) {
	seed, err := crypto.NewSeed(s.random)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()
	return hex.EncodeToString(seed[:]), nil
}

// PrivateKeyFromSeed returns the private key of account index as hex
func (s *Service) PrivateKeyFromSeed(seedHex string, index uint32) (string, error) {
	seed, err := parseSeed(seedHex)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()

	priv := crypto.DerivePrivateKey(seed, index)
	defer priv.Wipe()
	return hex.EncodeToString(priv[:]), nil
}

// PublicKeyFromPrivateKey returns the public key of a private key as hex
func (s *Service) PublicKeyFromPrivateKey(privateKeyHex string) (string, error) {
	pub, err := s.publicKeyFromPrivateHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pub[:]), nil
}

// AccountFromPrivateKey returns the account of a private key
func (s *Service) AccountFromPrivateKey(privateKeyHex string) (string, error) {
	pub, err := s.publicKeyFromPrivateHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	return s.codec.Encode(pub), nil
}

// PublicKeyFromSeed returns the public key of account index as hex
func (s *Service) PublicKeyFromSeed(seedHex string, index uint32) (string, error) {
	pub, err := s.publicKeyFromSeedHex(seedHex, index)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pub[:]), nil
}

// AccountFromSeed returns the account of account index
func (s *Service) AccountFromSeed(seedHex string, index uint32) (string, error) {
	pub, err := s.publicKeyFromSeedHex(seedHex, index)
	if err != nil {
		return "", err
	}
	return s.codec.Encode(pub), nil
}

// DeriveAccounts returns count consecutive accounts starting at index from
func (s *Service) DeriveAccounts(seedHex string, from uint32, count int) ([]model.AccountInfo, error) {
	if count < 1 || count > MaxDeriveCount {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d: %w", MaxDeriveCount, count, common.ErrInvalidFormat)
	}
	if uint64(from)+uint64(count)-1 > math.MaxUint32 {
		return nil, fmt.Errorf("index range %d+%d exceeds 32 bits: %w", from, count, common.ErrOverflow)
	}

	seed, err := parseSeed(seedHex)
	if err != nil {
		return nil, err
	}
	defer seed.Wipe()

	accounts := make([]model.AccountInfo, 0, count)
	for i := 0; i < count; i++ {
		index := from + uint32(i)
		pub := s.publicKey(seed, index)
		accounts = append(accounts, model.AccountInfo{
			Index:     index,
			PublicKey: hex.EncodeToString(pub[:]),
			Account:   s.codec.Encode(pub),
		})
	}
	return accounts, nil
}

// PublicKeyFromAccount decodes an account to its public key as hex
func (s *Service) PublicKeyFromAccount(account string) (string, error) {
	pub, err := s.codec.Decode(account)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(pub[:]), nil
}

// AccountFromPublicKey encodes a hex public key as an account
func (s *Service) AccountFromPublicKey(publicKeyHex string) (string, error) {
	pub, err := parsePublicKey(publicKeyHex)
	if err != nil {
		return "", err
	}
	return s.codec.Encode(pub), nil
}

// ValidateAccount reports whether account has a known prefix, a valid body and a matching checksum
func (s *Service) ValidateAccount(account string) bool {
	return s.codec.Valid(account)
}

func (s *Service) publicKeyFromPrivateHex(privateKeyHex string) (crypto.PublicKey, error) {
	priv, err := parsePrivateKey(privateKeyHex)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	defer priv.Wipe()
	return s.deriver.PublicKey(priv), nil
}

func (s *Service) publicKeyFromSeedHex(seedHex string, index uint32) (crypto.PublicKey, error) {
	seed, err := parseSeed(seedHex)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	defer seed.Wipe()
	return s.publicKey(seed, index), nil
}

func (s *Service) publicKey(seed crypto.Seed, index uint32) crypto.PublicKey {
	priv := crypto.DerivePrivateKey(seed, index)
	defer priv.Wipe()
	return s.deriver.PublicKey(priv)
}
