package nano

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/AlexZinkM/local-nano/internal/crypto"
	"github.com/AlexZinkM/local-nano/internal/model"

	"github.com/skip2/go-qrcode"
)

const (
	uriScheme = "nano:"
	qrSize    = 256
)

// GenerateWallet creates a new seed and returns it with its mnemonic, the
// first account and a QR code of that account. Nothing is persisted: the
// caller is responsible for storing the seed.
func (s *Service) GenerateWallet() (*model.GenerateResponse, error) {
	seed, err := crypto.NewSeed(s.random)
	if err != nil {
		return nil, err
	}
	defer seed.Wipe()

	mnemonic, err := crypto.SeedToMnemonic(seed)
	if err != nil {
		return nil, err
	}

	address := s.codec.Encode(s.publicKey(seed, 0))

	qrCode, err := generateQRCode(uriScheme + address)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return &model.GenerateResponse{
		Seed:     hex.EncodeToString(seed[:]),
		Mnemonic: mnemonic,
		Account:  address,
		QR:       qrCode,
	}, nil
}

// AccountQR returns a base64 PNG QR code of the nano: URI of a valid account
func (s *Service) AccountQR(account string) (string, error) {
	if _, err := s.codec.Decode(account); err != nil {
		return "", err
	}
	return generateQRCode(uriScheme + account)
}

// generateQRCode generates QR code of content in base64
func generateQRCode(content string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(qrSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
