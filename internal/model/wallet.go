package model

// EncryptRequest represents request for POST /nano/seed/encrypt
type EncryptRequest struct {
	Seed     string `json:"seed"`
	Password string `json:"password"`
}

// DecryptRequest represents request for POST /nano/seed/decrypt
type DecryptRequest struct {
	CipherText string `json:"cipherText"`
	Password   string `json:"password"`
}

// CipherResponse represents response for POST /nano/seed/encrypt
type CipherResponse struct {
	CipherText string `json:"cipherText"`
}

// SeedResponse carries a hex seed. Seed is empty when decryption failed.
type SeedResponse struct {
	Seed string `json:"seed"`
}

// SeedRequest represents request for POST /nano/seed/mnemonic
type SeedRequest struct {
	Seed string `json:"seed"`
}

// MnemonicRequest represents request for POST /nano/seed/from-mnemonic
type MnemonicRequest struct {
	Mnemonic string `json:"mnemonic"`
}

// MnemonicResponse represents response for POST /nano/seed/mnemonic
type MnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
}

// DigestRequest represents request for POST /nano/sha256
type DigestRequest struct {
	Data string `json:"data"`
}

// DigestResponse represents response for POST /nano/sha256
type DigestResponse struct {
	Digest string `json:"digest"`
}
