package model

// GenerateResponse represents response for POST /nano/generate
type GenerateResponse struct {
	Seed     string `json:"seed"`
	Mnemonic string `json:"mnemonic"`
	Account  string `json:"account"`
	QR       string `json:"QR"`
}
