package model

// SeedIndexRequest represents request for POST /nano/keys/{private,public,account}
// with a seed. Index selects the derived account.
type SeedIndexRequest struct {
	Seed  string `json:"seed"`
	Index uint32 `json:"index"`
}

// PrivateKeyRequest represents request for POST /nano/keys/{public,account}/from-private
type PrivateKeyRequest struct {
	PrivateKey string `json:"privateKey"`
}

// PublicKeyRequest represents request for POST /nano/account/encode
type PublicKeyRequest struct {
	PublicKey string `json:"publicKey"`
}

// AccountRequest represents request for POST /nano/account/{decode,validate,qr}
type AccountRequest struct {
	Account string `json:"account" example:"nano_1111111111111111111111111111111111111111111111111111hifc8npp"`
}

// KeyResponse carries whichever of the key forms an endpoint produces
type KeyResponse struct {
	PrivateKey string `json:"privateKey,omitempty"`
	PublicKey  string `json:"publicKey,omitempty"`
	Account    string `json:"account,omitempty"`
}

// ValidateResponse represents response for POST /nano/account/validate
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// QRResponse represents response for POST /nano/account/qr
type QRResponse struct {
	QR string `json:"QR"`
}

// AccountsRequest represents request for POST /nano/accounts
type AccountsRequest struct {
	Seed  string `json:"seed"`
	From  uint32 `json:"from"`
	Count int    `json:"count" example:"10"`
}

// AccountInfo is one derived account
type AccountInfo struct {
	Index     uint32 `json:"index"`
	PublicKey string `json:"publicKey"`
	Account   string `json:"account"`
}

// AccountsResponse represents response for POST /nano/accounts
type AccountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
}
