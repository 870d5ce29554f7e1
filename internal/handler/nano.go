package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/local-nano/internal/common"
	"github.com/AlexZinkM/local-nano/internal/logging"
	"github.com/AlexZinkM/local-nano/internal/model"
	"github.com/AlexZinkM/local-nano/nano"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// NanoHandler serves the toolkit operations over HTTP
type NanoHandler struct {
	svc *nano.Service
	log logging.Logger
}

// NewNanoHandler creates a new NanoHandler
func NewNanoHandler(svc *nano.Service, log logging.Logger) (*NanoHandler, error) {
	if svc == nil {
		return nil, errors.New("nano service is nil")
	}
	if log == nil {
		log = logging.Nop()
	}
	return &NanoHandler{svc: svc, log: log}, nil
}

// NanoToRaw handles POST /nano/amount/to-raw
// @Summary      Convert Nano to raw
// @Description  Converts a decimal Nano amount to raw (1 Nano = 10^30 raw)
// @Tags         amount
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  true  "Nano amount"
// @Success      200      {object}  model.AmountResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /nano/amount/to-raw [post]
func (h *NanoHandler) NanoToRaw(w http.ResponseWriter, r *http.Request) {
	var req model.AmountRequest
	if !h.decode(w, r, &req) {
		return
	}
	raw, err := h.svc.NanoToRaw(req.Amount)
	if err != nil {
		h.fail(w, r, "nano_to_raw", err)
		return
	}
	writeJSON(w, http.StatusOK, model.AmountResponse{Amount: raw})
}

// RawToNano handles POST /nano/amount/to-nano
// @Summary      Convert raw to Nano
// @Description  Converts raw to the shortest exact decimal Nano amount
// @Tags         amount
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  true  "Raw amount"
// @Success      200      {object}  model.AmountResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/amount/to-nano [post]
func (h *NanoHandler) RawToNano(w http.ResponseWriter, r *http.Request) {
	var req model.AmountRequest
	if !h.decode(w, r, &req) {
		return
	}
	nanoAmount, err := h.svc.RawToNano(req.Amount)
	if err != nil {
		h.fail(w, r, "raw_to_nano", err)
		return
	}
	writeJSON(w, http.StatusOK, model.AmountResponse{Amount: nanoAmount})
}

// ConvertUnitToRaw handles POST /nano/amount/unit-to-raw
// @Summary      Convert legacy nano units to raw
// @Description  Multiplies a whole number of legacy nano units by 10^24
// @Tags         amount
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  true  "Whole units"
// @Success      200      {object}  model.AmountResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /nano/amount/unit-to-raw [post]
func (h *NanoHandler) ConvertUnitToRaw(w http.ResponseWriter, r *http.Request) {
	var req model.AmountRequest
	if !h.decode(w, r, &req) {
		return
	}
	raw, err := h.svc.ConvertUnitToRaw(req.Amount)
	if err != nil {
		h.fail(w, r, "unit_to_raw", err)
		return
	}
	writeJSON(w, http.StatusOK, model.AmountResponse{Amount: raw})
}

// Add handles POST /nano/amount/add
// @Summary      Add raw amounts
// @Tags         amount
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountPairRequest  true  "Raw amounts"
// @Success      200      {object}  model.AmountResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /nano/amount/add [post]
func (h *NanoHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AmountPairRequest
	if !h.decode(w, r, &req) {
		return
	}
	sum, err := h.svc.Add(req.Raw, req.BaseRaw)
	if err != nil {
		h.fail(w, r, "add", err)
		return
	}
	writeJSON(w, http.StatusOK, model.AmountResponse{Amount: sum})
}

// Subtract handles POST /nano/amount/subtract
// @Summary      Subtract raw amounts
// @Description  Returns raw - baseRaw; fails with UNDERFLOW if baseRaw > raw
// @Tags         amount
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountPairRequest  true  "Raw amounts"
// @Success      200      {object}  model.AmountResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /nano/amount/subtract [post]
func (h *NanoHandler) Subtract(w http.ResponseWriter, r *http.Request) {
	var req model.AmountPairRequest
	if !h.decode(w, r, &req) {
		return
	}
	diff, err := h.svc.Subtract(req.Raw, req.BaseRaw)
	if err != nil {
		h.fail(w, r, "subtract", err)
		return
	}
	writeJSON(w, http.StatusOK, model.AmountResponse{Amount: diff})
}

// Compare handles POST /nano/amount/compare
// @Summary      Compare raw amounts
// @Tags         amount
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountPairRequest  true  "Raw amounts"
// @Success      200      {object}  model.CompareResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/amount/compare [post]
func (h *NanoHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req model.AmountPairRequest
	if !h.decode(w, r, &req) {
		return
	}
	cmp, err := h.svc.Compare(req.Raw, req.BaseRaw)
	if err != nil {
		h.fail(w, r, "compare", err)
		return
	}
	writeJSON(w, http.StatusOK, model.CompareResponse{
		Cmp:            cmp,
		Greater:        cmp > 0,
		GreaterOrEqual: cmp >= 0,
	})
}

// Generate handles POST /nano/generate
// @Summary      Generate new seed
// @Description  Generates a random seed with its mnemonic, first account and account QR code. Nothing is stored.
// @Tags         seed
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Router       /nano/generate [post]
func (h *NanoHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}
	resp, err := h.svc.GenerateWallet()
	if err != nil {
		h.fail(w, r, "generate", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PrivateKeyFromSeed handles POST /nano/keys/private
// @Summary      Derive private key
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.SeedIndexRequest  true  "Seed and index"
// @Success      200      {object}  model.KeyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/keys/private [post]
func (h *NanoHandler) PrivateKeyFromSeed(w http.ResponseWriter, r *http.Request) {
	var req model.SeedIndexRequest
	if !h.decode(w, r, &req) {
		return
	}
	priv, err := h.svc.PrivateKeyFromSeed(req.Seed, req.Index)
	if err != nil {
		h.fail(w, r, "private_key_from_seed", err)
		return
	}
	writeJSON(w, http.StatusOK, model.KeyResponse{PrivateKey: priv})
}

// KeysFromSeed handles POST /nano/keys/seed
// @Summary      Derive public key and account from seed
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.SeedIndexRequest  true  "Seed and index"
// @Success      200      {object}  model.KeyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/keys/seed [post]
func (h *NanoHandler) KeysFromSeed(w http.ResponseWriter, r *http.Request) {
	var req model.SeedIndexRequest
	if !h.decode(w, r, &req) {
		return
	}
	pub, err := h.svc.PublicKeyFromSeed(req.Seed, req.Index)
	if err != nil {
		h.fail(w, r, "public_key_from_seed", err)
		return
	}
	acct, err := h.svc.AccountFromPublicKey(pub)
	if err != nil {
		h.fail(w, r, "account_from_seed", err)
		return
	}
	writeJSON(w, http.StatusOK, model.KeyResponse{PublicKey: pub, Account: acct})
}

// KeysFromPrivateKey handles POST /nano/keys/private-key
// @Summary      Derive public key and account from private key
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.PrivateKeyRequest  true  "Private key"
// @Success      200      {object}  model.KeyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/keys/private-key [post]
func (h *NanoHandler) KeysFromPrivateKey(w http.ResponseWriter, r *http.Request) {
	var req model.PrivateKeyRequest
	if !h.decode(w, r, &req) {
		return
	}
	pub, err := h.svc.PublicKeyFromPrivateKey(req.PrivateKey)
	if err != nil {
		h.fail(w, r, "public_key_from_private_key", err)
		return
	}
	acct, err := h.svc.AccountFromPublicKey(pub)
	if err != nil {
		h.fail(w, r, "account_from_private_key", err)
		return
	}
	writeJSON(w, http.StatusOK, model.KeyResponse{PublicKey: pub, Account: acct})
}

// Accounts handles POST /nano/accounts
// @Summary      Derive a range of accounts
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.AccountsRequest  true  "Seed, first index and count (max 1000)"
// @Success      200      {object}  model.AccountsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /nano/accounts [post]
func (h *NanoHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	var req model.AccountsRequest
	if !h.decode(w, r, &req) {
		return
	}
	accounts, err := h.svc.DeriveAccounts(req.Seed, req.From, req.Count)
	if err != nil {
		h.fail(w, r, "derive_accounts", err)
		return
	}
	writeJSON(w, http.StatusOK, model.AccountsResponse{Accounts: accounts})
}

// DecodeAccount handles POST /nano/account/decode
// @Summary      Public key of account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.AccountRequest  true  "Account"
// @Success      200      {object}  model.KeyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/account/decode [post]
func (h *NanoHandler) DecodeAccount(w http.ResponseWriter, r *http.Request) {
	var req model.AccountRequest
	if !h.decode(w, r, &req) {
		return
	}
	pub, err := h.svc.PublicKeyFromAccount(req.Account)
	if err != nil {
		h.fail(w, r, "public_key_from_account", err)
		return
	}
	writeJSON(w, http.StatusOK, model.KeyResponse{PublicKey: pub, Account: req.Account})
}

// EncodeAccount handles POST /nano/account/encode
// @Summary      Account of public key
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.PublicKeyRequest  true  "Public key"
// @Success      200      {object}  model.KeyResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/account/encode [post]
func (h *NanoHandler) EncodeAccount(w http.ResponseWriter, r *http.Request) {
	var req model.PublicKeyRequest
	if !h.decode(w, r, &req) {
		return
	}
	acct, err := h.svc.AccountFromPublicKey(req.PublicKey)
	if err != nil {
		h.fail(w, r, "account_from_public_key", err)
		return
	}
	writeJSON(w, http.StatusOK, model.KeyResponse{Account: acct})
}

// ValidateAccount handles POST /nano/account/validate
// @Summary      Validate account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.AccountRequest  true  "Account"
// @Success      200      {object}  model.ValidateResponse
// @Router       /nano/account/validate [post]
func (h *NanoHandler) ValidateAccount(w http.ResponseWriter, r *http.Request) {
	var req model.AccountRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, model.ValidateResponse{Valid: h.svc.ValidateAccount(req.Account)})
}

// AccountQR handles POST /nano/account/qr
// @Summary      Account QR code
// @Description  Returns a base64 PNG QR code of the nano: URI of the account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.AccountRequest  true  "Account"
// @Success      200      {object}  model.QRResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/account/qr [post]
func (h *NanoHandler) AccountQR(w http.ResponseWriter, r *http.Request) {
	var req model.AccountRequest
	if !h.decode(w, r, &req) {
		return
	}
	qr, err := h.svc.AccountQR(req.Account)
	if err != nil {
		h.fail(w, r, "account_qr", err)
		return
	}
	writeJSON(w, http.StatusOK, model.QRResponse{QR: qr})
}

// Sha256 handles POST /nano/sha256
// @Summary      SHA-256 digest
// @Tags         util
// @Accept       json
// @Produce      json
// @Param        request  body      model.DigestRequest  true  "Data"
// @Success      200      {object}  model.DigestResponse
// @Router       /nano/sha256 [post]
func (h *NanoHandler) Sha256(w http.ResponseWriter, r *http.Request) {
	var req model.DigestRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, model.DigestResponse{Digest: h.svc.Sha256(req.Data)})
}

// Encrypt handles POST /nano/seed/encrypt
// @Summary      Encrypt seed
// @Description  AES-256 encrypts a 32-byte seed with a key derived from the password
// @Tags         seed
// @Accept       json
// @Produce      json
// @Param        request  body      model.EncryptRequest  true  "Seed and password"
// @Success      200      {object}  model.CipherResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/seed/encrypt [post]
func (h *NanoHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	var req model.EncryptRequest
	if !h.decode(w, r, &req) {
		return
	}
	cipherText, err := h.svc.Encrypt(req.Seed, req.Password)
	if err != nil {
		h.fail(w, r, "encrypt", err)
		return
	}
	writeJSON(w, http.StatusOK, model.CipherResponse{CipherText: cipherText})
}

// Decrypt handles POST /nano/seed/decrypt
// @Summary      Decrypt seed
// @Description  A wrong password is not detected and returns a different seed
// @Tags         seed
// @Accept       json
// @Produce      json
// @Param        request  body      model.DecryptRequest  true  "Ciphertext and password"
// @Success      200      {object}  model.SeedResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/seed/decrypt [post]
func (h *NanoHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	var req model.DecryptRequest
	if !h.decode(w, r, &req) {
		return
	}
	seed, err := h.svc.Decrypt(req.CipherText, req.Password)
	if err != nil {
		h.fail(w, r, "decrypt", err)
		return
	}
	writeJSON(w, http.StatusOK, model.SeedResponse{Seed: seed})
}

// Mnemonic handles POST /nano/seed/mnemonic
// @Summary      Seed to mnemonic
// @Tags         seed
// @Accept       json
// @Produce      json
// @Param        request  body      model.SeedRequest  true  "Seed"
// @Success      200      {object}  model.MnemonicResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/seed/mnemonic [post]
func (h *NanoHandler) Mnemonic(w http.ResponseWriter, r *http.Request) {
	var req model.SeedRequest
	if !h.decode(w, r, &req) {
		return
	}
	m, err := h.svc.SeedToMnemonic(req.Seed)
	if err != nil {
		h.fail(w, r, "seed_to_mnemonic", err)
		return
	}
	writeJSON(w, http.StatusOK, model.MnemonicResponse{Mnemonic: m})
}

// SeedFromMnemonic handles POST /nano/seed/from-mnemonic
// @Summary      Mnemonic to seed
// @Tags         seed
// @Accept       json
// @Produce      json
// @Param        request  body      model.MnemonicRequest  true  "24-word mnemonic"
// @Success      200      {object}  model.SeedResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /nano/seed/from-mnemonic [post]
func (h *NanoHandler) SeedFromMnemonic(w http.ResponseWriter, r *http.Request) {
	var req model.MnemonicRequest
	if !h.decode(w, r, &req) {
		return
	}
	seed, err := h.svc.MnemonicToSeed(req.Mnemonic)
	if err != nil {
		h.fail(w, r, "mnemonic_to_seed", err)
		return
	}
	writeJSON(w, http.StatusOK, model.SeedResponse{Seed: seed})
}

// decode enforces POST and decodes the JSON body into dst.
// It writes the error response itself and reports whether the handler should continue.
func (h *NanoHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return false
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "BAD_REQUEST"})
		return false
	}
	return true
}

// fail maps err to a status and code, logs it and writes the error response
func (h *NanoHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, code := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error(r.Context(), "operation failed", "op", op, "error", err)
	} else {
		h.log.Debug(r.Context(), "operation rejected", "op", op, "code", code)
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrParse):
		return http.StatusBadRequest, "PARSE_ERROR"
	case errors.Is(err, common.ErrInvalidFormat):
		return http.StatusBadRequest, "INVALID_FORMAT"
	case errors.Is(err, common.ErrInvalidChecksum):
		return http.StatusBadRequest, "INVALID_CHECKSUM"
	case errors.Is(err, common.ErrInvalidLength):
		return http.StatusBadRequest, "INVALID_LENGTH"
	case errors.Is(err, common.ErrOverflow):
		return http.StatusUnprocessableEntity, "OVERFLOW"
	case errors.Is(err, common.ErrUnderflow):
		return http.StatusUnprocessableEntity, "UNDERFLOW"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
