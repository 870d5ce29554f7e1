package api

import (
	"net/http"

	"github.com/AlexZinkM/local-nano/internal/handler"
	"github.com/AlexZinkM/local-nano/internal/logging"
	"github.com/AlexZinkM/local-nano/nano"

	_ "github.com/AlexZinkM/local-nano/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(svc *nano.Service, log logging.Logger) (http.Handler, error) {
	nanoHandler, err := handler.NewNanoHandler(svc, log)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Amount endpoints
	mux.HandleFunc("/nano/amount/to-raw", nanoHandler.NanoToRaw)
	mux.HandleFunc("/nano/amount/to-nano", nanoHandler.RawToNano)
	mux.HandleFunc("/nano/amount/unit-to-raw", nanoHandler.ConvertUnitToRaw)
	mux.HandleFunc("/nano/amount/add", nanoHandler.Add)
	mux.HandleFunc("/nano/amount/subtract", nanoHandler.Subtract)
	mux.HandleFunc("/nano/amount/compare", nanoHandler.Compare)

	// Key endpoints
	mux.HandleFunc("/nano/generate", nanoHandler.Generate)
	mux.HandleFunc("/nano/keys/private", nanoHandler.PrivateKeyFromSeed)
	mux.HandleFunc("/nano/keys/seed", nanoHandler.KeysFromSeed)
	mux.HandleFunc("/nano/keys/private-key", nanoHandler.KeysFromPrivateKey)
	mux.HandleFunc("/nano/accounts", nanoHandler.Accounts)

	// Account endpoints
	mux.HandleFunc("/nano/account/decode", nanoHandler.DecodeAccount)
	mux.HandleFunc("/nano/account/encode", nanoHandler.EncodeAccount)
	mux.HandleFunc("/nano/account/validate", nanoHandler.ValidateAccount)
	mux.HandleFunc("/nano/account/qr", nanoHandler.AccountQR)

	// Seed endpoints
	mux.HandleFunc("/nano/seed/encrypt", nanoHandler.Encrypt)
	mux.HandleFunc("/nano/seed/decrypt", nanoHandler.Decrypt)
	mux.HandleFunc("/nano/seed/mnemonic", nanoHandler.Mnemonic)
	mux.HandleFunc("/nano/seed/from-mnemonic", nanoHandler.SeedFromMnemonic)

	mux.HandleFunc("/nano/sha256", nanoHandler.Sha256)

	return mux, nil
}
