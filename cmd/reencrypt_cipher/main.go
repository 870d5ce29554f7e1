// One-off: re-encrypt an encrypted seed under a new password. Prints the
// account of index 0 to stderr so a wrong old password is noticed.
// Usage: go run ./cmd/reencrypt_cipher <cipherTextHex>
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/local-nano/internal/account"
	"github.com/AlexZinkM/local-nano/internal/config"
	"github.com/AlexZinkM/local-nano/internal/crypto"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: reencrypt_cipher <cipherTextHex>")
		os.Exit(2)
	}
	out, err := reencrypt(os.Args[1], config.PromptForPassword)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func reencrypt(cipherHex string, prompt func(string) ([]byte, error)) (string, error) {
	blob, err := hex.DecodeString(cipherHex)
	if err != nil {
		return "", fmt.Errorf("cipher text is not hex: %w", err)
	}

	oldPassword, err := prompt("Old password")
	if err != nil {
		return "", err
	}
	defer clear(oldPassword)

	seed, err := crypto.DecryptSeed(blob, oldPassword)
	if err != nil {
		return "", err
	}
	defer seed.Wipe()
	priv := crypto.DerivePrivateKey(seed, 0)
	defer priv.Wipe()
	codec := account.Codec{}
	fmt.Fprintln(os.Stderr, "account 0:", codec.Encode(crypto.Blake2bEd25519{}.PublicKey(priv)))

	newPassword, err := prompt("New password")
	if err != nil {
		return "", err
	}
	defer clear(newPassword)
	confirm, err := prompt("Repeat new password")
	if err != nil {
		return "", err
	}
	defer clear(confirm)
	if !bytes.Equal(newPassword, confirm) {
		return "", errors.New("passwords do not match")
	}

	newBlob, err := crypto.EncryptSeed(seed[:], newPassword)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(newBlob[:]), nil
}
