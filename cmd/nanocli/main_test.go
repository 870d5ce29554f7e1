package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/AlexZinkM/local-nano/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	zeroAcct0 = "nano_3i1aq1cchnmbn9x5rsbap8b15akfh7wj7pwskuzi7ahz8oq6cobd99d4r3b7"
	zeroPub0  = "c008b814a7d269a1fa3c6528b19201a24d797912db9996ff02a1ff356e45552b"
	zeroPriv0 = "9f0e444c69f77a49bd0be89db92c38fe713e0963165cca12faf5712d7657120f"
)

var zeroSeed = strings.Repeat("0", 64)

// stubSecrets answers hidden prompts by label
func stubSecrets(t *testing.T, answers map[string]string) {
	t.Helper()
	orig := readSecret
	readSecret = func(label string) ([]byte, error) {
		return []byte(answers[label]), nil
	}
	t.Cleanup(func() { readSecret = orig })
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(&out)
	err := app.Run(append([]string{"nanocli"}, args...))
	return out.String(), err
}

func decodeOut[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	return v
}

func TestAmountCommands(t *testing.T) {
	out, err := runApp(t, "toraw", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000000000000000", decodeOut[model.AmountResponse](t, out).Amount)

	out, err = runApp(t, "tonano", "1500000000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1.5", decodeOut[model.AmountResponse](t, out).Amount)

	out, err = runApp(t, "add", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "5", decodeOut[model.AmountResponse](t, out).Amount)

	out, err = runApp(t, "unittoraw", "1")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000000", decodeOut[model.AmountResponse](t, out).Amount)

	out, err = runApp(t, "compare", "3", "2")
	require.NoError(t, err)
	assert.Equal(t, model.CompareResponse{Cmp: 1, Greater: true, GreaterOrEqual: true}, decodeOut[model.CompareResponse](t, out))

	_, err = runApp(t, "subtract", "2", "3")
	assert.Error(t, err)
}

func TestDeriveCommand(t *testing.T) {
	out, err := runApp(t, "derive", "--seed", zeroSeed, "--count", "2")
	require.NoError(t, err)
	accounts := decodeOut[model.AccountsResponse](t, out).Accounts
	require.Len(t, accounts, 2)
	assert.Equal(t, zeroAcct0, accounts[0].Account)
	assert.Equal(t, uint32(1), accounts[1].Index)

	stubSecrets(t, map[string]string{"Seed": zeroSeed})
	out, err = runApp(t, "derive", "--private")
	require.NoError(t, err)
	assert.Equal(t, model.KeyResponse{PrivateKey: zeroPriv0, PublicKey: zeroPub0, Account: zeroAcct0}, decodeOut[model.KeyResponse](t, out))

	_, err = runApp(t, "derive", "--seed", zeroSeed, "--index", "4294967296")
	assert.Error(t, err)
}

func TestAccountCommands(t *testing.T) {
	out, err := runApp(t, "account", zeroPub0)
	require.NoError(t, err)
	assert.Equal(t, zeroAcct0, decodeOut[model.KeyResponse](t, out).Account)

	out, err = runApp(t, "--prefix", "xrb_", "account", zeroPub0)
	require.NoError(t, err)
	assert.Equal(t, "xrb_"+strings.TrimPrefix(zeroAcct0, "nano_"), decodeOut[model.KeyResponse](t, out).Account)

	out, err = runApp(t, "pubkey", zeroAcct0)
	require.NoError(t, err)
	assert.Equal(t, zeroPub0, decodeOut[model.KeyResponse](t, out).PublicKey)

	stubSecrets(t, map[string]string{"Private key": zeroPriv0})
	out, err = runApp(t, "fromprivkey")
	require.NoError(t, err)
	assert.Equal(t, zeroAcct0, decodeOut[model.KeyResponse](t, out).Account)

	_, err = runApp(t, "--prefix", "ban_", "account", zeroPub0)
	assert.Error(t, err)
}

func TestSeedCommands(t *testing.T) {
	stubSecrets(t, map[string]string{"Seed": zeroSeed, "Password": "hunter2"})

	out, err := runApp(t, "encrypt")
	require.NoError(t, err)
	cipherText := decodeOut[model.CipherResponse](t, out).CipherText
	assert.Len(t, cipherText, 64)

	out, err = runApp(t, "decrypt", cipherText)
	require.NoError(t, err)
	decrypted := decodeOut[struct {
		Seed    string `json:"seed"`
		Account string `json:"account"`
	}](t, out)
	assert.Equal(t, zeroSeed, decrypted.Seed)
	assert.Equal(t, zeroAcct0, decrypted.Account)

	out, err = runApp(t, "mnemonic", "--seed", zeroSeed)
	require.NoError(t, err)
	m := decodeOut[model.MnemonicResponse](t, out).Mnemonic
	assert.Equal(t, strings.Repeat("abandon ", 23)+"art", m)

	out, err = runApp(t, "frommnemonic", m)
	require.NoError(t, err)
	assert.Equal(t, zeroSeed, decodeOut[model.SeedResponse](t, out).Seed)

	out, err = runApp(t, "newseed")
	require.NoError(t, err)
	gen := decodeOut[model.GenerateResponse](t, out)
	assert.Len(t, gen.Seed, 64)
	assert.Empty(t, gen.QR)
}

func TestSha256Command(t *testing.T) {
	out, err := runApp(t, "sha256", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", decodeOut[model.DigestResponse](t, out).Digest)
}
