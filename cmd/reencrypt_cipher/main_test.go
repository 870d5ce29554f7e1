package main

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/AlexZinkM/local-nano/internal/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prompter(answers map[string]string) func(string) ([]byte, error) {
	return func(label string) ([]byte, error) {
		a, ok := answers[label]
		if !ok {
			return nil, errors.New("unexpected prompt " + label)
		}
		return []byte(a), nil
	}
}

func TestReencrypt(t *testing.T) {
	seed := make([]byte, crypto.SeedLen)
	for i := range seed {
		seed[i] = byte(i)
	}
	blob, err := crypto.EncryptSeed(seed, []byte("old"))
	require.NoError(t, err)

	out, err := reencrypt(hex.EncodeToString(blob[:]), prompter(map[string]string{
		"Old password":        "old",
		"New password":        "new",
		"Repeat new password": "new",
	}))
	require.NoError(t, err)

	newBlob, err := hex.DecodeString(out)
	require.NoError(t, err)
	got, err := crypto.DecryptSeed(newBlob, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, seed, got[:])
}

func TestReencrypt_Errors(t *testing.T) {
	_, err := reencrypt("zz", prompter(nil))
	assert.Error(t, err)

	_, err = reencrypt("00", prompter(map[string]string{"Old password": "old"}))
	assert.Error(t, err)

	blob, err := crypto.EncryptSeed(make([]byte, crypto.SeedLen), []byte("old"))
	require.NoError(t, err)
	_, err = reencrypt(hex.EncodeToString(blob[:]), prompter(map[string]string{
		"Old password":        "old",
		"New password":        "a",
		"Repeat new password": "b",
	}))
	assert.EqualError(t, err, "passwords do not match")
}
