package crypto

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/AlexZinkM/local-nano/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	zeroSeedPriv0 = "9f0e444c69f77a49bd0be89db92c38fe713e0963165cca12faf5712d7657120f"
	zeroSeedPub0  = "c008b814a7d269a1fa3c6528b19201a24d797912db9996ff02a1ff356e45552b"
	emptySha256   = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func TestSha256(t *testing.T) {
	sum := Sha256(nil)
	assert.Equal(t, emptySha256, hex.EncodeToString(sum[:]))

	sum = Sha256([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(sum[:]))
}

func TestNewSeed(t *testing.T) {
	src := bytes.NewReader(bytes.Repeat([]byte{0xab}, SeedLen))
	seed, err := NewSeed(src)
	require.NoError(t, err)
	assert.Equal(t, Seed(bytes.Repeat([]byte{0xab}, SeedLen)), seed)

	// short source must not be padded or replaced
	_, err = NewSeed(bytes.NewReader(make([]byte, SeedLen-1)))
	require.Error(t, err)

	_, err = NewSeed(iotest.ErrReader(errors.New("entropy exhausted")))
	require.ErrorContains(t, err, "entropy exhausted")

	a, err := NewSeed(nil)
	require.NoError(t, err)
	b, err := NewSeed(nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDerivePrivateKey_KnownVector(t *testing.T) {
	priv := DerivePrivateKey(Seed{}, 0)
	assert.Equal(t, zeroSeedPriv0, hex.EncodeToString(priv[:]))

	pub := Blake2bEd25519{}.PublicKey(priv)
	assert.Equal(t, zeroSeedPub0, hex.EncodeToString(pub[:]))
}

func TestDerivePrivateKey_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := Seed(rapid.SliceOfN(rapid.Byte(), SeedLen, SeedLen).Draw(t, "seed"))
		i := rapid.Uint32().Draw(t, "i")
		j := rapid.Uint32().Filter(func(j uint32) bool { return j != i }).Draw(t, "j")

		if DerivePrivateKey(seed, i) != DerivePrivateKey(seed, i) {
			t.Fatalf("derivation for index %d is not deterministic", i)
		}
		if DerivePrivateKey(seed, i) == DerivePrivateKey(seed, j) {
			t.Fatalf("indexes %d and %d derived the same key", i, j)
		}
	})
}

func TestScalarBasePoint_MatchesStandardEd25519(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		priv := PrivateKey(rapid.SliceOfN(rapid.Byte(), PrivateKeyLen, PrivateKeyLen).Draw(t, "priv"))

		h := sha512.Sum512(priv[:])
		if scalarBasePoint(h[:32]) != (StandardEd25519{}).PublicKey(priv) {
			t.Fatalf("scalar base point mismatch for %x", priv)
		}
	})
}

func TestBlake2bEd25519_DiffersFromStandard(t *testing.T) {
	priv := DerivePrivateKey(Seed{}, 0)
	assert.NotEqual(t, Blake2bEd25519{}.PublicKey(priv), StandardEd25519{}.PublicKey(priv))
}

func TestWipe(t *testing.T) {
	seed := Seed{1, 2, 3}
	seed.Wipe()
	assert.Equal(t, Seed{}, seed)

	priv := PrivateKey{4, 5, 6}
	priv.Wipe()
	assert.Equal(t, PrivateKey{}, priv)
}

func TestDeriveKeyFromPassword(t *testing.T) {
	key := DeriveKeyFromPassword([]byte(""))
	assert.Equal(t, emptySha256, hex.EncodeToString(key[:]))
}

func TestEncryptDecrypt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.SliceOfN(rapid.Byte(), SeedLen, SeedLen).Draw(t, "seed")
		password := []byte(rapid.String().Draw(t, "password"))

		blob, err := EncryptSeed(seed, password)
		if err != nil {
			t.Fatal(err)
		}
		plain, err := DecryptSeed(blob[:], password)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(plain[:], seed) {
			t.Fatalf("round trip mismatch")
		}
	})
}

func TestEncrypt_BlocksAreIndependent(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, SeedLen)

	blob, err := EncryptSeed(seed, []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, blob[:16], blob[16:])
	assert.NotEqual(t, seed, blob[:])
}

func TestDecrypt_WrongPasswordReturnsGarbage(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01}, SeedLen)
	blob, err := EncryptSeed(seed, []byte("correct"))
	require.NoError(t, err)

	plain, err := DecryptSeed(blob[:], []byte("wrong"))
	require.NoError(t, err)
	assert.NotEqual(t, seed, plain[:])
}

func TestEncryptDecrypt_ReturnsFixedBuffers(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, SeedLen)
	blob, err := EncryptSeed(seed, []byte("pw"))
	require.NoError(t, err)

	plain, err := DecryptSeed(blob[:], []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, Seed(bytes.Repeat([]byte{0x07}, SeedLen)), plain)

	plain.Wipe()
	assert.Equal(t, Seed{}, plain)
	assert.Equal(t, bytes.Repeat([]byte{0x07}, SeedLen), seed, "input seed is not aliased")
}

func TestEncryptDecrypt_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := EncryptSeed(make([]byte, n), []byte("pw"))
		assert.ErrorIs(t, err, common.ErrInvalidLength, "encrypt %d bytes", n)

		_, err = DecryptSeed(make([]byte, n), []byte("pw"))
		assert.ErrorIs(t, err, common.ErrInvalidLength, "decrypt %d bytes", n)
	}
}

func TestMnemonic(t *testing.T) {
	m, err := SeedToMnemonic(Seed{})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("abandon ", 23)+"art", m)

	var seed Seed
	for i := range seed {
		seed[i] = 0x7f
	}
	m, err = SeedToMnemonic(seed)
	require.NoError(t, err)
	assert.Equal(t, "legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth useful legal winner thank year wave sausage worth title", m)

	got, err := MnemonicToSeed("  " + strings.ToUpper(m) + "\n")
	require.NoError(t, err)
	assert.Equal(t, seed, got)
}

func TestMnemonic_Invalid(t *testing.T) {
	_, err := MnemonicToSeed(strings.Repeat("abandon ", 11) + "about")
	assert.ErrorIs(t, err, common.ErrParse)

	// bad checksum word
	_, err = MnemonicToSeed(strings.Repeat("abandon ", 24))
	assert.ErrorIs(t, err, common.ErrParse)

	_, err = MnemonicToSeed(strings.Repeat("notaword ", 24))
	assert.ErrorIs(t, err, common.ErrParse)
}
