package core

import (
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Jx2f/KeyHunter/internal/config"
	"github.com/Jx2f/KeyHunter/pkg/crypto/camellia"
	"github.com/Jx2f/KeyHunter/pkg/crypto/xorshift128"
	"github.com/Jx2f/KeyHunter/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

// plant returns a block that decrypts under key to the given signature once
// the IV is removed.
func plant(t *testing.T, key, signature []byte) []byte {
	t.Helper()
	plain := make([]byte, BlockSize)
	copy(plain, signature)
	for i := range plain {
		plain[i] ^= IV[i]
	}
	ciphertext := make([]byte, BlockSize)
	if err := camellia.Encrypt(ciphertext, key, plain); err != nil {
		t.Fatal(err)
	}
	return ciphertext
}

// noMatch is a block with no known key; random keys hit a 5-byte signature
// with probability 2^-40.
var noMatch = []byte{
	0x3b, 0x44, 0x0b, 0x4e, 0x0e, 0x65, 0xf4, 0xd7,
	0x33, 0x22, 0xe9, 0xf3, 0x7c, 0x0d, 0x73, 0xad,
}

func testSearchConfig(threads int) *config.ConfigSearch {
	return &config.ConfigSearch{
		Handshake: config.HandshakeLogin,
		Generator: config.GeneratorXorshift128,
		Threads:   threads,
	}
}

func newTestForcer(t *testing.T, c *config.ConfigSearch) *BruteForcer {
	t.Helper()
	b, err := NewBruteForcer(c)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func mustSignature(t *testing.T, h config.Handshake, length int) Signature {
	t.Helper()
	s, err := SignatureFor(h, length)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func xorshiftMaterial(seed int64, n int) []byte {
	return NewKeyMaterial(xorshift128.NewSource64(), seed, n)
}
