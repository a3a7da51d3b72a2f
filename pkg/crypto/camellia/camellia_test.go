package camellia

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	p, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRFC3713Vector(t *testing.T) {
	key := mustHex(t, "0123456789abcdeffedcba987654321000112233445566778899aabbccddeeff")
	plain := mustHex(t, "0123456789abcdeffedcba9876543210")
	want := mustHex(t, "9acc237dff16d76c20ef7c919e3a7509")

	got := make([]byte, BlockSize)
	if err := Encrypt(got, key, plain); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("encrypt: got %x, want %x", got, want)
	}
	if err := Decrypt(got, key, want); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plain) {
		t.Fatalf("decrypt: got %x, want %x", got, plain)
	}
}

func TestDecryptBlocksMatchesScalar(t *testing.T) {
	key := []byte("UpJlo7MYHVbxS3Xs7LAx-sptfA5Q3Mw-")
	block := mustHex(t, "f136f3392042f4cf3bf6b9cd6d79df94")

	scalar := make([]byte, BlockSize)
	if err := Decrypt(scalar, key, block); err != nil {
		t.Fatal(err)
	}

	src := bytes.Repeat(block, BatchBlocks)
	dst := make([]byte, len(src))
	if err := DecryptBlocks(dst, key, src); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < BatchBlocks; i++ {
		if lane := dst[i*BlockSize : (i+1)*BlockSize]; !bytes.Equal(lane, scalar) {
			t.Fatalf("lane %d: got %x, want %x", i, lane, scalar)
		}
	}
}

func TestRejectsBadLengths(t *testing.T) {
	dst := make([]byte, BlockSize*BatchBlocks)
	tests := []struct {
		name string
		err  error
		call func() error
	}{
		{"short key", ErrKeySize, func() error { return Decrypt(dst, make([]byte, 16), make([]byte, BlockSize)) }},
		{"short block", ErrBlockSize, func() error { return Decrypt(dst, make([]byte, KeySize), make([]byte, 15)) }},
		{"long block", ErrBlockSize, func() error { return Encrypt(dst, make([]byte, KeySize), make([]byte, 17)) }},
		{"partial batch", ErrBlockSize, func() error { return DecryptBlocks(dst, make([]byte, KeySize), make([]byte, BlockSize)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != tt.err {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
		})
	}
}
