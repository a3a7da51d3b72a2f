// Package camellia adapts a Camellia-256 block cipher to the one-block
// decrypt calls made by the key search.
package camellia

import (
	"crypto/cipher"

	"github.com/pkg/errors"

	gocamellia "github.com/dgryski/go-camellia"
)

const (
	BlockSize = 16
	KeySize   = 32
	// BatchBlocks is the number of blocks DecryptBlocks processes per call.
	BatchBlocks = 16
)

var (
	ErrKeySize   = errors.New("camellia: key must be 32 bytes")
	ErrBlockSize = errors.New("camellia: input is not a whole number of blocks")
)

func newCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	b, err := gocamellia.New(key)
	if err != nil {
		return nil, errors.Wrap(err, "camellia: key schedule")
	}
	return b, nil
}

// Decrypt decrypts the single block src into dst under key.
func Decrypt(dst, key, src []byte) error {
	if len(src) != BlockSize || len(dst) < BlockSize {
		return ErrBlockSize
	}
	b, err := newCipher(key)
	if err != nil {
		return err
	}
	b.Decrypt(dst, src)
	return nil
}

// Encrypt encrypts the single block src into dst under key.
func Encrypt(dst, key, src []byte) error {
	if len(src) != BlockSize || len(dst) < BlockSize {
		return ErrBlockSize
	}
	b, err := newCipher(key)
	if err != nil {
		return err
	}
	b.Encrypt(dst, src)
	return nil
}

// DecryptBlocks decrypts BatchBlocks consecutive blocks of src into dst
// under a single key schedule.
func DecryptBlocks(dst, key, src []byte) error {
	const n = BlockSize * BatchBlocks
	if len(src) != n || len(dst) < n {
		return ErrBlockSize
	}
	b, err := newCipher(key)
	if err != nil {
		return err
	}
	for i := 0; i < n; i += BlockSize {
		b.Decrypt(dst[i:i+BlockSize], src[i:i+BlockSize])
	}
	return nil
}
