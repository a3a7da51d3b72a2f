package core

import (
	"bytes"
	"encoding/binary"

	"github.com/go-restruct/restruct"
	"github.com/pkg/errors"

	"github.com/Jx2f/KeyHunter/internal/config"
	"github.com/Jx2f/KeyHunter/pkg/crypto/camellia"
)

const BlockSize = config.BlockSize

// IV is XORed into every decrypted block before comparison.
var IV = [BlockSize]byte{
	0x24, 0x63, 0x62, 0x4D, 0x36, 0x57, 0x50, 0x29,
	0x61, 0x58, 0x3D, 0x25, 0x4A, 0x5E, 0x7A, 0x41,
}

var (
	ErrInvalidCiphertext = errors.New("ciphertext must be exactly 16 bytes")
	ErrInvalidSignature  = config.ErrInvalidSignature
)

// Both handshakes open with group, handler id lo/hi, sub id and an unknown
// 0x34 byte, followed by a zero packet counter when sent by the server.
var (
	loginSignature = []byte{0x01, 0x00, 0x00, 0x02, 0x34, 0x00, 0x00, 0x00, 0x00}
	gameSignature  = []byte{0x2C, 0x00, 0x00, 0x02, 0x34, 0x00, 0x00, 0x00, 0x00}
)

const (
	ShortSignature = 5
	LongSignature  = 9
)

type Signature struct {
	Handshake config.Handshake
	Expected  []byte
}

// SignatureFor returns a copy of the leading length bytes of the handshake's
// signature.
func SignatureFor(h config.Handshake, length int) (Signature, error) {
	if length != ShortSignature && length != LongSignature {
		return Signature{}, errors.Wrapf(ErrInvalidSignature, "got %d", length)
	}
	switch h {
	case config.HandshakeLogin:
		return Signature{h, append([]byte(nil), loginSignature[:length]...)}, nil
	case config.HandshakeGame:
		return Signature{h, append([]byte(nil), gameSignature[:length]...)}, nil
	}
	return Signature{}, errors.Wrapf(config.ErrInvalidHandshake, "%q", h)
}

func (s Signature) Len() int { return len(s.Expected) }

// MatchesSignature reports whether plaintext XOR iv starts with expected.
func MatchesSignature(plaintext, iv, expected []byte) bool {
	if len(expected) > len(plaintext) || len(expected) > len(iv) {
		return false
	}
	for i, b := range expected {
		if plaintext[i]^iv[i] != b {
			return false
		}
	}
	return true
}

// Validator tests candidate keys against one ciphertext block. It owns its
// scratch buffers and must not be shared between workers.
type Validator struct {
	signature Signature
	batched   bool
	src       []byte
	dst       []byte
}

// NewValidator copies ciphertext. With batched set every Try decrypts
// camellia.BatchBlocks copies of it and consults only the first.
func NewValidator(ciphertext []byte, signature Signature, batched bool) (*Validator, error) {
	if len(ciphertext) != BlockSize {
		return nil, errors.Wrapf(ErrInvalidCiphertext, "got %d bytes", len(ciphertext))
	}
	if signature.Len() == 0 || signature.Len() > BlockSize {
		return nil, errors.Wrapf(ErrInvalidSignature, "got %d", signature.Len())
	}
	v := &Validator{signature: signature, batched: batched}
	if batched {
		v.src = bytes.Repeat(ciphertext, camellia.BatchBlocks)
	} else {
		v.src = append([]byte(nil), ciphertext...)
	}
	v.dst = make([]byte, len(v.src))
	return v, nil
}

// Try reports whether key decrypts the block to the expected signature.
// A key of the wrong length never matches.
func (v *Validator) Try(key []byte) bool {
	var err error
	if v.batched {
		err = camellia.DecryptBlocks(v.dst, key, v.src)
	} else {
		err = camellia.Decrypt(v.dst, key, v.src)
	}
	if err != nil {
		return false
	}
	return MatchesSignature(v.dst[:BlockSize], IV[:], v.signature.Expected)
}

// Plaintext returns the last decrypted block with the IV removed.
func (v *Validator) Plaintext() []byte {
	p := make([]byte, BlockSize)
	for i := range p {
		p[i] = v.dst[i] ^ IV[i]
	}
	return p
}

type PacketHeader struct {
	GroupID   uint8  `json:"groupId"`
	HandlerID uint16 `json:"handlerId"`
	SubID     uint8  `json:"subId"`
	Unknown   uint8  `json:"unknown"`
	Counter   uint32 `json:"counter"`
}

// DecodeHeader unpacks the leading 9 bytes of a plaintext block.
func DecodeHeader(plaintext []byte) (PacketHeader, error) {
	var h PacketHeader
	if len(plaintext) < LongSignature {
		return h, errors.Errorf("header needs %d bytes, got %d", LongSignature, len(plaintext))
	}
	if err := restruct.Unpack(plaintext[:LongSignature], binary.LittleEndian, &h); err != nil {
		return h, errors.Wrap(err, "decode header")
	}
	return h, nil
}
