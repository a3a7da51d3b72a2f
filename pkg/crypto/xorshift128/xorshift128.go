// Package xorshift128 implements the seeded 32-bit xorshift128 stream used by
// the game client to derive session keys from a millisecond timestamp.
package xorshift128

import "math/rand"

const multiplier = 1812433253

type source struct {
	x, y, z, w uint32
}

func NewRand() *rand.Rand        { return rand.New(NewSource64()) }
func NewSource() rand.Source     { return &source{} }
func NewSource64() rand.Source64 { return &source{} }

// Seed expands seed into the four state words.
func (s *source) Seed(seed int64) {
	s.x = uint32(seed)
	s.y = s.x*multiplier + 1
	s.z = s.y*multiplier + 1
	s.w = s.z*multiplier + 1
}

func (s *source) Int63() int64 {
	return int64(s.Uint64()<<31|s.Uint64()) & 0x7FFFFFFFFFFFFFFF
}

// Uint64 returns the next 32-bit draw. The upper half is always zero so that
// callers masking low bits see the raw generator output.
func (s *source) Uint64() uint64 {
	return uint64(s.next())
}

func (s *source) next() uint32 {
	t := s.x ^ (s.x << 11)
	s.x, s.y, s.z = s.y, s.z, s.w
	s.w = s.w ^ (s.w >> 19) ^ t ^ (t >> 8)
	return s.w
}
