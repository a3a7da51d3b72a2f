// Package mt19937 implements the 64-bit Mersenne Twister as a key stream.
// The search draws candidate keys from it when configured with
// "generator: mt19937".
package mt19937

import "math/rand"

const (
	stateSize  = 312
	shiftSize  = 156
	matrixA    = 0xB5026F5AA96619E9
	upperMask  = 0xFFFFFFFF80000000
	lowerMask  = 0x7FFFFFFF
	defaultKey = 5489
)

var mag01 = [2]uint64{0, matrixA}

type source struct {
	state [stateSize]uint64
	index int // stateSize+1 means unseeded
}

func NewRand() *rand.Rand        { return rand.New(NewSource64()) }
func NewSource() rand.Source     { return &source{index: stateSize + 1} }
func NewSource64() rand.Source64 { return &source{index: stateSize + 1} }

func (s *source) Seed(seed int64) {
	s.state[0] = uint64(seed)
	for i := 1; i < stateSize; i++ {
		prev := s.state[i-1]
		s.state[i] = 0x5851F42D4C957F2D*(prev^(prev>>62)) + uint64(i)
	}
	s.index = stateSize
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() & 0x7FFFFFFFFFFFFFFF)
}

func (s *source) Uint64() uint64 {
	if s.index >= stateSize {
		if s.index == stateSize+1 {
			s.Seed(defaultKey)
		}
		s.twist()
	}
	x := s.state[s.index]
	s.index++
	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71D67FFFEDA60000
	x ^= (x << 37) & 0xFFF7EEE000000000
	x ^= x >> 43
	return x
}

func (s *source) twist() {
	var i int
	var x uint64
	for ; i < stateSize-shiftSize; i++ {
		x = (s.state[i] & upperMask) | (s.state[i+1] & lowerMask)
		s.state[i] = s.state[i+shiftSize] ^ (x >> 1) ^ mag01[x&1]
	}
	for ; i < stateSize-1; i++ {
		x = (s.state[i] & upperMask) | (s.state[i+1] & lowerMask)
		s.state[i] = s.state[i+(shiftSize-stateSize)] ^ (x >> 1) ^ mag01[x&1]
	}
	x = (s.state[stateSize-1] & upperMask) | (s.state[0] & lowerMask)
	s.state[stateSize-1] = s.state[shiftSize-1] ^ (x >> 1) ^ mag01[x&1]
	s.index = 0
}
