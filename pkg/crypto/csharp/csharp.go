// sources:
//   - https://referencesource.microsoft.com/#mscorlib/system/random.cs
//   - https://github.com/HirbodBehnam/CSharpRandom/blob/master/random.go
package csharp

import (
	"math"
	"math/rand"
)

const (
	MBIG  = math.MaxInt32
	MSEED = 161803398
)

type source struct {
	inext     int32
	inextp    int32
	seedArray [56]int32
}

func NewRand() *rand.Rand    { return rand.New(NewSource64()) }
func NewSource() rand.Source { return NewSource64() }

func NewSource64() rand.Source64 {
	s := new(source)
	s.seed(0)
	return s
}

func (s *source) Seed(seed int64) { s.seed(int32(seed)) }
func (s *source) Int63() int64    { return int64(s.Uint64()) }

// Uint64 returns the raw 31-bit sample, the value System.Random.Next() yields.
func (s *source) Uint64() uint64 { return uint64(s.internalSample()) }

// Float64 matches System.Random.NextDouble().
func (s *source) Float64() float64 {
	return float64(s.internalSample()) * (1.0 / float64(MBIG))
}

func (s *source) seed(seed int32) {
	var subtraction int32
	if seed == math.MinInt32 {
		subtraction = math.MaxInt32
	} else {
		subtraction = seed
		if subtraction < 0 {
			subtraction = -subtraction
		}
	}
	mj := MSEED - subtraction
	s.seedArray[55] = mj
	mk := int32(1)
	// index 0 is never used
	for i := int32(1); i < 55; i++ {
		ii := (21 * i) % 55
		s.seedArray[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += MBIG
		}
		mj = s.seedArray[ii]
	}
	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			s.seedArray[i] -= s.seedArray[1+(i+30)%55]
			if s.seedArray[i] < 0 {
				s.seedArray[i] += MBIG
			}
		}
	}
	s.inext = 0
	s.inextp = 21
}

func (s *source) internalSample() int32 {
	next := s.inext + 1
	if next >= 56 {
		next = 1
	}
	nextp := s.inextp + 1
	if nextp >= 56 {
		nextp = 1
	}
	v := s.seedArray[next] - s.seedArray[nextp]
	if v == MBIG {
		v--
	}
	if v < 0 {
		v += MBIG
	}
	s.seedArray[next] = v
	s.inext = next
	s.inextp = nextp
	return v
}
