package core

import (
	"github.com/pkg/errors"

	"github.com/Jx2f/KeyHunter/internal/config"
	"github.com/Jx2f/KeyHunter/pkg/crypto/csharp"
	"github.com/Jx2f/KeyHunter/pkg/crypto/mt19937"
	"github.com/Jx2f/KeyHunter/pkg/crypto/xorshift128"
)

// Generator is a deterministic stream: Seed resets it, Uint64 draws the next
// value. Every math/rand.Source64 satisfies it.
type Generator interface {
	Seed(seed int64)
	Uint64() uint64
}

// GeneratorFunc creates a fresh, unshared generator.
type GeneratorFunc func() Generator

func NewGeneratorFunc(g config.Generator) (GeneratorFunc, error) {
	switch g {
	case config.GeneratorXorshift128:
		return func() Generator { return xorshift128.NewSource64() }, nil
	case config.GeneratorMT19937:
		return func() Generator { return mt19937.NewSource64() }, nil
	case config.GeneratorCSharp:
		return func() Generator { return csharp.NewSource64() }, nil
	}
	return nil, errors.Wrapf(config.ErrInvalidGenerator, "%q", g)
}
