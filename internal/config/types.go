package config

// Strategy selects how the keyspace is enumerated.
type Strategy string

const (
	// StrategyOffset sweeps a range of seeds, testing every window of a
	// fixed-length key buffer per seed.
	StrategyOffset Strategy = "offset"
	// StrategyDepth walks a single seed's stream without bound, one residue
	// class per worker.
	StrategyDepth Strategy = "depth"
)

// Handshake selects the expected plaintext signature.
type Handshake string

const (
	HandshakeLogin Handshake = "login"
	HandshakeGame  Handshake = "game"
)

// Generator names the deterministic stream keys are drawn from.
type Generator string

const (
	GeneratorXorshift128 Generator = "xorshift128"
	GeneratorMT19937     Generator = "mt19937"
	GeneratorCSharp      Generator = "csharp"
)
