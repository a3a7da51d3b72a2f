package config

import (
	"encoding/hex"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	KeyLength = 32
	BlockSize = 16
)

var (
	ErrNoSearch         = errors.New("no search configured")
	ErrInvalidPayload   = errors.New("payload must be exactly 16 bytes (32 hex digits)")
	ErrInvalidStrategy  = errors.New("unknown search strategy")
	ErrInvalidHandshake = errors.New("unknown handshake")
	ErrInvalidGenerator = errors.New("unknown generator")
	ErrInvalidSignature = errors.New("signature length must be 5 or 9")
	ErrInvalidKeyDepth  = errors.New("key depth must be greater than the key length")
	ErrInvalidRange     = errors.New("end second must be greater than start second")
	ErrInvalidThreads   = errors.New("thread count must be positive")
)

type Config struct {
	LogLevel string        `json:"logLevel,omitempty" mapstructure:"logLevel"`
	Search   *ConfigSearch `json:"search,omitempty" mapstructure:"search"`
}

type ConfigSearch struct {
	Strategy  Strategy  `json:"strategy,omitempty" mapstructure:"strategy"`
	Payload   string    `json:"payload,omitempty" mapstructure:"payload"`
	Handshake Handshake `json:"handshake,omitempty" mapstructure:"handshake"`
	// SignatureLength is the number of plaintext bytes compared, 5 or 9.
	// Zero picks the strategy default.
	SignatureLength int       `json:"signatureLength,omitempty" mapstructure:"signatureLength"`
	Generator       Generator `json:"generator,omitempty" mapstructure:"generator"`
	Threads         int       `json:"threads,omitempty" mapstructure:"threads"`
	Batched         bool      `json:"batched,omitempty" mapstructure:"batched"`

	// offset strategy
	StartSecond     int64 `json:"startSecond" mapstructure:"startSecond"`
	EndSecond       int64 `json:"endSecond,omitempty" mapstructure:"endSecond"`
	KeyDepth        int   `json:"keyDepth,omitempty" mapstructure:"keyDepth"`
	ProgressBatches int   `json:"progressBatches,omitempty" mapstructure:"progressBatches"`

	// depth strategy
	Seed          int64  `json:"seed" mapstructure:"seed"`
	MaxDepth      uint64 `json:"maxDepth,omitempty" mapstructure:"maxDepth"`
	ProgressDraws uint64 `json:"progressDraws,omitempty" mapstructure:"progressDraws"`
}

// LoadConfig merges v over DefaultConfig and validates the result.
func LoadConfig(v *viper.Viper) (*Config, error) {
	c := DefaultConfig.Clone()
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfigFile reads a JSON, YAML or TOML file.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return LoadConfig(v)
}

func (c *Config) Clone() *Config {
	n := *c
	if c.Search != nil {
		s := *c.Search
		n.Search = &s
	}
	return &n
}

func (c *Config) Validate() error {
	if c.Search == nil {
		return ErrNoSearch
	}
	return c.Search.Validate()
}

func (s *ConfigSearch) Validate() error {
	if _, err := s.Ciphertext(); err != nil {
		return err
	}
	switch s.Strategy {
	case StrategyOffset:
		if s.KeyDepth <= KeyLength {
			return errors.Wrapf(ErrInvalidKeyDepth, "key depth %d", s.KeyDepth)
		}
		if s.EndSecond <= s.StartSecond {
			return errors.Wrapf(ErrInvalidRange, "range [%d, %d)", s.StartSecond, s.EndSecond)
		}
	case StrategyDepth:
	default:
		return errors.Wrapf(ErrInvalidStrategy, "%q", s.Strategy)
	}
	switch s.Handshake {
	case HandshakeLogin, HandshakeGame:
	default:
		return errors.Wrapf(ErrInvalidHandshake, "%q", s.Handshake)
	}
	switch s.Generator {
	case GeneratorXorshift128, GeneratorMT19937, GeneratorCSharp:
	default:
		return errors.Wrapf(ErrInvalidGenerator, "%q", s.Generator)
	}
	switch s.SignatureLength {
	case 0, 5, 9:
	default:
		return errors.Wrapf(ErrInvalidSignature, "got %d", s.SignatureLength)
	}
	if s.Threads <= 0 {
		return errors.Wrapf(ErrInvalidThreads, "got %d", s.Threads)
	}
	return nil
}

// Ciphertext decodes the hex payload.
func (s *ConfigSearch) Ciphertext() ([]byte, error) {
	p, err := hex.DecodeString(s.Payload)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}
	if len(p) != BlockSize {
		return nil, ErrInvalidPayload
	}
	return p, nil
}

// SignatureBytes resolves the comparator length for the configured strategy.
func (s *ConfigSearch) SignatureBytes() int {
	if s.SignatureLength != 0 {
		return s.SignatureLength
	}
	if s.Strategy == StrategyOffset {
		return 9
	}
	return 5
}

var DefaultConfig = &Config{
	LogLevel: "info",
	Search: &ConfigSearch{
		Strategy:        StrategyOffset,
		Payload:         "{{ FIRST_16_BYTES_OF_SECOND_LOGIN_PACKET }}",
		Handshake:       HandshakeLogin,
		Generator:       GeneratorXorshift128,
		Threads:         runtime.NumCPU(),
		StartSecond:     0,
		EndSecond:       24 * 60 * 60,
		KeyDepth:        1024,
		ProgressBatches: 1000,
		ProgressDraws:   10000000,
	},
}
