package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

const payload = "f136f3392042f4cf3bf6b9cd6d79df94"

func validSearch() *ConfigSearch {
	s := *DefaultConfig.Search
	s.Payload = payload
	s.Threads = 4
	return &s
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *ConfigSearch)
		err    error
	}{
		{"default with payload", func(s *ConfigSearch) {}, nil},
		{"depth", func(s *ConfigSearch) { s.Strategy = StrategyDepth; s.KeyDepth = 0 }, nil},
		{"short payload", func(s *ConfigSearch) { s.Payload = payload[:30] }, ErrInvalidPayload},
		{"not hex", func(s *ConfigSearch) { s.Payload = "zz" + payload[2:] }, ErrInvalidPayload},
		{"key depth equals key length", func(s *ConfigSearch) { s.KeyDepth = KeyLength }, ErrInvalidKeyDepth},
		{"empty range", func(s *ConfigSearch) { s.EndSecond = s.StartSecond }, ErrInvalidRange},
		{"strategy", func(s *ConfigSearch) { s.Strategy = "simd" }, ErrInvalidStrategy},
		{"handshake", func(s *ConfigSearch) { s.Handshake = "" }, ErrInvalidHandshake},
		{"generator", func(s *ConfigSearch) { s.Generator = "pcg" }, ErrInvalidGenerator},
		{"signature length", func(s *ConfigSearch) { s.SignatureLength = 16 }, ErrInvalidSignature},
		{"threads", func(s *ConfigSearch) { s.Threads = 0 }, ErrInvalidThreads},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSearch()
			tt.modify(s)
			err := (&Config{Search: s}).Validate()
			if tt.err == nil {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
		})
	}
	if err := (&Config{}).Validate(); !errors.Is(err, ErrNoSearch) {
		t.Fatalf("missing search: got %v", err)
	}
}

func TestSignatureBytesDefaults(t *testing.T) {
	s := validSearch()
	if n := s.SignatureBytes(); n != 9 {
		t.Errorf("offset default: %d", n)
	}
	s.Strategy = StrategyDepth
	if n := s.SignatureBytes(); n != 5 {
		t.Errorf("depth default: %d", n)
	}
	s.SignatureLength = 9
	if n := s.SignatureBytes(); n != 9 {
		t.Errorf("explicit: %d", n)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyhunter.yaml")
	data := []byte(`logLevel: debug
search:
  strategy: depth
  payload: ` + payload + `
  handshake: game
  generator: mt19937
  threads: 12
  seed: 26242
  maxDepth: 5000000
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := c.Search
	if c.LogLevel != "debug" || s.Strategy != StrategyDepth || s.Handshake != HandshakeGame ||
		s.Generator != GeneratorMT19937 || s.Threads != 12 || s.Seed != 26242 || s.MaxDepth != 5000000 {
		t.Fatalf("got %+v %+v", c, s)
	}
	// unset fields keep their defaults
	if s.KeyDepth != DefaultConfig.Search.KeyDepth || s.ProgressDraws != DefaultConfig.Search.ProgressDraws {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoadConfigDoesNotMutateDefault(t *testing.T) {
	v := viper.New()
	v.Set("search.payload", payload)
	v.Set("search.threads", 3)
	if _, err := LoadConfig(v); err != nil {
		t.Fatal(err)
	}
	if DefaultConfig.Search.Payload == payload {
		t.Fatal("LoadConfig modified DefaultConfig")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error")
	}
}
