package core

import (
	"encoding/hex"
	"testing"

	"github.com/Jx2f/KeyHunter/internal/config"
)

func TestServiceRunsConfiguredSearch(t *testing.T) {
	key := xorshiftMaterial(2500, 100)[33:65]
	sig := mustSignature(t, config.HandshakeLogin, LongSignature)

	c := config.DefaultConfig.Clone()
	c.Search.Payload = hex.EncodeToString(plant(t, key, sig.Expected))
	c.Search.Threads = 4
	c.Search.StartSecond = 2
	c.Search.EndSecond = 3
	c.Search.KeyDepth = 100
	c.Search.ProgressBatches = 0

	s, err := NewService(c)
	if err != nil {
		t.Fatal(err)
	}
	result, err := s.Start()
	if err != nil {
		t.Fatal(err)
	}
	if !result.Found() || result.Match.Seed != 2500 || result.Match.Offset != 33 || result.Match.Key != string(key) {
		t.Fatalf("got state %s, match %+v", result.State, result.Match)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestServiceRejectsPlaceholderPayload(t *testing.T) {
	if _, err := NewService(config.DefaultConfig.Clone()); err == nil {
		t.Fatal("expected the default payload placeholder to be rejected")
	}
}
