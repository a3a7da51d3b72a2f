package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Jx2f/KeyHunter/internal/config"
	"github.com/Jx2f/KeyHunter/pkg/logger"
)

// captureLog points the package logger at a buffer until the test ends.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	saved := logger.Logger
	buf := new(bytes.Buffer)
	logger.Logger = logger.New(buf)
	t.Cleanup(func() { logger.Logger = saved })
	return buf
}

func countMessages(buf *bytes.Buffer, prefix string) int {
	return strings.Count(buf.String(), `"message":"`+prefix)
}

func TestSweepProgressCadence(t *testing.T) {
	buf := captureLog(t)
	c := testSearchConfig(2)
	c.ProgressBatches = 100
	b := newTestForcer(t, c)
	result, err := b.BruteForce(&Request{
		Strategy:    config.StrategyOffset,
		Ciphertext:  noMatch,
		Signature:   mustSignature(t, config.HandshakeLogin, LongSignature),
		StartSecond: 0,
		EndSecond:   1,
		KeyDepth:    40,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.State != StateExhausted {
		t.Fatalf("state %s", result.State)
	}
	// 1000 seeds over 2 workers is 500 batches.
	if n := countMessages(buf, "Progress:"); n != 5 {
		t.Fatalf("got %d progress lines, want 5\n%s", n, buf)
	}
}

func TestDepthProgressCadence(t *testing.T) {
	buf := captureLog(t)
	c := testSearchConfig(2)
	c.ProgressDraws = 64
	b := newTestForcer(t, c)
	result, err := b.BruteForce(&Request{
		Strategy:   config.StrategyDepth,
		Ciphertext: noMatch,
		Signature:  mustSignature(t, config.HandshakeLogin, ShortSignature),
		Seed:       811,
		MaxDepth:   512,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.State != StateExhausted {
		t.Fatalf("state %s", result.State)
	}
	// Each worker draws past 64, 128, ... 512 once.
	if n := countMessages(buf, "Depth:"); n != 16 {
		t.Fatalf("got %d depth lines, want 16\n%s", n, buf)
	}
}

func TestProgressDisabled(t *testing.T) {
	buf := captureLog(t)
	b := newTestForcer(t, testSearchConfig(2))
	_, err := b.BruteForce(&Request{
		Strategy:   config.StrategyDepth,
		Ciphertext: noMatch,
		Signature:  mustSignature(t, config.HandshakeLogin, ShortSignature),
		Seed:       811,
		MaxDepth:   512,
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := countMessages(buf, "Depth:"); n != 0 {
		t.Fatalf("got %d depth lines with progress off", n)
	}
}
