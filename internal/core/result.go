package core

import (
	"encoding/json"
	"time"
)

type State int

const (
	// StateFound means a key was recovered.
	StateFound State = iota
	// StateExhausted means the configured range held no matching key.
	StateExhausted
	// StateStopped means Stop was called before the range was exhausted.
	StateStopped
	// StateSkipped means another run was already active.
	StateSkipped
)

func (s State) String() string {
	switch s {
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	case StateStopped:
		return "stopped"
	case StateSkipped:
		return "skipped"
	}
	return "unknown"
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

type Match struct {
	Seed int64 `json:"seed"`
	// Offset is the window start inside the seed's key buffer, or -1 for
	// depth searches.
	Offset int `json:"offset"`
	// Position is the stream offset of the key's first byte.
	Position uint64       `json:"position"`
	Depth    uint64       `json:"depth"`
	Worker   int          `json:"worker"`
	Key      string       `json:"key"`
	Header   PacketHeader `json:"header"`
}

type Result struct {
	RunID   string        `json:"runId,omitempty"`
	State   State         `json:"state"`
	Match   *Match        `json:"match,omitempty"`
	Elapsed time.Duration `json:"elapsed"`
}

func (r *Result) Found() bool {
	return r != nil && r.State == StateFound
}
