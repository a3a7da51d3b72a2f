package core

import "github.com/Jx2f/KeyHunter/internal/config"

const (
	KeyLength   = config.KeyLength
	KeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

func nextKeyByte(g Generator) byte {
	return KeyAlphabet[g.Uint64()&0x3F]
}

// FillKeyMaterial reseeds g and overwrites dst with the first len(dst) key
// bytes of its stream.
func FillKeyMaterial(dst []byte, g Generator, seed int64) {
	g.Seed(seed)
	for i := range dst {
		dst[i] = nextKeyByte(g)
	}
}

func NewKeyMaterial(g Generator, seed int64, depth int) []byte {
	p := make([]byte, depth)
	FillKeyMaterial(p, g, seed)
	return p
}

// Window is a KeyLength view onto a generator stream that moves forward by a
// fixed stride. A window created for worker i with stride n holds stream
// positions [k*n+i, k*n+i+KeyLength) after k calls to Advance.
type Window struct {
	gen      Generator
	key      [KeyLength]byte
	stride   int
	position uint64
	depth    uint64
}

// NewWindow seeds gen and positions the window at stream offset start.
// stride must be positive.
func NewWindow(gen Generator, seed int64, start, stride int) *Window {
	w := &Window{gen: gen, stride: stride, position: uint64(start)}
	gen.Seed(seed)
	for i := 0; i < start; i++ {
		gen.Uint64()
	}
	for i := range w.key {
		w.key[i] = nextKeyByte(gen)
	}
	w.depth = uint64(start) + KeyLength
	return w
}

// Advance slides the window by stride positions. Only the trailing stride
// bytes are drawn; the rest are shifted down.
func (w *Window) Advance() {
	if w.stride < KeyLength {
		copy(w.key[:], w.key[w.stride:])
		for i := KeyLength - w.stride; i < KeyLength; i++ {
			w.key[i] = nextKeyByte(w.gen)
		}
	} else {
		for i := KeyLength; i < w.stride; i++ {
			w.gen.Uint64()
		}
		for i := range w.key {
			w.key[i] = nextKeyByte(w.gen)
		}
	}
	w.position += uint64(w.stride)
	w.depth += uint64(w.stride)
}

// Key is only valid until the next Advance.
func (w *Window) Key() []byte { return w.key[:] }

// Position is the stream offset of the first key byte.
func (w *Window) Position() uint64 { return w.position }

// Depth is the number of draws consumed so far.
func (w *Window) Depth() uint64 { return w.depth }
