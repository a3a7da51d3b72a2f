package core

// ScanOffsets calls try with every KeyLength window of material, lowest
// offset first, and stops at the first window try accepts. For a buffer of
// length d the offsets tried are 0 through d-KeyLength inclusive.
func ScanOffsets(material []byte, try func(offset int, key []byte) bool) (int, bool) {
	for offset := 0; offset+KeyLength <= len(material); offset++ {
		if try(offset, material[offset:offset+KeyLength]) {
			return offset, true
		}
	}
	return -1, false
}

// seedSearcher tests all windows of one seed's key buffer. Each sweep worker
// owns one and reuses its buffers from seed to seed.
type seedSearcher struct {
	worker    int
	gen       Generator
	material  []byte
	validator *Validator
}

func (r *run) newSeedSearcher(worker int) (*seedSearcher, error) {
	v, err := r.newValidator()
	if err != nil {
		return nil, err
	}
	return &seedSearcher{
		worker:    worker,
		gen:       r.newGenerator(),
		material:  make([]byte, r.req.KeyDepth),
		validator: v,
	}, nil
}

func (s *seedSearcher) search(seed int64) *Match {
	FillKeyMaterial(s.material, s.gen, seed)
	offset, ok := ScanOffsets(s.material, func(_ int, key []byte) bool {
		return s.validator.Try(key)
	})
	if !ok {
		return nil
	}
	return &Match{
		Seed:     seed,
		Offset:   offset,
		Position: uint64(offset),
		Depth:    uint64(len(s.material)),
		Worker:   s.worker,
	}
}
