package pow

import (
	"encoding"
	"errors"
	"hash"
)

// Midstate is a hash state that has absorbed the puzzle input exactly once
// and can be resumed any number of times, concurrently, to hash
// input || encode(nonce) without rehashing the input.
type Midstate struct {
	alg Algorithm

	state  []byte    // MarshalBinary snapshot
	base   hash.Hash // cloned on every resume, never written to again
	prefix []byte    // replayed when the algorithm offers neither
}

func NewMidstate(alg Algorithm, prefix []byte) *Midstate {
	h := alg.New()
	h.Write(prefix)

	m := &Midstate{alg: alg}
	if state, err := marshalState(h); err == nil {
		m.state = state
		return m
	}
	if alg.clone != nil {
		m.base = h
		return m
	}
	m.prefix = append([]byte(nil), prefix...)
	return m
}

var errNoSnapshot = errors.New("hash state cannot be snapshotted")

func marshalState(h hash.Hash) ([]byte, error) {
	m, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, errNoSnapshot
	}
	if _, ok := h.(encoding.BinaryUnmarshaler); !ok {
		return nil, errNoSnapshot
	}
	return m.MarshalBinary()
}

// Resume returns a hasher positioned right after the prefix. dst, when it
// came from a previous Resume of the same midstate, is reused so the hot
// loop does not allocate.
func (m *Midstate) Resume(dst hash.Hash) (hash.Hash, error) {
	switch {
	case m.state != nil:
		if dst == nil {
			dst = m.alg.New()
		}
		u, ok := dst.(encoding.BinaryUnmarshaler)
		if !ok {
			return nil, errNoSnapshot
		}
		if err := u.UnmarshalBinary(m.state); err != nil {
			return nil, err
		}
		return dst, nil
	case m.base != nil:
		return m.alg.clone(m.base), nil
	default:
		if dst == nil {
			dst = m.alg.New()
		}
		dst.Reset()
		dst.Write(m.prefix)
		return dst, nil
	}
}
