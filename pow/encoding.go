package pow

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"
	"sort"
	"strings"
)

// DefaultEncoding is the canonical nonce wire form.
const DefaultEncoding = "be64"

// NonceEncoding turns a nonce into the bytes appended to the input before
// hashing. Search and verification must always use the same encoding.
type NonceEncoding interface {
	Name() string
	// MaxNonce is the largest nonce the encoding can represent.
	MaxNonce() uint64
	// WriteNonce feeds the encoded nonce into h. buf is scratch space; the
	// possibly grown buffer is returned for reuse.
	WriteNonce(h hash.Hash, nonce uint64, buf []byte) []byte
}

// extender is implemented by encodings where encode(n+k) is encode(n)
// followed by k more bytes, so a search can keep one running hash.
type extender interface {
	extend(h hash.Hash, k uint64)
}

type fixedWidth struct {
	name  string
	width int
	order binary.AppendByteOrder
}

func (e fixedWidth) Name() string { return e.name }

func (e fixedWidth) MaxNonce() uint64 {
	if e.width >= 8 {
		return math.MaxUint64
	}
	return 1<<(8*e.width) - 1
}

func (e fixedWidth) WriteNonce(h hash.Hash, nonce uint64, buf []byte) []byte {
	if e.width == 4 {
		buf = e.order.AppendUint32(buf[:0], uint32(nonce))
	} else {
		buf = e.order.AppendUint64(buf[:0], nonce)
	}
	h.Write(buf)
	return buf
}

// zeroBlock is read-only.
var zeroBlock [4096]byte

// LegacyMaxNonce bounds the legacy encoding. Verifying nonce n hashes n
// bytes, so larger values would let a solution file stall verification.
const LegacyMaxNonce = math.MaxUint32

// legacyZeros encodes nonce n as n zero bytes, which is what the reference
// tool's bytearray(n) produced.
type legacyZeros struct{}

func (legacyZeros) Name() string { return "legacy" }

func (legacyZeros) MaxNonce() uint64 { return LegacyMaxNonce }

func (e legacyZeros) WriteNonce(h hash.Hash, nonce uint64, buf []byte) []byte {
	e.extend(h, nonce)
	return buf
}

func (legacyZeros) extend(h hash.Hash, k uint64) {
	for k > 0 {
		n := uint64(len(zeroBlock))
		if k < n {
			n = k
		}
		h.Write(zeroBlock[:n])
		k -= n
	}
}

func encodings() map[string]NonceEncoding {
	return map[string]NonceEncoding{
		"be64":   fixedWidth{name: "be64", width: 8, order: binary.BigEndian},
		"le64":   fixedWidth{name: "le64", width: 8, order: binary.LittleEndian},
		"be32":   fixedWidth{name: "be32", width: 4, order: binary.BigEndian},
		"legacy": legacyZeros{},
	}
}

// LookupEncoding resolves a case-insensitive encoding name. An empty name
// selects DefaultEncoding.
func LookupEncoding(name string) (NonceEncoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, ok := encodings()[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownEncoding, name, strings.Join(EncodingNames(), ", "))
	}
	return enc, nil
}

func EncodingNames() []string {
	names := make([]string, 0, 4)
	for name := range encodings() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckNonce rejects nonces the encoding cannot represent, typically a
// solution produced under a wider encoding.
func CheckNonce(enc NonceEncoding, nonce uint64) error {
	if nonce > enc.MaxNonce() {
		return fmt.Errorf("%w: %d exceeds %s maximum %d", ErrEncodingMismatch, nonce, enc.Name(), enc.MaxNonce())
	}
	return nil
}
