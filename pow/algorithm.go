package pow

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DefaultAlgorithm matches the reference tool.
const DefaultAlgorithm = "sha256"

// Algorithm is a named 256-bit hash function.
type Algorithm struct {
	Name string
	New  func() hash.Hash

	// clone copies a hash state for algorithms that cannot snapshot
	// through encoding.BinaryMarshaler.
	clone func(hash.Hash) hash.Hash
}

func newBlake2b256() hash.Hash {
	// Only a key longer than 64 bytes makes New256 fail.
	h, _ := blake2b.New256(nil)
	return h
}

func cloneBlake3(h hash.Hash) hash.Hash {
	return h.(*blake3.Hasher).Clone()
}

func algorithms() map[string]Algorithm {
	return map[string]Algorithm{
		"sha256":      {Name: "sha256", New: sha256.New},
		"sha3-256":    {Name: "sha3-256", New: sha3.New256},
		"keccak256":   {Name: "keccak256", New: func() hash.Hash { return crypto.NewKeccakState() }},
		"blake2b-256": {Name: "blake2b-256", New: newBlake2b256},
		"blake3":      {Name: "blake3", New: func() hash.Hash { return blake3.New() }, clone: cloneBlake3},
	}
}

// LookupAlgorithm resolves a case-insensitive algorithm name. An empty
// name selects DefaultAlgorithm.
func LookupAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		name = DefaultAlgorithm
	}
	alg, ok := algorithms()[strings.ToLower(name)]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownAlgorithm, name, strings.Join(AlgorithmNames(), ", "))
	}
	return alg, nil
}

func AlgorithmNames() []string {
	names := make([]string, 0, 5)
	for name := range algorithms() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
