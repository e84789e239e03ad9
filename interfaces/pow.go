package interfaces

import (
	"context"

	"powtool/pow"
)

//go:generate mockgen -destination=../mocks/mock_interfaces.go -package=mocks powtool/interfaces Engine,SolutionStore

// Engine searches and verifies hash puzzles.
type Engine interface {
	FindSolution(ctx context.Context, input []byte, target pow.Target) (*pow.Solution, error)
	Verify(input []byte, nonce uint64, target pow.Target) bool
	Digest(input []byte, nonce uint64) ([]byte, error)
	Algorithm() string
	Encoding() pow.NonceEncoding
}

// SolutionStore persists found nonces keyed by puzzle.
// Get returns nil, nil when the key is absent.
type SolutionStore interface {
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Close() error
}

var _ Engine = (*pow.ProofOfWork)(nil)
