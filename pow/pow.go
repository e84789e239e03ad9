package pow

import (
	"context"
	"fmt"
	"hash"
	"runtime"
	"sync"
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// Search tuning
const (
	DefaultProgressInterval = 100000 // attempts between progress reports
	cancelCheckInterval     = 1024   // attempts per worker between context checks
)

// Config selects the hash algorithm, nonce encoding and parallelism of a
// ProofOfWork engine. Zero values select the defaults.
type Config struct {
	Algorithm        string
	Encoding         string
	Workers          int
	ProgressInterval uint64
	// Progress, if set, is called roughly every ProgressInterval attempts.
	// It may be called from several workers at once.
	Progress func(Progress)
}

// Progress is a snapshot of a running search.
type Progress struct {
	Attempts uint64
	Elapsed  time.Duration
}

// HashRate returns attempts per second.
func (p Progress) HashRate() float64 {
	if p.Elapsed <= 0 {
		return 0
	}
	return float64(p.Attempts) / p.Elapsed.Seconds()
}

// Solution is the result of a successful search.
type Solution struct {
	Nonce    uint64
	Digest   []byte
	Attempts uint64
	Elapsed  time.Duration
}

// ProofOfWork searches and verifies hash puzzles. It holds no per-search
// state, so one engine may serve concurrent and consecutive searches.
type ProofOfWork struct {
	alg              Algorithm
	enc              NonceEncoding
	workers          int
	progressInterval uint64
	progress         func(Progress)
}

// NewProofOfWork creates a new engine from cfg.
func NewProofOfWork(cfg Config) (*ProofOfWork, error) {
	alg, err := LookupAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	enc, err := LookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	interval := cfg.ProgressInterval
	if interval == 0 {
		interval = DefaultProgressInterval
	}
	return &ProofOfWork{
		alg:              alg,
		enc:              enc,
		workers:          workers,
		progressInterval: interval,
		progress:         cfg.Progress,
	}, nil
}

func (pow *ProofOfWork) Algorithm() string       { return pow.alg.Name }
func (pow *ProofOfWork) Encoding() NonceEncoding { return pow.enc }
func (pow *ProofOfWork) Workers() int            { return pow.workers }

// Digest hashes input || encode(nonce).
func (pow *ProofOfWork) Digest(input []byte, nonce uint64) ([]byte, error) {
	if err := CheckNonce(pow.enc, nonce); err != nil {
		return nil, err
	}
	h := pow.alg.New()
	h.Write(input)
	pow.enc.WriteNonce(h, nonce, nil)
	return h.Sum(nil), nil
}

// Verify recomputes one digest and reports whether it does not exceed the
// target. A nonce the encoding cannot represent never verifies.
func (pow *ProofOfWork) Verify(input []byte, nonce uint64, target Target) bool {
	digest, err := pow.Digest(input, nonce)
	if err != nil {
		return false
	}
	return target.Satisfies(digest)
}

// searchState is shared by the workers of one FindSolution call.
type searchState struct {
	mu       sync.Mutex // serializes offers; reads stay lock-free
	found    atomic.Bool
	best     atomic.Uint64
	attempts atomic.Uint64
	start    time.Time
}

// offer records nonce as a solution if it is smaller than the current best.
// best is stored before found so a reader that sees found also sees a best
// at least as small as the first solution.
func (s *searchState) offer(nonce uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.found.Load() || nonce < s.best.Load() {
		s.best.Store(nonce)
		s.found.Store(true)
	}
}

// beaten reports whether a solution below nonce is already known, so a
// worker whose nonces only grow can stop.
func (s *searchState) beaten(nonce uint64) bool {
	return s.found.Load() && nonce > s.best.Load()
}

// FindSolution returns the smallest nonce whose digest does not exceed the
// target. The nonce space is striped across the engine's workers; a worker
// stops once every nonce it has left is larger than a known solution, so
// the smallest qualifying nonce always wins no matter which worker finds a
// solution first. The search blocks until a solution is found, ctx is done,
// or the encoding runs out of nonces. A target of zero is effectively
// unsolvable and relies on ctx for termination.
func (pow *ProofOfWork) FindSolution(ctx context.Context, input []byte, target Target) (*Solution, error) {
	mid := NewMidstate(pow.alg, input)
	st := &searchState{start: time.Now()}

	workers := uint64(pow.workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := uint64(0); w < workers; w++ {
		start := w
		g.Go(func() error {
			return pow.searchStripe(gctx, mid, &target, start, workers, st)
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, &CanceledError{Attempts: st.attempts.Load(), Elapsed: time.Since(st.start), Cause: ctx.Err()}
		}
		return nil, err
	}

	if !st.found.Load() {
		return nil, fmt.Errorf("%w: %s tops out at %d", ErrNonceSpaceExhausted, pow.enc.Name(), pow.enc.MaxNonce())
	}
	nonce := st.best.Load()
	digest, err := pow.Digest(input, nonce)
	if err != nil {
		return nil, err
	}
	return &Solution{
		Nonce:    nonce,
		Digest:   digest,
		Attempts: st.attempts.Load(),
		Elapsed:  time.Since(st.start),
	}, nil
}

// searchStripe tests start, start+stride, start+2*stride, ...
func (pow *ProofOfWork) searchStripe(ctx context.Context, mid *Midstate, target *Target, start, stride uint64, st *searchState) error {
	maxNonce := pow.enc.MaxNonce()
	if start > maxNonce {
		return nil
	}

	var (
		h       hash.Hash
		buf     []byte
		sum     []byte
		scratch uint256.Int
		pending uint64
		err     error
	)
	defer func() { pow.record(st, pending) }()

	ext, incremental := pow.enc.(extender)
	if incremental {
		// One running state: input || encode(start), extended by stride.
		if h, err = mid.Resume(nil); err != nil {
			return err
		}
		ext.extend(h, start)
	}

	for nonce := start; ; nonce += stride {
		if st.beaten(nonce) {
			return nil
		}

		if !incremental {
			if h, err = mid.Resume(h); err != nil {
				return err
			}
			buf = pow.enc.WriteNonce(h, nonce, buf)
		}
		sum = h.Sum(sum[:0])
		pending++

		if target.satisfiedBy(&scratch, sum) {
			st.offer(nonce)
			return nil
		}

		if pending == cancelCheckInterval {
			pow.record(st, pending)
			pending = 0
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		if maxNonce-nonce < stride {
			return nil
		}
		if incremental {
			ext.extend(h, stride)
		}
	}
}

// record adds n attempts to the shared counter and reports progress when
// the total crosses a ProgressInterval boundary.
func (pow *ProofOfWork) record(st *searchState, n uint64) {
	if n == 0 {
		return
	}
	total := st.attempts.Add(n)
	if pow.progress == nil {
		return
	}
	if total/pow.progressInterval != (total-n)/pow.progressInterval {
		pow.progress(Progress{Attempts: total, Elapsed: time.Since(st.start)})
	}
}
