package core

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"powtool/interfaces"
	"powtool/logger"
	"powtool/pow"

	"github.com/pkg/errors"
)

// Puzzle runs the file-level commands on top of an Engine. The optional
// store memoizes solutions across runs.
type Puzzle struct {
	engine interfaces.Engine
	store  interfaces.SolutionStore
	out    io.Writer
	quiet  bool
}

// NewPuzzle wires a puzzle runner. store may be nil. With quiet set only
// verdicts and performance results are written to out.
func NewPuzzle(engine interfaces.Engine, store interfaces.SolutionStore, out io.Writer, quiet bool) *Puzzle {
	return &Puzzle{
		engine: engine,
		store:  store,
		out:    out,
		quiet:  quiet,
	}
}

func (p *Puzzle) printf(format string, args ...interface{}) {
	if !p.quiet {
		fmt.Fprintf(p.out, format, args...)
	}
}

// TargetGen writes the target for difficulty to targetPath and prints its
// bit string.
func (p *Puzzle) TargetGen(difficulty int, targetPath string) (pow.Target, error) {
	target, err := pow.GenerateTarget(difficulty)
	if err != nil {
		return pow.Target{}, err
	}
	p.printf("Target Generated:\n%s\n", target.BitString())

	if err := WriteTarget(targetPath, target); err != nil {
		return pow.Target{}, err
	}
	logger.Debugf("Wrote target for difficulty %d to %s", difficulty, targetPath)
	return target, nil
}

// SolutionGen reads a target and an input, finds the smallest nonce and
// writes it to solutionPath.
func (p *Puzzle) SolutionGen(ctx context.Context, targetPath, inputPath, solutionPath string) (*pow.Solution, error) {
	target, err := ReadTarget(targetPath)
	if err != nil {
		return nil, err
	}
	input, err := ReadInput(inputPath)
	if err != nil {
		return nil, err
	}
	if target.IsZero() {
		logger.Warning("Target is zero; the search will almost certainly never finish")
	}

	sol, err := p.Solve(ctx, input, target)
	if err != nil {
		return nil, err
	}
	p.printf("Solution: %d\n", sol.Nonce)

	if err := WriteNonce(solutionPath, sol.Nonce); err != nil {
		return nil, err
	}
	return sol, nil
}

// Solve returns the smallest nonce for input and target, consulting the
// store first. A stored nonce is only trusted if it still verifies.
func (p *Puzzle) Solve(ctx context.Context, input []byte, target pow.Target) (*pow.Solution, error) {
	key := p.cacheKey(input, target)
	if sol, ok := p.cached(key, input, target); ok {
		logger.Infof("Using cached solution %d", sol.Nonce)
		return sol, nil
	}

	logger.Infof("Searching for a solution (algorithm=%s, encoding=%s, difficulty=%d)",
		p.engine.Algorithm(), p.engine.Encoding().Name(), target.Difficulty())
	sol, err := p.engine.FindSolution(ctx, input, target)
	if err != nil {
		return nil, err
	}
	logger.LogSolutionEvent(p.engine.Algorithm(), p.engine.Encoding().Name(), target.Difficulty(), sol.Nonce, sol.Attempts, sol.Elapsed)

	if p.store != nil {
		if err := p.store.Put(key, []byte(strconv.FormatUint(sol.Nonce, 10))); err != nil {
			logger.Warningf("Failed to cache solution: %v", err)
		}
	}
	return sol, nil
}

func (p *Puzzle) cached(key, input []byte, target pow.Target) (*pow.Solution, bool) {
	if p.store == nil {
		return nil, false
	}
	raw, err := p.store.Get(key)
	if err != nil {
		logger.Warningf("Solution cache lookup failed: %v", err)
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	nonce, err := ParseNonce(string(raw))
	if err == nil && p.engine.Verify(input, nonce, target) {
		digest, err := p.engine.Digest(input, nonce)
		if err == nil {
			return &pow.Solution{Nonce: nonce, Digest: digest}, true
		}
	}

	logger.Warningf("Discarding cached solution %q that no longer verifies", raw)
	if err := p.store.Delete(key); err != nil {
		logger.Warningf("Failed to delete cached solution: %v", err)
	}
	return nil, false
}

// cacheKey is algorithm/encoding/sha256(input)/target so that solutions
// never cross puzzle configurations.
func (p *Puzzle) cacheKey(input []byte, target pow.Target) []byte {
	return []byte(fmt.Sprintf("%s/%s/%x/%s", p.engine.Algorithm(), p.engine.Encoding().Name(), sha256.Sum256(input), target))
}

// Verify checks the nonce in solutionPath against the input and target
// files and prints the verdict.
func (p *Puzzle) Verify(inputPath, solutionPath, targetPath string) (bool, error) {
	input, err := ReadInput(inputPath)
	if err != nil {
		return false, err
	}
	nonce, err := ReadNonce(solutionPath)
	if err != nil {
		return false, err
	}
	target, err := ReadTarget(targetPath)
	if err != nil {
		return false, err
	}

	if err := pow.CheckNonce(p.engine.Encoding(), nonce); err != nil {
		return false, errors.Wrapf(err, "solution file %s", solutionPath)
	}
	digest, err := p.engine.Digest(input, nonce)
	if err != nil {
		return false, err
	}
	p.printf("%s\n%s\n%d\n", new(big.Int).SetBytes(digest), target, nonce)

	valid := p.engine.Verify(input, nonce, target)
	if valid {
		fmt.Fprintln(p.out, "Valid solution")
		fmt.Fprintln(p.out, 1)
	} else {
		fmt.Fprintln(p.out, "Invalid solution")
		fmt.Fprintln(p.out, 0)
	}
	return valid, nil
}
