package core

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"powtool/logger"
	"powtool/pow"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// PerfResult is the outcome of one difficulty in a performance run.
type PerfResult struct {
	Difficulty int
	Nonce      uint64
	Attempts   uint64
	Elapsed    time.Duration
	Finished   time.Time
	TimedOut   bool
}

// HashRate returns attempts per second.
func (r PerfResult) HashRate() float64 {
	return pow.Progress{Attempts: r.Attempts, Elapsed: r.Elapsed}.HashRate()
}

// PerformanceTest solves the input at each difficulty in turn, bypassing the
// solution store. A difficulty that runs past perDifficultyTimeout is
// recorded as timed out and the run moves on; a zero timeout never expires.
// Canceling ctx stops the whole run.
func (p *Puzzle) PerformanceTest(ctx context.Context, inputPath string, difficulties []int, perDifficultyTimeout time.Duration) ([]PerfResult, error) {
	input, err := ReadInput(inputPath)
	if err != nil {
		return nil, err
	}

	results := make([]PerfResult, 0, len(difficulties))
	for _, d := range difficulties {
		target, err := pow.GenerateTarget(d)
		if err != nil {
			return results, err
		}

		res, err := p.solveTimed(ctx, input, target, perDifficultyTimeout)
		res.Difficulty = d
		if err != nil {
			return results, err
		}
		results = append(results, res)

		if res.TimedOut {
			fmt.Fprintf(p.out, "Difficulty %d: timed out after %s (%s attempts)\n", d, res.Elapsed.Round(time.Millisecond), humanize.Comma(int64(res.Attempts)))
			continue
		}
		fmt.Fprintf(p.out, "Difficulty %d: %d\n", d, res.Nonce)
		fmt.Fprintln(p.out, res.Finished.Format(time.RFC3339Nano))
	}

	p.renderResults(results)
	return results, nil
}

func (p *Puzzle) solveTimed(ctx context.Context, input []byte, target pow.Target, timeout time.Duration) (PerfResult, error) {
	searchCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	sol, err := p.engine.FindSolution(searchCtx, input, target)
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			logger.Warningf("Difficulty %d timed out after %s", target.Difficulty(), timeout)
			res := PerfResult{Elapsed: time.Since(start), Finished: time.Now(), TimedOut: true}
			var canceled *pow.CanceledError
			if errors.As(err, &canceled) {
				res.Attempts = canceled.Attempts
			}
			return res, nil
		}
		return PerfResult{}, err
	}

	logger.LogSolutionEvent(p.engine.Algorithm(), p.engine.Encoding().Name(), target.Difficulty(), sol.Nonce, sol.Attempts, sol.Elapsed)
	return PerfResult{
		Nonce:    sol.Nonce,
		Attempts: sol.Attempts,
		Elapsed:  sol.Elapsed,
		Finished: time.Now(),
	}, nil
}

func (p *Puzzle) renderResults(results []PerfResult) {
	if len(results) == 0 {
		return
	}
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Difficulty", "Nonce", "Attempts", "Elapsed", "Hash rate"})
	for _, r := range results {
		nonce := strconv.FormatUint(r.Nonce, 10)
		if r.TimedOut {
			nonce = "timeout"
		}
		table.Append([]string{
			strconv.Itoa(r.Difficulty),
			nonce,
			humanize.Comma(int64(r.Attempts)),
			r.Elapsed.Round(time.Millisecond).String(),
			humanize.SI(r.HashRate(), "H/s"),
		})
	}
	table.Render()
}

// LogProgress reports a running search at debug level.
func LogProgress(pr pow.Progress) {
	logger.Debugf("Search progress: %s attempts in %s (%s)",
		humanize.Comma(int64(pr.Attempts)), pr.Elapsed.Round(time.Millisecond), humanize.SI(pr.HashRate(), "H/s"))
}
