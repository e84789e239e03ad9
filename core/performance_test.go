package core

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"powtool/pow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceTest(t *testing.T) {
	engine := newEngine(t, "")
	inputPath := writeTemp(t, "input", "benchmark input")

	var out bytes.Buffer
	p := NewPuzzle(engine, nil, &out, false)
	results, err := p.PerformanceTest(context.Background(), inputPath, []int{1, 4, 8}, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, d := range []int{1, 4, 8} {
		r := results[i]
		assert.Equal(t, d, r.Difficulty)
		assert.False(t, r.TimedOut)
		assert.False(t, r.Finished.IsZero())

		target, err := pow.GenerateTarget(d)
		require.NoError(t, err)
		assert.True(t, engine.Verify([]byte("benchmark input"), r.Nonce, target))
	}

	printed := out.String()
	assert.Contains(t, printed, "Difficulty 8:")
	assert.Contains(t, printed, "DIFFICULTY")
	assert.Contains(t, printed, "H/s")
}

func TestPerformanceTestContinuesAfterTimeout(t *testing.T) {
	inputPath := writeTemp(t, "input", "slow")

	var out bytes.Buffer
	p := NewPuzzle(newEngine(t, ""), nil, &out, true)
	results, err := p.PerformanceTest(context.Background(), inputPath, []int{pow.DigestBits, 2}, 50*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].TimedOut)
	assert.Equal(t, pow.DigestBits, results[0].Difficulty)
	assert.Positive(t, results[0].Attempts)
	assert.False(t, results[1].TimedOut)
	assert.Contains(t, out.String(), "timed out")
	assert.Contains(t, out.String(), "timeout")
}

func TestPerformanceTestParentCanceled(t *testing.T) {
	inputPath := writeTemp(t, "input", "stop")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPuzzle(newEngine(t, ""), nil, &bytes.Buffer{}, true)
	_, err := p.PerformanceTest(ctx, inputPath, []int{pow.DigestBits}, time.Minute)
	assert.ErrorIs(t, err, pow.ErrSearchCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPerformanceTestErrors(t *testing.T) {
	p := NewPuzzle(newEngine(t, ""), nil, &bytes.Buffer{}, true)

	_, err := p.PerformanceTest(context.Background(), filepath.Join(t.TempDir(), "missing"), []int{1}, 0)
	assert.ErrorIs(t, err, ErrFileNotFound)

	inputPath := writeTemp(t, "input", "x")
	_, err = p.PerformanceTest(context.Background(), inputPath, []int{300}, 0)
	assert.ErrorIs(t, err, pow.ErrInvalidDifficulty)
}

func TestPerfResultHashRate(t *testing.T) {
	r := PerfResult{Attempts: 5000, Elapsed: 2 * time.Second}
	assert.InDelta(t, 2500.0, r.HashRate(), 1e-9)
	assert.Zero(t, PerfResult{}.HashRate())
}

func TestLogProgressDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogProgress(pow.Progress{Attempts: 123456, Elapsed: time.Second})
	})
}
