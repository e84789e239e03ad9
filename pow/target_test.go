package pow

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedTarget(d int) *big.Int {
	one := big.NewInt(1)
	v := new(big.Int).Lsh(one, uint(DigestBits-d))
	return v.Sub(v, one)
}

func TestGenerateTargetMatchesFormula(t *testing.T) {
	for d := 0; d <= DigestBits; d++ {
		target, err := GenerateTarget(d)
		require.NoError(t, err)
		assert.Equal(t, 0, expectedTarget(d).Cmp(target.Big()), "difficulty %d", d)
		assert.Equal(t, d, target.Difficulty(), "difficulty %d", d)
	}
}

func TestGenerateTargetEdges(t *testing.T) {
	max, err := GenerateTarget(0)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("1", DigestBits), max.BitString())
	assert.Equal(t, expectedTarget(0).String(), max.String())

	zero, err := GenerateTarget(DigestBits)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, strings.Repeat("0", DigestBits), zero.BitString())
}

func TestGenerateTargetMonotonic(t *testing.T) {
	prev, err := GenerateTarget(0)
	require.NoError(t, err)
	for d := 1; d <= DigestBits; d++ {
		cur, err := GenerateTarget(d)
		require.NoError(t, err)
		assert.Equal(t, 1, prev.Cmp(cur), "target(%d) should exceed target(%d)", d-1, d)
		prev = cur
	}
}

func TestGenerateTargetRejectsOutOfRange(t *testing.T) {
	for _, d := range []int{-1, -256, DigestBits + 1, 1000} {
		_, err := GenerateTarget(d)
		assert.ErrorIs(t, err, ErrInvalidDifficulty, "difficulty %d", d)
	}
}

func TestTargetBitString(t *testing.T) {
	target, err := GenerateTarget(8)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0", 8)+strings.Repeat("1", 248), target.BitString())
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "zero", input: "0", want: "0"},
		{name: "trailing newline", input: "255\n", want: "255"},
		{name: "surrounding spaces", input: "  42  ", want: "42"},
		{name: "max", input: expectedTarget(0).String(), want: expectedTarget(0).String()},
		{name: "overflow", input: new(big.Int).Lsh(big.NewInt(1), DigestBits).String(), wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "hex", input: "0xff", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "twelve", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTarget(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTargetFromBig(t *testing.T) {
	_, err := TargetFromBig(big.NewInt(-5))
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = TargetFromBig(new(big.Int).Lsh(big.NewInt(1), DigestBits))
	assert.ErrorIs(t, err, ErrInvalidTarget)

	target, err := TargetFromBig(big.NewInt(1234))
	require.NoError(t, err)
	assert.Equal(t, "1234", target.String())
}

func TestTargetSatisfies(t *testing.T) {
	target, err := TargetFromBig(big.NewInt(0x0100))
	require.NoError(t, err)

	digest := make([]byte, 32)
	digest[30], digest[31] = 0x01, 0x00
	assert.True(t, target.Satisfies(digest), "equal digest satisfies")

	digest[31] = 0x01
	assert.False(t, target.Satisfies(digest), "larger digest fails")

	digest[30], digest[31] = 0x00, 0xff
	assert.True(t, target.Satisfies(digest), "smaller digest satisfies")

	assert.False(t, target.Satisfies(make([]byte, 33)), "oversized digest fails")
}
