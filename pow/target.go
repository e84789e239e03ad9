package pow

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// DigestBits is the width of every supported digest and therefore the
// largest meaningful difficulty.
const DigestBits = 256

// Target is the threshold a digest must not exceed. The zero value is the
// unsolvable target 0.
type Target struct {
	v uint256.Int
}

// GenerateTarget builds the target for the given difficulty: difficulty
// zero bits followed by DigestBits-difficulty one bits, read big-endian.
// That is 2^(256-difficulty) - 1.
func GenerateTarget(difficulty int) (Target, error) {
	if difficulty < 0 || difficulty > DigestBits {
		return Target{}, fmt.Errorf("%w: %d is outside [0, %d]", ErrInvalidDifficulty, difficulty, DigestBits)
	}
	var t Target
	t.v.SetAllOne()
	t.v.Rsh(&t.v, uint(difficulty))
	return t, nil
}

// ParseTarget reads a decimal target. Surrounding whitespace is ignored.
func ParseTarget(s string) (Target, error) {
	v, err := uint256.FromDecimal(strings.TrimSpace(s))
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q: %v", ErrInvalidTarget, s, err)
	}
	return Target{v: *v}, nil
}

// TargetFromBig converts b, which must lie in [0, 2^256-1].
func TargetFromBig(b *big.Int) (Target, error) {
	if b == nil || b.Sign() < 0 {
		return Target{}, fmt.Errorf("%w: negative or nil value", ErrInvalidTarget)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Target{}, fmt.Errorf("%w: %s exceeds %d bits", ErrInvalidTarget, b, DigestBits)
	}
	return Target{v: *v}, nil
}

func (t Target) Big() *big.Int {
	return t.v.ToBig()
}

// String returns the decimal form, which is also the on-disk format.
func (t Target) String() string {
	return t.v.Dec()
}

// BitString renders the target as exactly DigestBits binary digits.
func (t Target) BitString() string {
	return fmt.Sprintf("%0*b", DigestBits, t.v.ToBig())
}

// Difficulty reports the number of leading zero bits of the target.
func (t Target) Difficulty() int {
	return DigestBits - t.v.BitLen()
}

func (t Target) IsZero() bool {
	return t.v.IsZero()
}

func (t Target) Cmp(other Target) int {
	return t.v.Cmp(&other.v)
}

// Satisfies reports whether digest, read as a big-endian unsigned integer,
// is less than or equal to the target.
func (t Target) Satisfies(digest []byte) bool {
	var d uint256.Int
	return t.satisfiedBy(&d, digest)
}

// satisfiedBy is the allocation-free form used by search workers; scratch
// is overwritten.
func (t *Target) satisfiedBy(scratch *uint256.Int, digest []byte) bool {
	if len(digest) > 32 {
		return false
	}
	scratch.SetBytes(digest)
	return !scratch.Gt(&t.v)
}
