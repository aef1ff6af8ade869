package powersum

import (
	"github.com/ygina/quack/field"
	"github.com/ygina/quack/logger"
)

// Quack64 is the 64-bit power-sum accumulator, for identifier spaces wider
// than 32 bits. Structurally identical to Quack32 but specialized to
// field.Element64, per the field package's closed-set-of-widths design
// (mirrors how original_source/src/power_sum.rs duplicates PowerSumQuackU32
// into PowerSumQuackU64 rather than sharing a generic implementation).
type Quack64 struct {
	threshold int
	sums      []field.Element64
	inverses  field.InverseTable64
	count     int
	lastValue *uint64
}

// NewQuack64 constructs a zero-initialized accumulator for T=threshold.
func NewQuack64(threshold int) (*Quack64, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}
	return &Quack64{
		threshold: threshold,
		sums:      make([]field.Element64, threshold),
		inverses:  field.NewInverseTable64(threshold),
	}, nil
}

// Threshold returns T.
func (q *Quack64) Threshold() int { return q.threshold }

// Count returns the number of inserts minus removes recorded so far.
func (q *Quack64) Count() int { return q.count }

// LastValue returns the most recently inserted identifier, or ok=false if
// none has been inserted (or the last insert has since been removed).
func (q *Quack64) LastValue() (value uint64, ok bool) {
	if q.lastValue == nil {
		return 0, false
	}
	return *q.lastValue, true
}

// Insert adds x to the accumulator: s_k += x^k for k=1..T.
func (q *Quack64) Insert(x uint64) {
	size := len(q.sums)
	base := field.FromUint64(x)
	y := base
	for i := 0; i < size-1; i++ {
		q.sums[i] = q.sums[i].Add(y)
		y = y.Mul(base)
	}
	q.sums[size-1] = q.sums[size-1].Add(y)
	q.count++
	v := x
	q.lastValue = &v
}

// Remove subtracts x from the accumulator: s_k -= x^k for k=1..T.
func (q *Quack64) Remove(x uint64) {
	size := len(q.sums)
	base := field.FromUint64(x)
	y := base
	for i := 0; i < size-1; i++ {
		q.sums[i] = q.sums[i].Sub(y)
		y = y.Mul(base)
	}
	q.sums[size-1] = q.sums[size-1].Sub(y)
	q.count--
	if q.lastValue != nil && *q.lastValue == x {
		q.lastValue = nil
	}
}

// SubAssign subtracts rhs from q in place, component-wise.
func (q *Quack64) SubAssign(rhs *Quack64) error {
	if q.threshold != rhs.threshold {
		return ErrThresholdMismatch
	}
	for i := range q.sums {
		q.sums[i] = q.sums[i].Sub(rhs.sums[i])
	}
	q.count -= rhs.count
	q.lastValue = nil
	return nil
}

// Sub returns a new accumulator equal to q-rhs, leaving q and rhs
// unmodified.
func (q *Quack64) Sub(rhs *Quack64) (*Quack64, error) {
	if q.threshold != rhs.threshold {
		return nil, ErrThresholdMismatch
	}
	sums := make([]field.Element64, len(q.sums))
	for i := range sums {
		sums[i] = q.sums[i].Sub(rhs.sums[i])
	}
	return &Quack64{
		threshold: q.threshold,
		sums:      sums,
		inverses:  q.inverses,
		count:     q.count - rhs.count,
	}, nil
}

// Clear resets every power sum and the count to zero.
func (q *Quack64) Clear() {
	for i := range q.sums {
		q.sums[i] = field.Element64(0)
	}
	q.count = 0
	q.lastValue = nil
}

// ToCoeffs converts the T power sums into the T coefficients of the monic
// polynomial whose roots are the inserted multiset, via Newton's identities.
func (q *Quack64) ToCoeffs() []field.Element64 {
	coeffs := make([]field.Element64, len(q.sums))
	if len(coeffs) == 0 {
		return coeffs
	}
	coeffs[0] = q.sums[0].Neg()
	for i := 1; i < len(coeffs); i++ {
		for j := 0; j < i; j++ {
			coeffs[i] = coeffs[i].Sub(q.sums[j].Mul(coeffs[i-j-1]))
		}
		coeffs[i] = coeffs[i].Sub(q.sums[i])
		coeffs[i] = coeffs[i].Mul(q.inverses[i])
	}
	return coeffs
}

// EvalCoeffs64 evaluates the monic polynomial at x using Horner's scheme.
func EvalCoeffs64(coeffs []field.Element64, x uint64) field.Element64 {
	xMod := field.FromUint64(x)
	result := xMod
	for i := 0; i < len(coeffs)-1; i++ {
		result = result.Add(coeffs[i])
		result = result.Mul(xMod)
	}
	return result.Add(coeffs[len(coeffs)-1])
}

// CountTrailingZeros64 returns the number of zero coefficients at the
// high-degree end of coeffs.
func CountTrailingZeros64(coeffs []field.Element64) int {
	count := 0
	for i := len(coeffs) - 1; i >= 0 && coeffs[i].IsZero(); i-- {
		count++
	}
	return count
}

// DecodeWithLog64 returns the identifiers in log whose field image is a
// root of the monic polynomial represented by diff's power sums.
func DecodeWithLog64(diff *Quack64, log []uint64) ([]uint64, error) {
	if diff.count == 0 {
		return nil, nil
	}
	coeffs := diff.ToCoeffs()
	expected := len(coeffs) - CountTrailingZeros64(coeffs)
	out := make([]uint64, 0, expected)
	for _, id := range log {
		if EvalCoeffs64(coeffs, id).IsZero() {
			out = append(out, id)
		}
	}
	if len(out) < expected {
		l := logger.Logger()
		l.Warn().
			Int("threshold", diff.threshold).
			Int("found", len(out)).
			Int("expected", expected).
			Msg("quack: sketch saturated, more identifiers were lost than the threshold can recover")
		return out, ErrSketchSaturated
	}
	return out, nil
}
