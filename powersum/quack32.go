package powersum

import (
	"github.com/ygina/quack/field"
	"github.com/ygina/quack/logger"
)

// Quack32 is the 32-bit power-sum accumulator: the primary width exposed by
// the library surface in the spec's external-interface table (quack_new,
// quack_insert, ...). It holds T running power sums over Z/Prime32Z.
type Quack32 struct {
	threshold int
	sums      []field.Element32
	inverses  field.InverseTable32
	count     int
	lastValue *uint32
}

// NewQuack32 constructs a zero-initialized accumulator for T=threshold.
func NewQuack32(threshold int) (*Quack32, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}
	return &Quack32{
		threshold: threshold,
		sums:      make([]field.Element32, threshold),
		inverses:  field.NewInverseTable32(threshold),
	}, nil
}

// Threshold returns T.
func (q *Quack32) Threshold() int { return q.threshold }

// Count returns the number of inserts minus removes recorded so far.
func (q *Quack32) Count() int { return q.count }

// LastValue returns the most recently inserted identifier, or ok=false if
// none has been inserted (or the last insert has since been removed).
func (q *Quack32) LastValue() (value uint32, ok bool) {
	if q.lastValue == nil {
		return 0, false
	}
	return *q.lastValue, true
}

// Insert adds x to the accumulator: s_k += x^k for k=1..T.
func (q *Quack32) Insert(x uint32) {
	size := len(q.sums)
	base := field.FromUint32(x)
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

// Remove subtracts x from the accumulator: s_k -= x^k for k=1..T. The
// caller is responsible for only removing values it previously inserted;
// this is not enforced (spec §4.3).
func (q *Quack32) Remove(x uint32) {
	size := len(q.sums)
	base := field.FromUint32(x)
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

// SubAssign subtracts rhs from q in place, component-wise. Returns
// ErrThresholdMismatch if the two accumulators were built with different T.
func (q *Quack32) SubAssign(rhs *Quack32) error {
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
// unmodified. It corresponds to the C ABI's quack_sub, which "consumes"
// both operands; in Go neither operand needs to be consumed since both are
// garbage collected.
func (q *Quack32) Sub(rhs *Quack32) (*Quack32, error) {
	if q.threshold != rhs.threshold {
		return nil, ErrThresholdMismatch
	}
	sums := make([]field.Element32, len(q.sums))
	for i := range sums {
		sums[i] = q.sums[i].Sub(rhs.sums[i])
	}
	return &Quack32{
		threshold: q.threshold,
		sums:      sums,
		inverses:  q.inverses,
		count:     q.count - rhs.count,
	}, nil
}

// Clear resets every power sum and the count to zero.
func (q *Quack32) Clear() {
	for i := range q.sums {
		q.sums[i] = field.Element32(0)
	}
	q.count = 0
	q.lastValue = nil
}

// ToCoeffs converts the T power sums into the T coefficients of the monic
// polynomial whose roots are the inserted multiset, via Newton's identities
// (spec §4.4). The result is meaningful only when Count() <= Threshold().
func (q *Quack32) ToCoeffs() []field.Element32 {
	coeffs := make([]field.Element32, len(q.sums))
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

// EvalCoeffs32 evaluates the monic polynomial X^T + c[0]X^(T-1) + ... +
// c[T-1] at x using Horner's scheme (spec §4.5, generic path).
func EvalCoeffs32(coeffs []field.Element32, x uint32) field.Element32 {
	xMod := field.FromUint32(x)
	result := xMod
	for i := 0; i < len(coeffs)-1; i++ {
		result = result.Add(coeffs[i])
		result = result.Mul(xMod)
	}
	return result.Add(coeffs[len(coeffs)-1])
}

// CountTrailingZeros32 returns the number of zero coefficients at the
// high-degree end of coeffs (from coeffs[len-1] backward), used by the
// decoder to detect sketch saturation (spec §4.5).
func CountTrailingZeros32(coeffs []field.Element32) int {
	count := 0
	for i := len(coeffs) - 1; i >= 0 && coeffs[i].IsZero(); i-- {
		count++
	}
	return count
}

// DecodeWithLog32 returns the identifiers in log whose field image is a
// root of the monic polynomial represented by diff's power sums, in the
// order they appear in log (spec §4.6). Returns ErrSketchSaturated if the
// number of roots found is fewer than the trailing-zero count predicts.
func DecodeWithLog32(diff *Quack32, log []uint32) ([]uint32, error) {
	if diff.count == 0 {
		return nil, nil
	}
	coeffs := diff.ToCoeffs()
	expected := len(coeffs) - CountTrailingZeros32(coeffs)
	out := make([]uint32, 0, expected)
	for _, id := range log {
		if EvalCoeffs32(coeffs, id).IsZero() {
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
