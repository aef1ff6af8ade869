package powersum

import (
	"github.com/ygina/quack/field"
	"github.com/ygina/quack/logger"
)

// Quack16 is the 16-bit power-sum accumulator. It is the only width that
// owns a reference to the shared power table cache (field.SharedPowerTable16)
// and so is the only width with a fast insert/evaluate path: T-1
// multiplications become T table reads (spec §4.3, §4.5).
type Quack16 struct {
	threshold int
	sums      []field.Element16
	inverses  field.InverseTable16
	table     *field.PowerTable16
	count     int
	lastValue *uint16
}

// NewQuack16 constructs a zero-initialized accumulator for T=threshold.
// T must not exceed the process-wide maximum power-sum threshold, since
// the shared power table is sized by that value on first use (spec §4.3,
// "Argument out of range").
func NewQuack16(threshold int) (*Quack16, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}
	table := field.SharedPowerTable16()
	if threshold > table.Size() {
		return nil, ErrInvalidThreshold
	}
	return &Quack16{
		threshold: threshold,
		sums:      make([]field.Element16, threshold),
		inverses:  field.NewInverseTable16(threshold),
		table:     table,
	}, nil
}

// Threshold returns T.
func (q *Quack16) Threshold() int { return q.threshold }

// Count returns the number of inserts minus removes recorded so far.
func (q *Quack16) Count() int { return q.count }

// LastValue returns the most recently inserted identifier, or ok=false if
// none has been inserted (or the last insert has since been removed).
func (q *Quack16) LastValue() (value uint16, ok bool) {
	if q.lastValue == nil {
		return 0, false
	}
	return *q.lastValue, true
}

// Insert adds x to the accumulator using the power table fast path:
// s_k += table[x][k-1] for k=1..T, replacing T-1 multiplications with T
// cache-friendly reads (spec §4.3).
func (q *Quack16) Insert(x uint16) {
	row := q.table.Row(x)
	for i := range q.sums {
		q.sums[i] = q.sums[i].Add(row[i])
	}
	q.count++
	v := x
	q.lastValue = &v
}

// Remove subtracts x from the accumulator using the same fast path.
func (q *Quack16) Remove(x uint16) {
	row := q.table.Row(x)
	for i := range q.sums {
		q.sums[i] = q.sums[i].Sub(row[i])
	}
	q.count--
	if q.lastValue != nil && *q.lastValue == x {
		q.lastValue = nil
	}
}

// SubAssign subtracts rhs from q in place, component-wise.
func (q *Quack16) SubAssign(rhs *Quack16) error {
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
func (q *Quack16) Sub(rhs *Quack16) (*Quack16, error) {
	if q.threshold != rhs.threshold {
		return nil, ErrThresholdMismatch
	}
	sums := make([]field.Element16, len(q.sums))
	for i := range sums {
		sums[i] = q.sums[i].Sub(rhs.sums[i])
	}
	return &Quack16{
		threshold: q.threshold,
		sums:      sums,
		inverses:  q.inverses,
		table:     q.table,
		count:     q.count - rhs.count,
	}, nil
}

// Clear resets every power sum and the count to zero.
func (q *Quack16) Clear() {
	for i := range q.sums {
		q.sums[i] = field.Element16(0)
	}
	q.count = 0
	q.lastValue = nil
}

// ToCoeffs converts the T power sums into the T coefficients of the monic
// polynomial whose roots are the inserted multiset, via Newton's identities.
func (q *Quack16) ToCoeffs() []field.Element16 {
	coeffs := make([]field.Element16, len(q.sums))
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

// EvalCoeffs16 evaluates the monic polynomial at x using the generic
// Horner path (spec §4.5, generic path). It agrees exactly with
// EvalCoeffs16Fast (spec §8 invariant 6, "Horner equivalence").
func EvalCoeffs16(coeffs []field.Element16, x uint16) field.Element16 {
	xMod := field.FromUint16(x)
	result := xMod
	for i := 0; i < len(coeffs)-1; i++ {
		result = result.Add(coeffs[i])
		result = result.Mul(xMod)
	}
	return result.Add(coeffs[len(coeffs)-1])
}

// EvalCoeffs16Fast evaluates the monic polynomial at x using the
// precomputed power table: T-1 modular multiplications become T-1 wide
// multiply-accumulates plus a single final reduction (spec §4.5, 16-bit
// fast path). The accumulator is 64-bit; each term is < Prime16^2 < 2^32
// and len(coeffs) is bounded by the configured max threshold, so it cannot
// overflow.
func EvalCoeffs16Fast(coeffs []field.Element16, x uint16, table *field.PowerTable16) field.Element16 {
	row := table.Row(x)
	size := len(coeffs)
	var acc uint64 = uint64(row[size-1].Uint16())
	for i := 0; i < size-1; i++ {
		acc += uint64(coeffs[i].Uint16()) * uint64(row[size-i-2].Uint16())
	}
	acc += uint64(coeffs[size-1].Uint16())
	return field.FromUint16(uint16(acc % uint64(field.Prime16)))
}

// CountTrailingZeros16 returns the number of zero coefficients at the
// high-degree end of coeffs.
func CountTrailingZeros16(coeffs []field.Element16) int {
	count := 0
	for i := len(coeffs) - 1; i >= 0 && coeffs[i].IsZero(); i-- {
		count++
	}
	return count
}

// DecodeWithLog16 returns the identifiers in log whose field image is a
// root of the monic polynomial represented by diff's power sums, using the
// power table fast-path evaluator.
func DecodeWithLog16(diff *Quack16, log []uint16) ([]uint16, error) {
	if diff.count == 0 {
		return nil, nil
	}
	coeffs := diff.ToCoeffs()
	expected := len(coeffs) - CountTrailingZeros16(coeffs)
	out := make([]uint16, 0, expected)
	for _, id := range log {
		if EvalCoeffs16Fast(coeffs, id, diff.table).IsZero() {
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
