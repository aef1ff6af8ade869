package field

import "math/bits"

// Prime64 is the largest prime not exceeding 2^64. It has the Solinas form
// 2^64 - solinasC, which lets wide-multiply reduction avoid a native
// 128-bit integer type (Go has none): 2^64 mod Prime64 == solinasC, so a
// 128-bit product hi*2^64+lo reduces to hi*solinasC+lo in a couple of
// passes instead of a full division.
const (
	Prime64  uint64 = 18446744073709551557
	solinasC uint64 = 59 // 2^64 - Prime64
)

// Element64 is a value in [0, Prime64). See Element16 for the canonical-form
// invariant shared across field widths.
type Element64 uint64

// FromUint64 reduces n into [0, Prime64) if necessary.
func FromUint64(n uint64) Element64 {
	if n >= Prime64 {
		n -= Prime64
	}
	return Element64(n)
}

// Uint64 returns the canonical representative as a plain uint64.
func (a Element64) Uint64() uint64 { return uint64(a) }

// IsZero reports whether a is the additive identity.
func (a Element64) IsZero() bool { return a == 0 }

// Neg returns -a mod Prime64.
func (a Element64) Neg() Element64 {
	if a == 0 {
		return a
	}
	return Element64(Prime64 - uint64(a))
}

// Add returns a+b mod Prime64. Unlike the narrower widths, a+b can carry
// out of 64 bits here because Prime64 is within solinasC of 2^64; the carry
// is folded back in using the same 2^64 == solinasC identity as Mul.
func (a Element64) Add(b Element64) Element64 {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		// true value is 2^64 + sum; 2^64 == solinasC (mod Prime64), and
		// sum+solinasC is always < Prime64 here since a,b < Prime64.
		return Element64(sum + solinasC)
	}
	if sum >= Prime64 {
		sum -= Prime64
	}
	return Element64(sum)
}

// Sub returns a-b mod Prime64.
func (a Element64) Sub(b Element64) Element64 {
	if a >= b {
		return a - b
	}
	return Element64(Prime64 - (uint64(b) - uint64(a)))
}

// Mul returns a*b mod Prime64 by widening the product to 128 bits via
// math/bits.Mul64 and reducing with the Solinas identity above.
func (a Element64) Mul(b Element64) Element64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	for hi != 0 {
		h2, l2 := bits.Mul64(hi, solinasC)
		var carry uint64
		lo, carry = bits.Add64(lo, l2, 0)
		hi = h2 + carry
	}
	if lo >= Prime64 {
		lo -= Prime64
	}
	return Element64(lo)
}

// Pow returns a^k mod Prime64 by square-and-multiply.
func (a Element64) Pow(k uint64) Element64 {
	result := Element64(1)
	base := a
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		k >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse of a via Fermat's little theorem.
// Undefined on the zero element; the caller never invokes it on zero.
func (a Element64) Inv() Element64 {
	return a.Pow(Prime64 - 2)
}
