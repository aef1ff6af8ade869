package field

// Prime16 is the largest prime not exceeding 2^16. Its closeness to 2^16
// is what makes the per-value power table fast path affordable: the table
// is indexed by the full uint16 range, not just the canonical residues.
const Prime16 uint16 = 65521

// Element16 is a value in [0, Prime16). The zero value is the additive
// identity. Every method assumes its receiver and arguments are already
// canonical and returns a canonical result; construct elements through
// FromUint16 or the arithmetic methods below, never by casting an
// arbitrary uint16.
type Element16 uint16

// FromUint16 reduces n into [0, Prime16) if necessary.
func FromUint16(n uint16) Element16 {
	if n >= Prime16 {
		n -= Prime16
	}
	return Element16(n)
}

// Uint16 returns the canonical representative as a plain uint16.
func (a Element16) Uint16() uint16 { return uint16(a) }

// IsZero reports whether a is the additive identity.
func (a Element16) IsZero() bool { return a == 0 }

// Neg returns -a mod Prime16.
func (a Element16) Neg() Element16 {
	if a == 0 {
		return a
	}
	return Element16(Prime16 - uint16(a))
}

// Add returns a+b mod Prime16 via conditional subtraction.
func (a Element16) Add(b Element16) Element16 {
	s := uint32(a) + uint32(b)
	if s >= uint32(Prime16) {
		s -= uint32(Prime16)
	}
	return Element16(s)
}

// Sub returns a-b mod Prime16 via conditional subtraction.
func (a Element16) Sub(b Element16) Element16 {
	d := uint32(a) + (uint32(Prime16) - uint32(b))
	if d >= uint32(Prime16) {
		d -= uint32(Prime16)
	}
	return Element16(d)
}

// Mul returns a*b mod Prime16.
func (a Element16) Mul(b Element16) Element16 {
	p := uint32(a) * uint32(b)
	return Element16(p % uint32(Prime16))
}

// Pow returns a^k mod Prime16 by square-and-multiply.
func (a Element16) Pow(k uint16) Element16 {
	result := Element16(1)
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
func (a Element16) Inv() Element16 {
	return a.Pow(Prime16 - 2)
}
