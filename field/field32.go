package field

// Prime32 is the largest prime not exceeding 2^32.
const Prime32 uint32 = 4294967291

// Element32 is a value in [0, Prime32). See Element16 for the canonical-form
// invariant shared across field widths.
type Element32 uint32

// FromUint32 reduces n into [0, Prime32) if necessary.
func FromUint32(n uint32) Element32 {
	if n >= Prime32 {
		n -= Prime32
	}
	return Element32(n)
}

// Uint32 returns the canonical representative as a plain uint32.
func (a Element32) Uint32() uint32 { return uint32(a) }

// IsZero reports whether a is the additive identity.
func (a Element32) IsZero() bool { return a == 0 }

// Neg returns -a mod Prime32.
func (a Element32) Neg() Element32 {
	if a == 0 {
		return a
	}
	return Element32(Prime32 - uint32(a))
}

// Add returns a+b mod Prime32 via conditional subtraction.
func (a Element32) Add(b Element32) Element32 {
	s := uint64(a) + uint64(b)
	if s >= uint64(Prime32) {
		s -= uint64(Prime32)
	}
	return Element32(s)
}

// Sub returns a-b mod Prime32 via conditional subtraction.
func (a Element32) Sub(b Element32) Element32 {
	d := uint64(a) + (uint64(Prime32) - uint64(b))
	if d >= uint64(Prime32) {
		d -= uint64(Prime32)
	}
	return Element32(d)
}

// Mul returns a*b mod Prime32.
func (a Element32) Mul(b Element32) Element32 {
	p := uint64(a) * uint64(b)
	return Element32(p % uint64(Prime32))
}

// Pow returns a^k mod Prime32 by square-and-multiply.
func (a Element32) Pow(k uint32) Element32 {
	result := Element32(1)
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
func (a Element32) Inv() Element32 {
	return a.Pow(Prime32 - 2)
}
