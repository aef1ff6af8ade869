package field

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestElement16Inverse(t *testing.T) {
	assert := require.New(t)
	for i := uint16(1); i <= 50; i++ {
		a := FromUint16(i)
		assert.Equal(Element16(1), a.Mul(a.Inv()), "i=%d", i)
	}
}

func TestElement32Inverse(t *testing.T) {
	assert := require.New(t)
	for i := uint32(1); i <= 50; i++ {
		a := FromUint32(i)
		assert.Equal(Element32(1), a.Mul(a.Inv()), "i=%d", i)
	}
}

func TestElement64Inverse(t *testing.T) {
	assert := require.New(t)
	for i := uint64(1); i <= 50; i++ {
		a := FromUint64(i)
		assert.Equal(Element64(1), a.Mul(a.Inv()), "i=%d", i)
	}
}

func TestElement16CanonicalForm(t *testing.T) {
	assert := require.New(t)
	const n uint16 = 65530 // >= Prime16, < 1<<16
	assert.Less(uint16(FromUint16(n)), Prime16)
	assert.Equal(FromUint16(n-Prime16), FromUint16(n))
}

// TestElement64AddCarry exercises the overflow branch of Element64.Add: the
// only width where a+b can exceed 2^64 given a,b < Prime64.
func TestElement64AddCarry(t *testing.T) {
	assert := require.New(t)
	// Prime64-1 == -1 (mod Prime64), so (Prime64-1)+(Prime64-1) == -2,
	// i.e. Prime64-2. The literal sum overflows uint64, which is exactly
	// the carry branch this test exists to exercise.
	a := Element64(Prime64 - 1)
	b := Element64(Prime64 - 1)
	assert.Equal(FromUint64(Prime64-2), a.Add(b))
}

func propertiesElement32() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("a+b is always canonical", prop.ForAll(
		func(a, b uint32) bool {
			r := FromUint32(a).Add(FromUint32(b))
			return uint32(r) < Prime32
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.Property("a-b then +b recovers a", prop.ForAll(
		func(a, b uint32) bool {
			x := FromUint32(a)
			y := FromUint32(b)
			return x.Sub(y).Add(y) == x
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.Property("a*inv(a) == 1 for nonzero a", prop.ForAll(
		func(a uint32) bool {
			x := FromUint32(a)
			if x.IsZero() {
				return true
			}
			return x.Mul(x.Inv()) == Element32(1)
		},
		gen.UInt32(),
	))

	properties.Property("multiplication matches big-integer arithmetic", prop.ForAll(
		func(a, b uint32) bool {
			x := FromUint32(a)
			y := FromUint32(b)
			want := (uint64(x) * uint64(y)) % uint64(Prime32)
			return uint64(x.Mul(y)) == want
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	return properties
}

func TestElement32Properties(t *testing.T) {
	propertiesElement32().TestingRun(t, gopter.ConsoleReporter(false))
}

func propertiesElement64() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("a+b is always canonical", prop.ForAll(
		func(a, b uint64) bool {
			r := FromUint64(a).Add(FromUint64(b))
			return uint64(r) < Prime64
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("a-b then +b recovers a", prop.ForAll(
		func(a, b uint64) bool {
			x := FromUint64(a)
			y := FromUint64(b)
			return x.Sub(y).Add(y) == x
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("a*inv(a) == 1 for nonzero a", prop.ForAll(
		func(a uint64) bool {
			x := FromUint64(a)
			if x.IsZero() {
				return true
			}
			return x.Mul(x.Inv()) == Element64(1)
		},
		gen.UInt64(),
	))

	return properties
}

func TestElement64Properties(t *testing.T) {
	propertiesElement64().TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSharedPowerTable16RowMatchesDirectComputation(t *testing.T) {
	assert := require.New(t)

	table := SharedPowerTable16()
	for _, x := range []uint16{0, 1, 2, 12345, 65520, 65535} {
		row := table.Row(x)
		base := FromUint16(x)
		y := base
		for k := 0; k < table.Size(); k++ {
			assert.Equal(y, row[k], "x=%d k=%d", x, k)
			y = y.Mul(base)
		}
	}
}
