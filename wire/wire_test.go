package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ygina/quack/field"
)

func sampleSums() []field.Element32 {
	return []field.Element32{
		field.FromUint32(1),
		field.FromUint32(4294967290),
		field.FromUint32(123456789),
		field.FromUint32(0),
	}
}

func TestCBORRoundTrip(t *testing.T) {
	assert := require.New(t)
	sums := sampleSums()
	buf, err := MarshalCBOR(len(sums), 3, 42, true, sums)
	assert.NoError(err)

	w, gotSums, err := UnmarshalCBOR(buf)
	assert.NoError(err)
	assert.Equal(len(sums), w.Threshold)
	assert.Equal(3, w.Count)
	assert.Equal(uint32(42), w.LastValue)
	assert.True(w.HasLast)
	assert.Equal(sums, gotSums)
}

func TestCompactRoundTrip(t *testing.T) {
	assert := require.New(t)
	sums := sampleSums()
	buf, err := MarshalCompact(3, 42, true, sums)
	assert.NoError(err)

	count, lastValue, hasLast, gotSums, err := UnmarshalCompact(buf, len(sums))
	assert.NoError(err)
	assert.Equal(3, count)
	assert.Equal(uint32(42), lastValue)
	assert.True(hasLast)
	assert.Equal(sums, gotSums)
}

func TestCompactRejectsShortBuffer(t *testing.T) {
	assert := require.New(t)
	_, _, _, _, err := UnmarshalCompact([]byte{1, 2, 3}, 4)
	assert.Error(err)
}
