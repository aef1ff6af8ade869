package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertThroughput32(t *testing.T) {
	assert := require.New(t)
	result, err := InsertThroughput32(20, 1000, 4)
	assert.NoError(err)
	assert.Equal(4000, result.TotalInserts)
}

func TestInsertThroughput32RejectsZeroConcurrency(t *testing.T) {
	assert := require.New(t)
	_, err := InsertThroughput32(20, 10, 0)
	assert.Error(err)
}
