package field

import (
	"sync"

	"github.com/ygina/quack/config"
	"github.com/ygina/quack/logger"
)

// PowerTable16 is the lazily built cache of per-value power sequences used
// by the 16-bit insert and evaluator fast paths: row[x] holds
// x^1, x^2, ..., x^size mod Prime16. It is built once, sized by the
// process-wide maximum power-sum threshold, and immutable thereafter (spec
// "Power table cache", §5).
type PowerTable16 struct {
	rows [][]Element16
	size int
}

// Row returns the precomputed power sequence for the full uint16 range
// (not just canonical residues below Prime16 — identifiers are arbitrary
// 16-bit values, reduced on first use within the row itself).
func (t *PowerTable16) Row(x uint16) []Element16 {
	return t.rows[x]
}

// Size returns the number of powers stored per row, i.e. the threshold the
// cache was built for.
func (t *PowerTable16) Size() int {
	return t.size
}

var (
	sharedTableOnce sync.Once
	sharedTable     *PowerTable16
)

// SharedPowerTable16 returns the process-wide 16-bit power table cache,
// building it on first call from config.Commit(). Safe for concurrent use;
// the one-shot gate (sync.Once) is the only synchronization this module's
// hot paths ever need (spec §5, §9).
func SharedPowerTable16() *PowerTable16 {
	sharedTableOnce.Do(func() {
		sharedTable = buildPowerTable16(config.Commit())
	})
	return sharedTable
}

func buildPowerTable16(threshold int) *PowerTable16 {
	if threshold < 1 {
		threshold = 1
	}
	l := logger.Logger()
	l.Info().
		Int("threshold", threshold).
		Int("rows", 1<<16).
		Msg("building 16-bit power-sum table cache")

	rows := make([][]Element16, 1<<16)
	for x := 0; x < (1 << 16); x++ {
		row := make([]Element16, threshold)
		base := FromUint16(uint16(x))
		y := base
		for k := 0; k < threshold; k++ {
			row[k] = y
			y = y.Mul(base)
		}
		rows[x] = row
	}
	return &PowerTable16{rows: rows, size: threshold}
}
