// Package config holds the process-wide settings shared by every field width:
// the maximum power-sum threshold used to size the lazily built 16-bit power
// table cache (see package field). It is the only ambient global state in
// this module besides that cache itself.
package config

import (
	"fmt"
	"sync"

	"github.com/ygina/quack/logger"
)

// DefaultMaxThreshold is used until SetMaxPowerSumThreshold is called.
const DefaultMaxThreshold = 64

var (
	mu        sync.Mutex
	current   = DefaultMaxThreshold
	committed bool
)

// SetMaxPowerSumThreshold updates the global maximum power-sum threshold.
// It must be called, if at all, before the first 16-bit accumulator or
// evaluator is constructed: once the 16-bit power table cache has been
// built from the current value, further writes are accepted into the
// stored value but no longer resize the cache (see Commit).
func SetMaxPowerSumThreshold(t int) error {
	if t < 1 {
		return fmt.Errorf("quack/config: max power-sum threshold must be >= 1, got %d", t)
	}
	mu.Lock()
	defer mu.Unlock()
	if committed {
		l := logger.Logger()
		l.Debug().
			Int("requested", t).
			Int("active", current).
			Msg("max power-sum threshold already committed to the 16-bit power table cache; value stored but cache size unchanged")
	}
	current = t
	return nil
}

// MaxPowerSumThreshold returns the currently stored maximum power-sum
// threshold.
func MaxPowerSumThreshold() int {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Commit locks in the current threshold and returns it. It is called
// exactly once, by the 16-bit power table cache on first build; every
// SetMaxPowerSumThreshold call after Commit no longer affects table sizing.
func Commit() int {
	mu.Lock()
	defer mu.Unlock()
	committed = true
	return current
}
