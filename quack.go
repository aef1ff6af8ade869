// Package quack is the quACK ("quick ACKnowledgement") set-reconciliation
// primitive: a compact, algebraic sketch that lets a sender recover exactly
// which of a stream of fixed-width identifiers a receiver failed to see,
// provided no more than a threshold T went missing.
//
// The recommended width is 32 bits (Quack), matching the C-compatible ABI
// surface this package mirrors: quack_new, quack_insert, quack_sub,
// quack_to_coeffs, quack_decode_with_log, and friends. The field, powersum,
// and config packages hold the underlying arithmetic; this package re-
// exports the 32-bit accumulator under the names a host embedding the
// library actually calls.
package quack

import (
	"github.com/blang/semver/v4"

	"github.com/ygina/quack/config"
	"github.com/ygina/quack/powersum"
)

// Version identifies this module, mirroring the teacher's root-level
// Version = semver.MustParse(...) convention.
var Version = semver.MustParse("0.1.0")

// Quack is the 32-bit power-sum accumulator: the library's recommended
// width. It is a thin alias so callers can write quack.New instead of
// reaching into the powersum package directly.
type Quack = powersum.Quack32

// New constructs a new 32-bit accumulator that can decode at most
// threshold identifiers.
func New(threshold int) (*Quack, error) {
	return powersum.NewQuack32(threshold)
}

// DecodeWithLog decodes the lost identifiers from diff (the sender's
// accumulator minus the receiver's) against the sender's transmission log.
func DecodeWithLog(diff *Quack, log []uint32) ([]uint32, error) {
	return powersum.DecodeWithLog32(diff, log)
}

// SetMaxPowerSumThreshold sets the process-wide maximum power-sum
// threshold, which sizes the lazily built 16-bit power table cache. It has
// no effect on the 32-bit or 64-bit accumulators, which carry no such
// cache.
func SetMaxPowerSumThreshold(threshold int) error {
	return config.SetMaxPowerSumThreshold(threshold)
}
