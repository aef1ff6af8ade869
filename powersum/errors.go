package powersum

import "errors"

// ErrInvalidThreshold is returned at construction time when T is out of
// range: T must be at least 1, and a 16-bit accumulator's T may not exceed
// the process-wide maximum power-sum threshold (spec §7, "Argument out of
// range").
var ErrInvalidThreshold = errors.New("quack/powersum: invalid threshold")

// ErrThresholdMismatch is returned by SubAssign/Sub when the two
// accumulators were built with different T (spec §7, "Mismatched
// accumulators").
var ErrThresholdMismatch = errors.New("quack/powersum: mismatched thresholds")

// ErrSketchSaturated is returned by DecodeWithLog when the number of roots
// found in the log is fewer than the trailing-zero count predicts, which
// provably implies more than T identifiers were lost. The caller's only
// recovery is retransmitting the full log (spec §7, "Sketch saturated").
var ErrSketchSaturated = errors.New("quack/powersum: sketch saturated, more than the threshold were lost")
