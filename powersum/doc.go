// Package powersum implements the quACK power-sum accumulator, its
// Newton-identity coefficient conversion, the monic-polynomial evaluator,
// and the decoder that turns a sketch difference plus a transmission log
// into the list of lost identifiers.
//
// A width (16, 32, or 64 bits) is a closed, tagged choice: each has its own
// concrete accumulator type built on the matching field.ElementN, following
// the field package's specialization strategy rather than a generic
// parameterization over field width.
package powersum
