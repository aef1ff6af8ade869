// Package field implements modular arithmetic in Z/pZ for the three
// canonical quACK field widths (16, 32, and 64 bits). Each width is a
// concrete, hand-specialized type rather than a generic parameterization:
// the field widths form a closed, tagged set, and the 16-bit width alone
// owns the shared power table cache used by the insert and evaluator fast
// paths.
package field
