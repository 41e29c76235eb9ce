// SPDX-License-Identifier: MIT

// Package special provides the scalar special functions used by the
// distribution modules.
//
// Integer helpers (Signum, IsPrime, Factorial, BinomCoef) are implemented
// directly. Gamma/beta integrals delegate to gonum's mathext after a domain
// check: where mathext panics on out-of-range arguments, this package
// returns NaN, matching the NaN-sentinel convention of the rest of the
// module.
package special
