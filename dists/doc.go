// SPDX-License-Identifier: MIT

// Package dists implements probability distributions as small parameter
// structs with value semantics.
//
// Every distribution exposes density (PDF or PMF), its logarithm, CDF,
// Quantile and closed-form moments. Invalid parameters never panic: every
// method of an invalid value returns NaN, and Quantile returns NaN for a
// probability outside [0, 1]. The New* constructors validate up front and
// return ErrInvalidParameter for callers that prefer an error.
//
// Degenerate limits are supported where they are well defined: Normal with
// Sigma 0 is a point mass at Mu and Poisson with Lambda 0 a point mass at 0.
package dists
