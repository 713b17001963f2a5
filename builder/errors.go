// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.
//   • Constructors never panic; validation panics are confined to WithX option
//     constructors.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum the
// requested topology needs (e.g. Cycle with n < 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or sign policy
// needs a *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure while assembling the
// graph (nil constructor, rejected edge).
var ErrConstructFailed = errors.New("builder: construction failed")
