// SPDX-License-Identifier: MIT
// Package: signed-graphs/builder
//
// sign_fn.go: edge sign policies.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight DefaultSignFn assigns to every edge.
const DefaultEdgeWeight int64 = 1

// SignFn returns the weight of the next emitted edge. It may consume rng;
// a policy that needs randomness returns ErrNeedRandSource on a nil rng.
type SignFn func(rng *rand.Rand) (int64, error)

// DefaultSignFn makes every edge positive.
func DefaultSignFn(*rand.Rand) (int64, error) {
	return DefaultEdgeWeight, nil
}

// ConstantSign returns a SignFn that always yields w.
// Panics on w == 0: a zero weight carries no sign.
func ConstantSign(w int64) SignFn {
	if w == 0 {
		panic("builder: ConstantSign(0)")
	}
	return func(*rand.Rand) (int64, error) {
		return w, nil
	}
}

// BernoulliSign returns a SignFn yielding +1 with probability pPositive and
// -1 otherwise. Panics if pPositive is outside [0,1].
// The degenerate cases 0 and 1 do not need an RNG.
func BernoulliSign(pPositive float64) SignFn {
	if pPositive < probMin || pPositive > probMax {
		panic(fmt.Sprintf("builder: BernoulliSign(%g) not in [0,1]", pPositive))
	}
	return func(rng *rand.Rand) (int64, error) {
		switch {
		case pPositive == probMax:
			return 1, nil
		case pPositive == probMin:
			return -1, nil
		case rng == nil:
			return 0, fmt.Errorf("BernoulliSign: %w", ErrNeedRandSource)
		case rng.Float64() < pPositive:
			return 1, nil
		default:
			return -1, nil
		}
	}
}
