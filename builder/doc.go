// Package builder provides deterministic “functional‐options”‐style generators
// of synthetic signed graphs. They are used as fixtures by tests and
// benchmarks across the module and by the sgexport smoke configuration.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the sign policy.
//   - Sign policies (SignFn implementations):
//     – DefaultSignFn:  every edge is positive (DefaultEdgeWeight).
//     – ConstantSign:   fixed user-provided weight.
//     – BernoulliSign:  +1 with probability p, −1 otherwise.
//   - Topologies (Constructor implementations), all over vertices 1..n:
//     – Complete, Cycle, Path, Star, Wheel, RandomSparse.
//
// Guarantees:
//
//   - Vertices are the integers 1..n in ascending order.
//   - Edge emission order is documented per constructor and stable.
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors;
//     invalid build parameters surface as sentinel errors.
//
// Example:
//
//	g, err := builder.BuildGraph("fixture", 50, nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithSign(builder.BernoulliSign(0.8))},
//		builder.RandomSparse(0.1))
package builder
