// Package distance provides planar distance calculations between points.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance (selector 0)
//   - MetricLinf: Chebyshev distance (selector 1)
//   - MetricL1: Manhattan distance (selector 2)
//
// The selector values are fixed; they are what users type at the terminal.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	fn, err := distance.Provider(distance.MetricL1)
package distance
