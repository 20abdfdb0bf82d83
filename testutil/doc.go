// Package testutil provides testing utilities for citysearch.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random city sets and computing
// exact answers by linear scan.
//
// # Random Cities
//
//	rng := testutil.NewRNG(seed)
//	cities := rng.RandomCities(500, -100, 100)
//	clustered := rng.ClusteredCities(500, 4, 2.5)
//
// # Ground Truth
//
//	want := testutil.BruteForceMatches(cities, center, radius, distance.Euclidean)
//	north := testutil.BruteForceNorth(cities, center)
//
// # Data Files
//
//	text := testutil.Format(cities)
package testutil
