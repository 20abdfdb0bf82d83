// Package searcher answers radius and north queries over a pointstore.Registry.
//
// A radius query runs in two phases:
//
//  1. Bounding-box prune: range scans on the x and y indexes produce two
//     row bitmaps which are intersected.
//  2. Refinement: each surviving row is checked with the exact metric.
//
// The box [c.x-r, c.x+r] x [c.y-r, c.y+r] contains the L1 diamond, the L2
// disc and the Linf square of radius r, so phase 1 never drops a match.
//
// Results are returned in lexical name order.
package searcher
