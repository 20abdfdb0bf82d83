// Package model defines core types used throughout citysearch.
//
// # Identity Types
//
//   - RowID: Registry-local record identifier (uint32), assigned in lexical name order
//
// # Data Types
//
//   - Point: Immutable Cartesian coordinate pair
//   - City: Named point as returned by registry lookups
package model
