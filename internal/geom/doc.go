// Package geom provides the pure vector/matrix math consumed by the
// topology kernel for derived computation (normals, areas, lengths) and
// by callers applying rigid transforms to vertex positions.
//
// Everything in this package is a pure function over value types: no
// shared mutable state, no side effects. The kernel never lets geom touch
// topology - positions go in, numbers come out.
package geom
