// Package kernel implements the winged-edge topology kernel.
//
// The kernel owns the entity store (vertices, edges, faces in flat,
// append/remove arenas keyed by monotonic identifiers) and exposes the
// Euler operators - MVSF, MEV, MEF, KEF, KFMRH - as the only way to
// create or destroy entities. Navigation and validation are read-only
// consumers of the same adjacency pointers.
//
// ARCHITECTURE:
//
// Single-Writer Mutable Graph:
// All operators and queries execute synchronously to completion on one
// logical thread of control, a linear transaction log of topology edits.
// There is no internal locking; callers requiring concurrency serialize
// access externally. Operators observe and mutate state strictly in call
// order - no reordering, no batching.
//
// Fail Fast, No Partial Mutation:
// Every operator validates all preconditions (handle resolution,
// degenerate inputs, boundary membership) before touching any state. A
// returned error means the kernel is exactly as it was before the call.
//
// CRITICAL PATTERNS:
//
// Monotonic Handles:
// Entity identifiers come from per-kind monotonic counters and are never
// reused, so a stale handle fails a lookup as NOT_FOUND instead of
// silently aliasing a newer entity.
//
// Boundary Slot Cycles:
// Each face's boundary is a cyclic sequence of edge sides ("slots"); an
// open boundary chain walks down one side of its edges and back the
// other. The wing pointers always encode the complete slot cycle, so MEV
// splices a detour into it, MEF cuts it in two, and KEF concatenates two
// cycles back into one. The same pointers, read backwards, are the radial
// fan around each vertex.
//
// Bounded Walks:
// Cyclic walks carry a step budget and a visited set. A walk that fails
// to close is reported as CORRUPTED_TOPOLOGY, never silently truncated.
package kernel
