// Package topo provides the foundation types for the winged-edge kernel.
//
// This package contains type definitions and the error taxonomy only. All
// other internal packages import topo; topo imports nothing stateful. This
// keeps the entity model the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Entities reference each other through opaque integer handles
//     (VertexID, EdgeID, FaceID), never live pointers. Handles are
//     monotonic per kind and never reused, so a stale handle fails a
//     lookup instead of silently aliasing a new entity.
//   - An edge carries two wing pairs, one per (endpoint, face-slot) side.
//     Each pair simultaneously encodes the radial order of edges around
//     that endpoint and the boundary loop of that side's face. This dual
//     use is the defining property of the winged-edge representation.
package topo
