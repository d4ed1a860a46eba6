package topo

import "github.com/jbacus/sketchy/internal/geom"

// VertexID identifies a vertex. IDs start at 1; NoVertex marks "none".
type VertexID int64

// EdgeID identifies an edge. IDs start at 1; NoEdge marks "none".
type EdgeID int64

// FaceID identifies a face. IDs start at 1; NoFace marks "none".
// An edge face slot holding NoFace means that side is open (boundary).
type FaceID int64

// Sentinel handles. The zero value of each ID type is the sentinel, so a
// freshly allocated entity starts with every reference unset.
const (
	NoVertex VertexID = 0
	NoEdge   EdgeID   = 0
	NoFace   FaceID   = 0
)

// Wing is one prev/next pair of an edge's adjacency pointers.
//
// A wing is keyed to one (endpoint, face-slot) side of its edge: Next is
// the successor in that side's face boundary loop, and Prev doubles as
// the next edge radially around that side's endpoint (the predecessor of
// an edge in a face loop always shares the slot's own endpoint).
type Wing struct {
	Prev EdgeID
	Next EdgeID
}

// Vertex is a node of the adjacency graph.
type Vertex struct {
	ID       VertexID
	Position geom.Vec3

	// Edge is one representative incident edge, or NoEdge while the
	// vertex is isolated.
	Edge EdgeID
}

// Edge is the central entity of the winged-edge structure. Its two wing
// pairs encode both the radial cyclic order around each endpoint and the
// ordered boundary loop of each adjacent face.
type Edge struct {
	ID EdgeID

	// V1 and V2 are the endpoints, always distinct.
	V1, V2 VertexID

	// F1 and F2 are the face slots. Either may be NoFace (open side).
	// While a face's boundary chain is still open, both slots of its
	// edges reference that same face.
	F1, F2 FaceID

	// WingV1 is keyed to the (V1, F1) side, WingV2 to the (V2, F2) side.
	WingV1, WingV2 Wing
}

// Face is a boundary loop of the graph.
type Face struct {
	ID FaceID

	// Edge is one representative boundary edge, or NoEdge while the face
	// has no boundary yet (fresh from MVSF). The face normal is derived
	// on demand, never stored.
	Edge EdgeID
}

// OtherVertex returns the endpoint opposite v, or NoVertex if v is not an
// endpoint of e.
func (e *Edge) OtherVertex(v VertexID) VertexID {
	switch v {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	}
	return NoVertex
}

// OtherFace returns the face slot opposite f.
func (e *Edge) OtherFace(f FaceID) FaceID {
	if f == e.F1 {
		return e.F2
	}
	return e.F1
}

// HasVertex reports whether v is an endpoint of e.
func (e *Edge) HasVertex(v VertexID) bool {
	return v == e.V1 || v == e.V2
}

// WingAt returns the wing keyed to endpoint v, or nil if v is not an
// endpoint of e.
func (e *Edge) WingAt(v VertexID) *Wing {
	switch v {
	case e.V1:
		return &e.WingV1
	case e.V2:
		return &e.WingV2
	}
	return nil
}

// WingAtFace returns the wing keyed to the slot referencing f, preferring
// the F1 slot when both sides reference the same face (open chains).
// Returns nil if neither slot references f.
func (e *Edge) WingAtFace(f FaceID) *Wing {
	switch f {
	case e.F1:
		return &e.WingV1
	case e.F2:
		return &e.WingV2
	}
	return nil
}

// FaceSlotCount returns the number of populated face slots (0, 1 or 2).
func (e *Edge) FaceSlotCount() int {
	n := 0
	if e.F1 != NoFace {
		n++
	}
	if e.F2 != NoFace {
		n++
	}
	return n
}
