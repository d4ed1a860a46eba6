package kernel

import (
	"sort"

	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/topo"
)

// Kernel is the winged-edge topology kernel: the exclusive owner of all
// vertices, edges and faces, mutated only through the Euler operators.
//
// Lookups return value copies; the arena entities themselves are never
// handed out, so callers cannot bypass the operator set.
type Kernel struct {
	vertices map[topo.VertexID]*topo.Vertex
	edges    map[topo.EdgeID]*topo.Edge
	faces    map[topo.FaceID]*topo.Face

	vertexIDs idCounter
	edgeIDs   idCounter
	faceIDs   idCounter
}

// New creates an empty kernel.
func New() *Kernel {
	return &Kernel{
		vertices: make(map[topo.VertexID]*topo.Vertex),
		edges:    make(map[topo.EdgeID]*topo.Edge),
		faces:    make(map[topo.FaceID]*topo.Face),
	}
}

// createVertex allocates a vertex in the arena. Internal: callers create
// vertices only through MVSF and MEV.
func (k *Kernel) createVertex(pos geom.Vec3) *topo.Vertex {
	v := &topo.Vertex{
		ID:       topo.VertexID(k.vertexIDs.next()),
		Position: pos,
	}
	k.vertices[v.ID] = v
	return v
}

// createEdge allocates an edge between two distinct live vertices.
func (k *Kernel) createEdge(v1, v2 topo.VertexID) (*topo.Edge, error) {
	if v1 == v2 {
		return nil, topo.NewInvalidArgument("edge endpoints must be distinct")
	}
	if _, ok := k.vertices[v1]; !ok {
		return nil, topo.NewInvalidHandle("vertex", int64(v1))
	}
	if _, ok := k.vertices[v2]; !ok {
		return nil, topo.NewInvalidHandle("vertex", int64(v2))
	}
	e := &topo.Edge{
		ID: topo.EdgeID(k.edgeIDs.next()),
		V1: v1,
		V2: v2,
	}
	k.edges[e.ID] = e
	return e, nil
}

// createFace allocates a face with the given representative edge (which
// may be NoEdge for a face whose boundary has not been seeded yet).
func (k *Kernel) createFace(seed topo.EdgeID) *topo.Face {
	f := &topo.Face{
		ID:   topo.FaceID(k.faceIDs.next()),
		Edge: seed,
	}
	k.faces[f.ID] = f
	return f
}

// removeVertex deletes a vertex from the arena. The operator engine is
// responsible for rewiring all references first; the store does not
// cascade-fix them.
func (k *Kernel) removeVertex(id topo.VertexID) error {
	if _, ok := k.vertices[id]; !ok {
		return topo.NewNotFound("vertex", int64(id))
	}
	delete(k.vertices, id)
	return nil
}

// removeEdge deletes an edge from the arena.
func (k *Kernel) removeEdge(id topo.EdgeID) error {
	if _, ok := k.edges[id]; !ok {
		return topo.NewNotFound("edge", int64(id))
	}
	delete(k.edges, id)
	return nil
}

// removeFace deletes a face from the arena.
func (k *Kernel) removeFace(id topo.FaceID) error {
	if _, ok := k.faces[id]; !ok {
		return topo.NewNotFound("face", int64(id))
	}
	delete(k.faces, id)
	return nil
}

// Vertex looks up a vertex by handle, returning a copy.
func (k *Kernel) Vertex(id topo.VertexID) (topo.Vertex, error) {
	v, ok := k.vertices[id]
	if !ok {
		return topo.Vertex{}, topo.NewNotFound("vertex", int64(id))
	}
	return *v, nil
}

// Edge looks up an edge by handle, returning a copy.
func (k *Kernel) Edge(id topo.EdgeID) (topo.Edge, error) {
	e, ok := k.edges[id]
	if !ok {
		return topo.Edge{}, topo.NewNotFound("edge", int64(id))
	}
	return *e, nil
}

// Face looks up a face by handle, returning a copy.
func (k *Kernel) Face(id topo.FaceID) (topo.Face, error) {
	f, ok := k.faces[id]
	if !ok {
		return topo.Face{}, topo.NewNotFound("face", int64(id))
	}
	return *f, nil
}

// VertexCount returns the number of live vertices.
func (k *Kernel) VertexCount() int { return len(k.vertices) }

// EdgeCount returns the number of live edges.
func (k *Kernel) EdgeCount() int { return len(k.edges) }

// FaceCount returns the number of live faces.
func (k *Kernel) FaceCount() int { return len(k.faces) }

// EulerCharacteristic returns V - E + F. For a closed, genus-0,
// singly-connected shell this is 2.
func (k *Kernel) EulerCharacteristic() int {
	return len(k.vertices) - len(k.edges) + len(k.faces)
}

// VertexIDs returns the live vertex handles in ascending order.
// Deterministic iteration order is load-bearing for validation and for
// reproducible traces.
func (k *Kernel) VertexIDs() []topo.VertexID {
	ids := make([]topo.VertexID, 0, len(k.vertices))
	for id := range k.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EdgeIDs returns the live edge handles in ascending order.
func (k *Kernel) EdgeIDs() []topo.EdgeID {
	ids := make([]topo.EdgeID, 0, len(k.edges))
	for id := range k.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FaceIDs returns the live face handles in ascending order.
func (k *Kernel) FaceIDs() []topo.FaceID {
	ids := make([]topo.FaceID, 0, len(k.faces))
	for id := range k.faces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Transform applies a rigid transform to every vertex position. Topology
// is untouched; this is the one mutation outside the operator set, and it
// only writes positions.
func (k *Kernel) Transform(m geom.Mat4) {
	for _, id := range k.VertexIDs() {
		v := k.vertices[id]
		v.Position = m.TransformPoint(v.Position)
	}
}
