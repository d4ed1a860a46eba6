package kernel

import "github.com/jbacus/sketchy/internal/topo"

// IncidentEdges walks the radial cycle of edges around v, starting from
// its representative edge. The fan follows the Prev pointer of the wing
// keyed to v: the predecessor of an edge in a face loop always shares
// that wing's own endpoint, so the walk rotates face by face around the
// vertex.
//
// The walk is bounded by the current total edge count; a walk that does
// not close within that budget, leaves the arena, or leaves the fan
// reports Corrupted-Topology.
func (k *Kernel) IncidentEdges(v topo.VertexID) ([]topo.EdgeID, error) {
	vert, ok := k.vertices[v]
	if !ok {
		return nil, topo.NewInvalidHandle("vertex", int64(v))
	}
	if vert.Edge == topo.NoEdge {
		return nil, nil
	}

	budget := len(k.edges)
	visited := make(map[topo.EdgeID]bool, 8)
	fan := make([]topo.EdgeID, 0, 8)

	cur := vert.Edge
	for steps := 0; ; steps++ {
		if steps >= budget {
			return nil, topo.NewCorrupted("radial walk exceeded step budget", "vertex", int64(v), steps)
		}
		e, ok := k.edges[cur]
		if !ok {
			return nil, topo.NewCorrupted("radial walk reached a dead edge", "vertex", int64(v), steps)
		}
		w := e.WingAt(v)
		if w == nil {
			return nil, topo.NewCorrupted("radial walk left the vertex fan", "vertex", int64(v), steps)
		}
		visited[cur] = true
		fan = append(fan, cur)

		next := w.Prev
		if next == vert.Edge {
			return fan, nil
		}
		if visited[next] {
			return nil, topo.NewCorrupted("radial walk entered a cycle that misses its start", "vertex", int64(v), steps)
		}
		cur = next
	}
}

// IncidentFaces returns the faces incident to v, derived from the radial
// edge fan: each edge's populated face slots, de-duplicated by
// identifier, in first-seen order.
func (k *Kernel) IncidentFaces(v topo.VertexID) ([]topo.FaceID, error) {
	fan, err := k.IncidentEdges(v)
	if err != nil {
		return nil, err
	}
	seen := make(map[topo.FaceID]bool, len(fan))
	faces := make([]topo.FaceID, 0, len(fan))
	for _, id := range fan {
		e := k.edges[id]
		for _, f := range []topo.FaceID{e.F1, e.F2} {
			if f != topo.NoFace && !seen[f] {
				seen[f] = true
				faces = append(faces, f)
			}
		}
	}
	return faces, nil
}

// FaceBoundary walks f's boundary loop from its representative edge,
// returning one entry per boundary slot in walk order. On a closed loop
// every boundary edge appears exactly once; on an open boundary chain
// the walk runs down one side and back the other, so chain edges appear
// once per side.
//
// A face with no representative edge yet returns an empty boundary.
func (k *Kernel) FaceBoundary(f topo.FaceID) ([]topo.EdgeID, error) {
	face, ok := k.faces[f]
	if !ok {
		return nil, topo.NewInvalidHandle("face", int64(f))
	}
	cycle, err := k.faceSlotCycle(face)
	if err != nil {
		return nil, err
	}
	boundary := make([]topo.EdgeID, 0, len(cycle))
	for _, s := range cycle {
		boundary = append(boundary, s.edge.ID)
	}
	return boundary, nil
}

// FaceVertices maps each boundary slot (in walk order) to the endpoint
// the slot leaves from, producing a consistently wound polygon suitable
// for normal and area computation.
func (k *Kernel) FaceVertices(f topo.FaceID) ([]topo.VertexID, error) {
	face, ok := k.faces[f]
	if !ok {
		return nil, topo.NewInvalidHandle("face", int64(f))
	}
	cycle, err := k.faceSlotCycle(face)
	if err != nil {
		return nil, err
	}
	verts := make([]topo.VertexID, 0, len(cycle))
	for _, s := range cycle {
		verts = append(verts, s.tail())
	}
	return verts, nil
}
