package kernel

import "github.com/jbacus/sketchy/internal/topo"

// Validate performs a total, deterministic structural scan of the store
// in ascending identifier order and reports the first cross-reference
// that does not round-trip as a Structural-Inconsistency error.
//
// A kernel state reached purely through the Euler operators always
// validates; a failure here means adjacency data was mutated outside the
// operator set.
func (k *Kernel) Validate() error {
	for _, id := range k.VertexIDs() {
		v := k.vertices[id]
		if v.Edge == topo.NoEdge {
			continue
		}
		e, ok := k.edges[v.Edge]
		if !ok {
			return topo.NewInconsistent("vertex representative edge is not live", "vertex", int64(id))
		}
		if !e.HasVertex(id) {
			return topo.NewInconsistent("vertex representative edge does not list the vertex as an endpoint", "vertex", int64(id))
		}
	}

	for _, id := range k.EdgeIDs() {
		e := k.edges[id]
		if e.V1 == e.V2 {
			return topo.NewInconsistent("edge endpoints are not distinct", "edge", int64(id))
		}
		if _, ok := k.vertices[e.V1]; !ok {
			return topo.NewInconsistent("edge endpoint v1 is not live", "edge", int64(id))
		}
		if _, ok := k.vertices[e.V2]; !ok {
			return topo.NewInconsistent("edge endpoint v2 is not live", "edge", int64(id))
		}
		if e.F1 != topo.NoFace {
			if _, ok := k.faces[e.F1]; !ok {
				return topo.NewInconsistent("edge face slot f1 is not live", "edge", int64(id))
			}
		}
		if e.F2 != topo.NoFace {
			if _, ok := k.faces[e.F2]; !ok {
				return topo.NewInconsistent("edge face slot f2 is not live", "edge", int64(id))
			}
		}
	}

	for _, id := range k.FaceIDs() {
		f := k.faces[id]
		if f.Edge == topo.NoEdge {
			// Fresh from MVSF: no boundary yet.
			continue
		}
		e, ok := k.edges[f.Edge]
		if !ok {
			return topo.NewInconsistent("face representative edge is not live", "face", int64(id))
		}
		if e.F1 != id && e.F2 != id {
			return topo.NewInconsistent("face representative edge does not reference the face", "face", int64(id))
		}
	}

	return nil
}

// IsManifold reports whether the structure is a 2-manifold: every edge
// borders at most two faces, and every vertex with a representative edge
// has a radial fan that closes back on itself. A fan that fails to close
// indicates a non-manifold configuration and yields false rather than an
// error.
func (k *Kernel) IsManifold() bool {
	for _, id := range k.EdgeIDs() {
		if k.edges[id].FaceSlotCount() > 2 {
			return false
		}
	}
	for _, id := range k.VertexIDs() {
		if k.vertices[id].Edge == topo.NoEdge {
			continue
		}
		if _, err := k.IncidentEdges(id); err != nil {
			return false
		}
	}
	return true
}
