package kernel

import "github.com/jbacus/sketchy/internal/topo"

// slot is one directed side of an edge: the v1Side traverses V1 -> V2 and
// is keyed to the F1 face slot and the WingV1 pair; the other side
// traverses V2 -> V1 and is keyed to F2/WingV2.
//
// A face's boundary is a cyclic sequence of slots chained head-to-tail.
// For a closed loop each boundary edge contributes exactly one slot; for
// an open chain an edge contributes both (down one side, back the other).
type slot struct {
	edge   *topo.Edge
	v1Side bool
}

// tail returns the vertex this slot leaves from.
func (s slot) tail() topo.VertexID {
	if s.v1Side {
		return s.edge.V1
	}
	return s.edge.V2
}

// head returns the vertex this slot arrives at.
func (s slot) head() topo.VertexID {
	if s.v1Side {
		return s.edge.V2
	}
	return s.edge.V1
}

// wing returns the wing pair keyed to this slot.
func (s slot) wing() *topo.Wing {
	if s.v1Side {
		return &s.edge.WingV1
	}
	return &s.edge.WingV2
}

// face returns the face slot keyed to this slot.
func (s slot) face() topo.FaceID {
	if s.v1Side {
		return s.edge.F1
	}
	return s.edge.F2
}

// setFace reassigns the face slot keyed to this slot.
func (s slot) setFace(f topo.FaceID) {
	if s.v1Side {
		s.edge.F1 = f
	} else {
		s.edge.F2 = f
	}
}

func (s slot) same(o slot) bool {
	return s.edge == o.edge && s.v1Side == o.v1Side
}

// slotKey is a comparable identity for visited-set bookkeeping.
type slotKey struct {
	edge   topo.EdgeID
	v1Side bool
}

func (s slot) key() slotKey {
	return slotKey{edge: s.edge.ID, v1Side: s.v1Side}
}

// slotOn returns e's slot keyed to face f, preferring the V1 side when
// both sides reference f (open chains). ok is false if neither does.
func slotOn(e *topo.Edge, f topo.FaceID) (slot, bool) {
	if e.F1 == f {
		return slot{edge: e, v1Side: true}, true
	}
	if e.F2 == f {
		return slot{edge: e, v1Side: false}, true
	}
	return slot{}, false
}

// nextSlot advances one step along a face boundary: follow the current
// slot's Next wing, then pick the next edge's side that references f and
// continues from the current head vertex.
func (k *Kernel) nextSlot(cur slot, f topo.FaceID) (slot, bool) {
	e, ok := k.edges[cur.wing().Next]
	if !ok {
		return slot{}, false
	}
	at := cur.head()
	if e.F1 == f && e.V1 == at {
		return slot{edge: e, v1Side: true}, true
	}
	if e.F2 == f && e.V2 == at {
		return slot{edge: e, v1Side: false}, true
	}
	return slot{}, false
}

// faceSlotCycle walks face f's complete boundary slot cycle starting at
// its representative edge. An empty cycle (face with no boundary yet) is
// not an error. A walk that leaves the face, leaves the arena, or fails
// to close within twice the edge count reports CORRUPTED_TOPOLOGY.
func (k *Kernel) faceSlotCycle(f *topo.Face) ([]slot, error) {
	if f.Edge == topo.NoEdge {
		return nil, nil
	}
	rep, ok := k.edges[f.Edge]
	if !ok {
		return nil, topo.NewCorrupted("face representative edge is not live", "face", int64(f.ID), 0)
	}
	start, ok := slotOn(rep, f.ID)
	if !ok {
		return nil, topo.NewCorrupted("face representative edge does not reference the face", "face", int64(f.ID), 0)
	}

	budget := 2 * len(k.edges)
	visited := make(map[slotKey]bool, budget)
	cycle := make([]slot, 0, 8)

	cur := start
	for steps := 0; ; steps++ {
		if steps > budget {
			return nil, topo.NewCorrupted("face boundary walk exceeded step budget", "face", int64(f.ID), steps)
		}
		if visited[cur.key()] {
			return nil, topo.NewCorrupted("face boundary walk entered a cycle that misses its start", "face", int64(f.ID), steps)
		}
		visited[cur.key()] = true
		cycle = append(cycle, cur)

		next, ok := k.nextSlot(cur, f.ID)
		if !ok {
			return nil, topo.NewCorrupted("face boundary walk left the face", "face", int64(f.ID), steps)
		}
		if next.same(start) {
			return cycle, nil
		}
		cur = next
	}
}

// rewireCycle writes the wing pointers of every slot in the cycle so that
// consecutive slots chain, and stamps each slot's face reference with f.
// A single-slot cycle wires to itself.
func rewireCycle(cycle []slot, f topo.FaceID) {
	n := len(cycle)
	for i, s := range cycle {
		prev := cycle[(i+n-1)%n]
		next := cycle[(i+1)%n]
		w := s.wing()
		w.Prev = prev.edge.ID
		w.Next = next.edge.ID
		s.setFace(f)
	}
}

// dropEdgeSlots returns cycle rotated to begin just after the first slot
// belonging to e, with every slot of e removed. The returned arc runs
// from e's head on that cycle around to e's tail.
func dropEdgeSlots(cycle []slot, e *topo.Edge) []slot {
	cut := -1
	for i, s := range cycle {
		if s.edge == e {
			cut = i
			break
		}
	}
	if cut < 0 {
		return cycle
	}
	arc := make([]slot, 0, len(cycle)-1)
	for i := 1; i < len(cycle); i++ {
		s := cycle[(cut+i)%len(cycle)]
		if s.edge == e {
			continue
		}
		arc = append(arc, s)
	}
	return arc
}
