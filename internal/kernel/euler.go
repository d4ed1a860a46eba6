package kernel

import (
	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/topo"
)

// MVSF ("make vertex, solid, face") seeds a new, otherwise empty shell:
// one isolated vertex at pos and one face with no boundary yet.
// Effect: V+1, F+1.
func (k *Kernel) MVSF(pos geom.Vec3) (topo.VertexID, topo.FaceID) {
	v := k.createVertex(pos)
	f := k.createFace(topo.NoEdge)
	return v.ID, f.ID
}

// MEV ("make edge, vertex") creates a new vertex at pos and a new edge
// from an existing vertex to it. Both face slots of the new edge
// reference on: the edge has not closed a loop yet, so it is open on
// both conceptual sides. Effect: V+1, E+1.
//
// If from is isolated the new edge becomes a self-referencing single-edge
// cycle, seeding the face's boundary walk. Otherwise the new edge's
// there-and-back detour is spliced into the face's boundary slot cycle
// immediately after from's representative edge in the radial order.
func (k *Kernel) MEV(from topo.VertexID, pos geom.Vec3, on topo.FaceID) (topo.EdgeID, error) {
	fv, ok := k.vertices[from]
	if !ok {
		return topo.NoEdge, topo.NewInvalidHandle("vertex", int64(from))
	}
	face, ok := k.faces[on]
	if !ok {
		return topo.NoEdge, topo.NewInvalidHandle("face", int64(on))
	}

	// Locate the splice point before mutating anything.
	var cycle []slot
	insertAt := -1
	if fv.Edge != topo.NoEdge {
		var err error
		cycle, err = k.faceSlotCycle(face)
		if err != nil {
			return topo.NoEdge, err
		}
		insertAt = spliceIndex(cycle, from, fv.Edge)
	}

	nv := k.createVertex(pos)
	ne, err := k.createEdge(from, nv.ID)
	if err != nil {
		// Both endpoints were just verified live and distinct.
		return topo.NoEdge, err
	}
	ne.F1, ne.F2 = on, on
	nv.Edge = ne.ID
	if face.Edge == topo.NoEdge {
		face.Edge = ne.ID
	}

	if fv.Edge == topo.NoEdge || insertAt < 0 {
		// Isolated vertex (or a vertex with no presence on this face's
		// boundary): the edge cycles to itself on both sides.
		if fv.Edge == topo.NoEdge {
			fv.Edge = ne.ID
		}
		ne.WingV1 = topo.Wing{Prev: ne.ID, Next: ne.ID}
		ne.WingV2 = topo.Wing{Prev: ne.ID, Next: ne.ID}
		return ne.ID, nil
	}

	// Insert the detour (out to the new vertex and straight back) into
	// the boundary slot cycle at the splice point.
	detour := []slot{{edge: ne, v1Side: true}, {edge: ne, v1Side: false}}
	spliced := make([]slot, 0, len(cycle)+2)
	spliced = append(spliced, cycle[:insertAt]...)
	spliced = append(spliced, detour...)
	spliced = append(spliced, cycle[insertAt:]...)
	rewireCycle(spliced, on)
	return ne.ID, nil
}

// spliceIndex returns the cycle index before which a detour leaving from
// should be inserted: the first slot leaving from whose predecessor is
// the vertex's representative edge, falling back to the first slot
// leaving from at all. Returns -1 if from does not appear on the cycle.
func spliceIndex(cycle []slot, from topo.VertexID, rep topo.EdgeID) int {
	n := len(cycle)
	fallback := -1
	for i, s := range cycle {
		if s.tail() != from {
			continue
		}
		if cycle[(i+n-1)%n].edge.ID == rep {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

// MEF ("make edge, face") closes a loop from v1 to v2 across face f,
// splitting f into two: f keeps the loop through the new edge's (V1, F1)
// side, a new face takes the other loop, and every boundary slot on the
// new side is reassigned. Effect: E+1, F+1.
//
// Both vertices must lie on f's boundary. Fails with Invalid-Argument on
// a degenerate or unresolved input, before any mutation.
func (k *Kernel) MEF(v1, v2 topo.VertexID, f topo.FaceID) (topo.EdgeID, error) {
	if v1 == v2 {
		return topo.NoEdge, topo.NewInvalidArgument("MEF endpoints must be distinct")
	}
	if _, ok := k.vertices[v1]; !ok {
		return topo.NoEdge, topo.NewInvalidHandle("vertex", int64(v1))
	}
	if _, ok := k.vertices[v2]; !ok {
		return topo.NoEdge, topo.NewInvalidHandle("vertex", int64(v2))
	}
	face, ok := k.faces[f]
	if !ok {
		return topo.NoEdge, topo.NewInvalidHandle("face", int64(f))
	}

	cycle, err := k.faceSlotCycle(face)
	if err != nil {
		return topo.NoEdge, err
	}
	if len(cycle) == 0 {
		return topo.NoEdge, topo.NewInvalidArgument("MEF face has no boundary chain to split")
	}

	// Rotate the cycle to start where it leaves v2, then cut it where it
	// arrives at v1. The two arcs become the two resulting loops.
	start := -1
	for i, s := range cycle {
		if s.tail() == v2 {
			start = i
			break
		}
	}
	if start < 0 {
		return topo.NoEdge, topo.NewInvalidHandle("vertex", int64(v2))
	}
	n := len(cycle)
	rot := make([]slot, 0, n)
	for i := 0; i < n; i++ {
		rot = append(rot, cycle[(start+i)%n])
	}
	cut := -1
	for i, s := range rot {
		if s.head() == v1 {
			cut = i
			break
		}
	}
	if cut < 0 {
		return topo.NoEdge, topo.NewInvalidHandle("vertex", int64(v1))
	}

	ne, err := k.createEdge(v1, v2)
	if err != nil {
		return topo.NoEdge, err
	}
	nf := k.createFace(ne.ID)
	ne.F1 = f
	ne.F2 = nf.ID

	arcA := rot[:cut+1] // v2 -> ... -> v1
	arcB := rot[cut+1:] // v1 -> ... -> v2, possibly empty

	loopA := append([]slot{{edge: ne, v1Side: true}}, arcA...)
	loopB := append([]slot{{edge: ne, v1Side: false}}, arcB...)
	rewireCycle(loopA, f)
	rewireCycle(loopB, nf.ID)
	face.Edge = ne.ID

	return ne.ID, nil
}

// KEF ("kill edge, face") is the inverse of MEF.
//
// If both face slots of the edge are populated with distinct faces, the
// two are merged: the F1 face survives, the F2 face is deleted, every
// slot referencing it is rewired to the survivor, and the survivor is
// returned. Effect: E-1, F-1.
//
// If exactly one slot is populated (a boundary edge), the edge is
// removed together with its single adjacent face: slots on other edges
// referencing that face are cleared, and the now-deleted face's handle
// is returned.
//
// An edge whose slots reference the same face on both sides (an open
// chain spike) is rejected: there is neither a second face to merge nor
// an open side to terminate.
func (k *Kernel) KEF(id topo.EdgeID) (topo.FaceID, error) {
	e, ok := k.edges[id]
	if !ok {
		return topo.NoFace, topo.NewInvalidHandle("edge", int64(id))
	}
	switch {
	case e.F1 != topo.NoFace && e.F2 != topo.NoFace && e.F1 != e.F2:
		return k.kefMerge(e)
	case e.FaceSlotCount() == 1:
		return k.kefBoundary(e)
	case e.F1 == e.F2 && e.F1 != topo.NoFace:
		return topo.NoFace, topo.NewInvalidArgument("KEF edge does not separate two distinct faces")
	default:
		return topo.NoFace, topo.NewInvalidArgument("KEF edge borders no face")
	}
}

// kefMerge removes e and merges its two adjacent faces. The two boundary
// slot cycles, minus the killed edge's slots, concatenate back into the
// single cycle that existed before the splitting MEF.
func (k *Kernel) kefMerge(e *topo.Edge) (topo.FaceID, error) {
	survivor, ok := k.faces[e.F1]
	if !ok {
		return topo.NoFace, topo.NewInconsistent("edge references a dead face", "face", int64(e.F1))
	}
	victim, ok := k.faces[e.F2]
	if !ok {
		return topo.NoFace, topo.NewInconsistent("edge references a dead face", "face", int64(e.F2))
	}

	cycleA, err := k.faceSlotCycle(survivor)
	if err != nil {
		return topo.NoFace, err
	}
	cycleB, err := k.faceSlotCycle(victim)
	if err != nil {
		return topo.NoFace, err
	}

	// arcA runs from e's head on the survivor loop around to its tail;
	// arcB covers the complementary span on the victim loop.
	arcA := dropEdgeSlots(cycleA, e)
	arcB := dropEdgeSlots(cycleB, e)
	merged := append(arcA, arcB...)

	if err := k.removeEdge(e.ID); err != nil {
		return topo.NoFace, err
	}
	if err := k.removeFace(victim.ID); err != nil {
		return topo.NoFace, err
	}

	if len(merged) > 0 {
		rewireCycle(merged, survivor.ID)
		survivor.Edge = merged[0].edge.ID
	} else {
		survivor.Edge = topo.NoEdge
	}
	k.fixVertexRep(e.V1, e.ID)
	k.fixVertexRep(e.V2, e.ID)

	return survivor.ID, nil
}

// kefBoundary removes a boundary edge together with its lone face. Other
// edges referencing the killed face get that slot cleared; wing cycles
// through the killed edge are patched around it.
func (k *Kernel) kefBoundary(e *topo.Edge) (topo.FaceID, error) {
	victimID := e.F1
	if victimID == topo.NoFace {
		victimID = e.F2
	}
	if _, ok := k.faces[victimID]; !ok {
		return topo.NoFace, topo.NewInconsistent("edge references a dead face", "face", int64(victimID))
	}

	k.bypassEdge(e)
	for _, id := range k.EdgeIDs() {
		o := k.edges[id]
		if o == e {
			continue
		}
		if o.F1 == victimID {
			o.F1 = topo.NoFace
		}
		if o.F2 == victimID {
			o.F2 = topo.NoFace
		}
	}

	if err := k.removeEdge(e.ID); err != nil {
		return topo.NoFace, err
	}
	if err := k.removeFace(victimID); err != nil {
		return topo.NoFace, err
	}
	k.fixVertexRep(e.V1, e.ID)
	k.fixVertexRep(e.V2, e.ID)

	return victimID, nil
}

// bypassEdge patches every wing referencing e to skip past it. The slot
// continuity rule (the slot entered after s starts at s's head vertex)
// picks which of e's two slots a referencing cycle runs through, and the
// patch follows through both of e's slots when the cycle takes the
// there-and-back detour.
func (k *Kernel) bypassEdge(e *topo.Edge) {
	for _, id := range k.EdgeIDs() {
		o := k.edges[id]
		if o == e {
			continue
		}
		for _, side := range []bool{true, false} {
			s := slot{edge: o, v1Side: side}
			w := s.wing()
			if w.Next == e.ID {
				w.Next = followForward(e, s.head())
			}
			if w.Prev == e.ID {
				w.Prev = followBackward(e, s.tail())
			}
		}
	}
}

// followForward resolves where a cycle continues after entering e at
// vertex at, skipping e's detour if the cycle comes straight back.
func followForward(e *topo.Edge, at topo.VertexID) topo.EdgeID {
	entry := slot{edge: e, v1Side: e.V1 == at}
	next := entry.wing().Next
	if next != e.ID {
		return next
	}
	other := slot{edge: e, v1Side: !entry.v1Side}
	return other.wing().Next
}

// followBackward resolves where a cycle continues before leaving e at
// vertex at.
func followBackward(e *topo.Edge, at topo.VertexID) topo.EdgeID {
	entry := slot{edge: e, v1Side: e.V2 == at}
	prev := entry.wing().Prev
	if prev != e.ID {
		return prev
	}
	other := slot{edge: e, v1Side: !entry.v1Side}
	return other.wing().Prev
}

// fixVertexRep reassigns a vertex's representative edge when it pointed
// at a killed edge: the lowest-ID live incident edge, or NoEdge if the
// vertex is now isolated.
func (k *Kernel) fixVertexRep(v topo.VertexID, killed topo.EdgeID) {
	vert, ok := k.vertices[v]
	if !ok || vert.Edge != killed {
		return
	}
	for _, id := range k.EdgeIDs() {
		if e := k.edges[id]; e.HasVertex(v) {
			vert.Edge = e.ID
			return
		}
	}
	vert.Edge = topo.NoEdge
}

// KFMRH ("kill face, make ring hole") removes an entirely interior face
// representing a hole shell: every boundary slot referencing hole is
// reassigned to outer, and hole is deleted. No vertex or edge counts
// change, which is what lets through-holes carry non-zero genus.
func (k *Kernel) KFMRH(hole, outer topo.FaceID) error {
	if hole == outer {
		return topo.NewInvalidArgument("KFMRH hole and outer face must be distinct")
	}
	hf, ok := k.faces[hole]
	if !ok {
		return topo.NewInvalidHandle("face", int64(hole))
	}
	of, ok := k.faces[outer]
	if !ok {
		return topo.NewInvalidHandle("face", int64(outer))
	}

	for _, id := range k.EdgeIDs() {
		e := k.edges[id]
		if e.F1 == hole {
			e.F1 = outer
		}
		if e.F2 == hole {
			e.F2 = outer
		}
	}
	if of.Edge == topo.NoEdge && hf.Edge != topo.NoEdge {
		of.Edge = hf.Edge
	}
	return k.removeFace(hole)
}
