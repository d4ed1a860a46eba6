package kernel

import (
	"testing"

	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/topo"
)

func TestIncidentEdgesIsolatedVertex(t *testing.T) {
	k := New()
	v, _ := k.MVSF(geom.Vec3{})
	fan, err := k.IncidentEdges(v)
	if err != nil {
		t.Fatalf("IncidentEdges: %v", err)
	}
	if len(fan) != 0 {
		t.Errorf("isolated vertex fan = %v, want empty", fan)
	}
}

func TestIncidentEdgesBadHandle(t *testing.T) {
	k := New()
	if _, err := k.IncidentEdges(7); !topo.IsInvalidArgument(err) {
		t.Errorf("IncidentEdges(7): got %v, want Invalid-Argument", err)
	}
}

func TestIncidentEdgesSquare(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)

	want := map[topo.VertexID][]topo.EdgeID{
		sq.v[0]: {sq.e[0], sq.e[3]},
		sq.v[1]: {sq.e[0], sq.e[1]},
		sq.v[2]: {sq.e[1], sq.e[2]},
		sq.v[3]: {sq.e[2], sq.e[3]},
	}
	for v, edges := range want {
		fan, err := k.IncidentEdges(v)
		if err != nil {
			t.Fatalf("IncidentEdges(%d): %v", v, err)
		}
		if len(fan) != len(edges) {
			t.Fatalf("fan at %d = %v, want %d edges", v, fan, len(edges))
		}
		members := map[topo.EdgeID]bool{}
		for _, e := range fan {
			members[e] = true
		}
		for _, e := range edges {
			if !members[e] {
				t.Errorf("fan at %d = %v, missing edge %d", v, fan, e)
			}
		}
	}
}

func TestIncidentEdgesAfterDiagonal(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)
	diag, err := k.MEF(sq.v[0], sq.v[2], sq.front)
	if err != nil {
		t.Fatalf("MEF: %v", err)
	}

	for _, v := range []topo.VertexID{sq.v[0], sq.v[2]} {
		fan, err := k.IncidentEdges(v)
		if err != nil {
			t.Fatalf("IncidentEdges(%d): %v", v, err)
		}
		if len(fan) != 3 {
			t.Fatalf("fan at %d = %v, want 3 edges", v, fan)
		}
		found := false
		for _, e := range fan {
			if e == diag {
				found = true
			}
		}
		if !found {
			t.Errorf("fan at %d = %v, missing the diagonal %d", v, fan, diag)
		}
	}
}

func TestIncidentFaces(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)

	faces, err := k.IncidentFaces(sq.v[1])
	if err != nil {
		t.Fatalf("IncidentFaces: %v", err)
	}
	if len(faces) != 2 {
		t.Fatalf("faces at %d = %v, want 2", sq.v[1], faces)
	}

	if _, err := k.MEF(sq.v[0], sq.v[2], sq.front); err != nil {
		t.Fatalf("MEF: %v", err)
	}
	faces, err = k.IncidentFaces(sq.v[0])
	if err != nil {
		t.Fatalf("IncidentFaces: %v", err)
	}
	if len(faces) != 3 {
		t.Errorf("faces at diagonal endpoint = %v, want 3", faces)
	}
	seen := map[topo.FaceID]bool{}
	for _, f := range faces {
		if seen[f] {
			t.Errorf("IncidentFaces repeats face %d: %v", f, faces)
		}
		seen[f] = true
	}
}

func TestFaceBoundaryEmptyFace(t *testing.T) {
	k := New()
	_, f := k.MVSF(geom.Vec3{})
	boundary, err := k.FaceBoundary(f)
	if err != nil {
		t.Fatalf("FaceBoundary: %v", err)
	}
	if len(boundary) != 0 {
		t.Errorf("fresh face boundary = %v, want empty", boundary)
	}
}

func TestFaceBoundaryBadHandle(t *testing.T) {
	k := New()
	if _, err := k.FaceBoundary(3); !topo.IsInvalidArgument(err) {
		t.Errorf("FaceBoundary(3): got %v, want Invalid-Argument", err)
	}
	if _, err := k.FaceVertices(3); !topo.IsInvalidArgument(err) {
		t.Errorf("FaceVertices(3): got %v, want Invalid-Argument", err)
	}
}

func TestFaceVerticesWinding(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)

	verts, err := k.FaceVertices(sq.front)
	if err != nil {
		t.Fatalf("FaceVertices: %v", err)
	}
	if len(verts) != 4 {
		t.Fatalf("face vertices = %v, want 4", verts)
	}

	// Consecutive entries must be joined by an edge of the square.
	adjacent := func(a, b topo.VertexID) bool {
		for _, id := range sq.e {
			e, err := k.Edge(id)
			if err != nil {
				t.Fatalf("Edge(%d): %v", id, err)
			}
			if (e.V1 == a && e.V2 == b) || (e.V1 == b && e.V2 == a) {
				return true
			}
		}
		return false
	}
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		if !adjacent(a, b) {
			t.Errorf("consecutive boundary vertices %d, %d share no edge in %v", a, b, verts)
		}
	}
}

func TestCorruptedRadialWalk(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)

	// Point a wing's fan predecessor at an edge that does not touch the
	// vertex.
	k.edges[sq.e[0]].WingV1.Prev = sq.e[1]

	if _, err := k.IncidentEdges(sq.v[0]); !topo.IsCorrupted(err) {
		t.Errorf("IncidentEdges over damaged fan: got %v, want Corrupted-Topology", err)
	}
	if k.IsManifold() {
		t.Error("IsManifold = true over a damaged fan")
	}
}

func TestCorruptedFaceWalk(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)

	// Make a boundary loop dead-end on itself.
	k.edges[sq.e[0]].WingV1.Next = sq.e[0]

	var broken error
	for _, f := range []topo.FaceID{sq.front, sq.back} {
		if _, err := k.FaceBoundary(f); err != nil {
			broken = err
		}
	}
	if !topo.IsCorrupted(broken) {
		t.Errorf("FaceBoundary over damaged loop: got %v, want Corrupted-Topology", broken)
	}
}
