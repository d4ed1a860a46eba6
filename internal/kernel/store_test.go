package kernel

import (
	"math"
	"sort"
	"testing"

	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/topo"
)

func TestLookupsReportNotFound(t *testing.T) {
	k := New()
	if _, err := k.Vertex(1); !topo.IsNotFound(err) {
		t.Errorf("Vertex(1): got %v, want Not-Found", err)
	}
	if _, err := k.Edge(1); !topo.IsNotFound(err) {
		t.Errorf("Edge(1): got %v, want Not-Found", err)
	}
	if _, err := k.Face(1); !topo.IsNotFound(err) {
		t.Errorf("Face(1): got %v, want Not-Found", err)
	}
}

func TestLookupsReturnCopies(t *testing.T) {
	k := New()
	v, _ := k.MVSF(geom.Vec3{X: 1})

	vert, err := k.Vertex(v)
	if err != nil {
		t.Fatalf("Vertex: %v", err)
	}
	vert.Position.X = 99

	again, err := k.Vertex(v)
	if err != nil {
		t.Fatalf("Vertex: %v", err)
	}
	if again.Position.X != 1 {
		t.Errorf("mutating a returned vertex leaked into the store: %v", again.Position)
	}
}

func TestIDListsAreSorted(t *testing.T) {
	k := New()
	buildSquare(t, k)

	vids := k.VertexIDs()
	if !sort.SliceIsSorted(vids, func(i, j int) bool { return vids[i] < vids[j] }) {
		t.Errorf("VertexIDs not ascending: %v", vids)
	}
	eids := k.EdgeIDs()
	if !sort.SliceIsSorted(eids, func(i, j int) bool { return eids[i] < eids[j] }) {
		t.Errorf("EdgeIDs not ascending: %v", eids)
	}
	fids := k.FaceIDs()
	if !sort.SliceIsSorted(fids, func(i, j int) bool { return fids[i] < fids[j] }) {
		t.Errorf("FaceIDs not ascending: %v", fids)
	}
	if len(vids) != 4 || len(eids) != 4 || len(fids) != 2 {
		t.Errorf("id list lengths = %d/%d/%d, want 4/4/2", len(vids), len(eids), len(fids))
	}
}

func TestTransformTranslatesPositions(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)

	before := map[topo.VertexID]geom.Vec3{}
	for _, id := range k.VertexIDs() {
		v, err := k.Vertex(id)
		if err != nil {
			t.Fatalf("Vertex(%d): %v", id, err)
		}
		before[id] = v.Position
	}

	k.Transform(geom.Translation(10, -2, 3))

	for _, id := range k.VertexIDs() {
		v, err := k.Vertex(id)
		if err != nil {
			t.Fatalf("Vertex(%d): %v", id, err)
		}
		want := before[id].Add(geom.Vec3{X: 10, Y: -2, Z: 3})
		if v.Position.Sub(want).Length() > 1e-9 {
			t.Errorf("vertex %d position = %v, want %v", id, v.Position, want)
		}
	}

	// Topology is untouched by a rigid transform.
	checkCounts(t, k, 4, 4, 2)
	if err := k.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if _, err := k.FaceBoundary(sq.front); err != nil {
		t.Fatalf("FaceBoundary after transform: %v", err)
	}
}

func TestTransformRotation(t *testing.T) {
	k := New()
	v, _ := k.MVSF(geom.Vec3{X: 1})

	// Quarter turn about Z carries +X onto +Y.
	k.Transform(geom.Rotation(geom.Vec3{Z: 1}, math.Pi/2))

	vert, err := k.Vertex(v)
	if err != nil {
		t.Fatalf("Vertex: %v", err)
	}
	want := geom.Vec3{Y: 1}
	if vert.Position.Sub(want).Length() > 1e-9 {
		t.Errorf("rotated position = %v, want %v", vert.Position, want)
	}
}
