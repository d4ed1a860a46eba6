package kernel

import (
	"testing"

	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/topo"
)

func TestValidateOperatorStates(t *testing.T) {
	k := New()
	if err := k.Validate(); err != nil {
		t.Fatalf("empty kernel: %v", err)
	}

	k.MVSF(geom.Vec3{})
	if err := k.Validate(); err != nil {
		t.Fatalf("after MVSF: %v", err)
	}

	k2 := New()
	buildChain(t, k2)
	if err := k2.Validate(); err != nil {
		t.Fatalf("open chain: %v", err)
	}

	k3 := New()
	sq := buildSquare(t, k3)
	if _, err := k3.MEF(sq.v[0], sq.v[2], sq.front); err != nil {
		t.Fatalf("MEF: %v", err)
	}
	if err := k3.Validate(); err != nil {
		t.Fatalf("split square: %v", err)
	}
}

func TestValidateDetectsDeadVertexRep(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)
	k.vertices[sq.v[0]].Edge = 999

	err := k.Validate()
	if !topo.IsInconsistent(err) {
		t.Errorf("got %v, want Structural-Inconsistency", err)
	}
}

func TestValidateDetectsForeignVertexRep(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)
	// e[1] joins v[1] and v[2]; it is not incident to v[0].
	k.vertices[sq.v[0]].Edge = sq.e[1]

	err := k.Validate()
	if !topo.IsInconsistent(err) {
		t.Errorf("got %v, want Structural-Inconsistency", err)
	}
}

func TestValidateDetectsDeadEndpoint(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)
	k.edges[sq.e[0]].V2 = 999

	err := k.Validate()
	if !topo.IsInconsistent(err) {
		t.Errorf("got %v, want Structural-Inconsistency", err)
	}
}

func TestValidateDetectsDeadFaceSlot(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)
	k.edges[sq.e[0]].F1 = 999

	err := k.Validate()
	if !topo.IsInconsistent(err) {
		t.Errorf("got %v, want Structural-Inconsistency", err)
	}
}

func TestValidateDetectsForeignFaceRep(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)

	// Grow a second, disconnected sheet and point the first square's
	// front face at one of its edges.
	v, f := k.MVSF(geom.Vec3{X: 9})
	e, err := k.MEV(v, geom.Vec3{X: 10}, f)
	if err != nil {
		t.Fatalf("MEV: %v", err)
	}
	k.faces[sq.front].Edge = e

	verr := k.Validate()
	if !topo.IsInconsistent(verr) {
		t.Errorf("got %v, want Structural-Inconsistency", verr)
	}
}

func TestIsManifoldSquare(t *testing.T) {
	k := New()
	buildSquare(t, k)
	if !k.IsManifold() {
		t.Error("closed square sheet reported non-manifold")
	}
}

func TestIsManifoldIsolatedVertex(t *testing.T) {
	k := New()
	k.MVSF(geom.Vec3{})
	if !k.IsManifold() {
		t.Error("isolated vertex reported non-manifold")
	}
}

func TestIsManifoldBrokenFan(t *testing.T) {
	k := New()
	sq := buildSquare(t, k)
	k.edges[sq.e[0]].WingV1.Prev = sq.e[1]
	if k.IsManifold() {
		t.Error("broken fan reported manifold")
	}
}
