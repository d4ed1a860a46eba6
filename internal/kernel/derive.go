package kernel

import (
	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/topo"
)

// FaceNormal computes f's outward unit normal with Newell's method,
// which stays robust on slightly non-planar polygons. Degenerate faces
// (fewer than 3 boundary vertices) get the +Z default.
func (k *Kernel) FaceNormal(f topo.FaceID) (geom.Vec3, error) {
	verts, err := k.FaceVertices(f)
	if err != nil {
		return geom.Vec3{}, err
	}
	if len(verts) < 3 {
		return geom.Vec3{Z: 1}, nil
	}

	var n geom.Vec3
	for i := range verts {
		a := k.vertices[verts[i]].Position
		b := k.vertices[verts[(i+1)%len(verts)]].Position
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Normalized(), nil
}

// FaceArea computes f's area by fan triangulation from its first
// boundary vertex. Degenerate faces have zero area.
func (k *Kernel) FaceArea(f topo.FaceID) (float64, error) {
	verts, err := k.FaceVertices(f)
	if err != nil {
		return 0, err
	}
	if len(verts) < 3 {
		return 0, nil
	}

	total := 0.0
	v0 := k.vertices[verts[0]].Position
	for i := 1; i < len(verts)-1; i++ {
		e1 := k.vertices[verts[i]].Position.Sub(v0)
		e2 := k.vertices[verts[i+1]].Position.Sub(v0)
		total += e1.Cross(e2).Length() * 0.5
	}
	return total, nil
}

// EdgeLength returns the distance between e's endpoints.
func (k *Kernel) EdgeLength(e topo.EdgeID) (float64, error) {
	edge, ok := k.edges[e]
	if !ok {
		return 0, topo.NewNotFound("edge", int64(e))
	}
	p1 := k.vertices[edge.V1].Position
	p2 := k.vertices[edge.V2].Position
	return p2.Sub(p1).Length(), nil
}
