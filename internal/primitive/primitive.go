// Package primitive builds canned shapes by composing the public Euler
// operator API. It is a convenience layer outside the kernel's own
// contract: nothing here touches adjacency data directly.
package primitive

import (
	"fmt"

	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/kernel"
	"github.com/jbacus/sketchy/internal/topo"
)

// Plane builds a single rectangular sheet centered on the origin in the
// XY plane: V=4, E=4, F=2 (the front and back of the open quad).
func Plane(width, height float64) (*kernel.Kernel, error) {
	if width <= 0 || height <= 0 {
		return nil, topo.NewInvalidArgument("plane dimensions must be positive")
	}
	hw, hh := width/2, height/2

	k := kernel.New()
	corners := []geom.Vec3{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	if _, err := loop(k, corners); err != nil {
		return nil, fmt.Errorf("build plane: %w", err)
	}
	return k, nil
}

// Cube builds a closed axis-aligned box of the given edge length
// centered on the origin: V=8, E=12, F=6.
//
// Construction follows the classic Euler recipe: seed the bottom square,
// then raise a vertical spike from each bottom corner and close each
// side face with an MEF; the final MEF caps the top.
func Cube(size float64) (*kernel.Kernel, error) {
	if size <= 0 {
		return nil, topo.NewInvalidArgument("cube size must be positive")
	}
	h := size / 2

	k := kernel.New()
	bottom := []geom.Vec3{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
	}
	lp, err := loop(k, bottom)
	if err != nil {
		return nil, fmt.Errorf("build cube: %w", err)
	}

	// lp.Face still carries everything that is not the bottom; raise the
	// four verticals and carve one side quad at a time.
	top := make([]topo.VertexID, 4)
	for i, bv := range lp.Vertices {
		p := bottom[i]
		p.Z = h
		e, err := k.MEV(bv, p, lp.Face)
		if err != nil {
			return nil, fmt.Errorf("build cube: %w", err)
		}
		edge, err := k.Edge(e)
		if err != nil {
			return nil, fmt.Errorf("build cube: %w", err)
		}
		top[i] = edge.V2
		if i > 0 {
			if _, err := k.MEF(top[i-1], top[i], lp.Face); err != nil {
				return nil, fmt.Errorf("build cube: %w", err)
			}
		}
	}
	// Close the last side; what remains of the working face is the top.
	if _, err := k.MEF(top[3], top[0], lp.Face); err != nil {
		return nil, fmt.Errorf("build cube: %w", err)
	}
	return k, nil
}

// Loop is the result of building one closed polygon loop.
type Loop struct {
	// Vertices in construction order.
	Vertices []topo.VertexID

	// Face is the working face the loop was built on (the side that
	// keeps growing when the loop seeds a larger shape); Back is the
	// face split off by the closing MEF.
	Face, Back topo.FaceID
}

// loop seeds a kernel (or shell) with one closed polygon: MVSF for the
// first vertex, MEV for each subsequent one, one MEF to close.
func loop(k *kernel.Kernel, points []geom.Vec3) (*Loop, error) {
	if len(points) < 3 {
		return nil, topo.NewInvalidArgument("a face loop needs at least 3 vertices")
	}

	first, face := k.MVSF(points[0])
	verts := make([]topo.VertexID, 1, len(points))
	verts[0] = first
	for _, p := range points[1:] {
		e, err := k.MEV(verts[len(verts)-1], p, face)
		if err != nil {
			return nil, err
		}
		edge, err := k.Edge(e)
		if err != nil {
			return nil, err
		}
		verts = append(verts, edge.V2)
	}
	closing, err := k.MEF(verts[len(verts)-1], first, face)
	if err != nil {
		return nil, err
	}
	ce, err := k.Edge(closing)
	if err != nil {
		return nil, err
	}
	back := ce.F2

	return &Loop{Vertices: verts, Face: face, Back: back}, nil
}
