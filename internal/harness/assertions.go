package harness

import (
	"fmt"

	"github.com/jbacus/sketchy/internal/kernel"
	"github.com/jbacus/sketchy/internal/topo"
)

// EvaluateAssertions checks every assertion against the final kernel
// state and the recorded trace, returning one message per violation. An
// empty slice means all assertions held.
func EvaluateAssertions(k *kernel.Kernel, result *Result, assertions []Assertion) []string {
	var violations []string
	for i, a := range assertions {
		if msg := evaluateAssertion(k, result, &a); msg != "" {
			violations = append(violations, fmt.Sprintf("assertions[%d] (%s): %s", i, a.Type, msg))
		}
	}
	return violations
}

func evaluateAssertion(k *kernel.Kernel, result *Result, a *Assertion) string {
	switch a.Type {
	case AssertCounts:
		return assertCounts(k, a)
	case AssertEuler:
		if got := k.EulerCharacteristic(); got != *a.Value {
			return fmt.Sprintf("V - E + F = %d, expected %d", got, *a.Value)
		}
	case AssertValidate:
		if err := k.Validate(); err != nil {
			return fmt.Sprintf("structural scan failed: %v", err)
		}
	case AssertManifold:
		want := true
		if a.Want != nil {
			want = *a.Want
		}
		if got := k.IsManifold(); got != want {
			return fmt.Sprintf("IsManifold = %v, expected %v", got, want)
		}
	case AssertFaceBoundary:
		boundary, err := k.FaceBoundary(topo.FaceID(*a.Face))
		if err != nil {
			return fmt.Sprintf("boundary walk of face %d failed: %v", *a.Face, err)
		}
		ids := make([]int64, len(boundary))
		for i, e := range boundary {
			ids[i] = int64(e)
		}
		return assertEdgeList("boundary", ids, a.Length, a.Loop)
	case AssertIncidentEdges:
		fan, err := k.IncidentEdges(topo.VertexID(*a.Vertex))
		if err != nil {
			return fmt.Sprintf("radial walk at vertex %d failed: %v", *a.Vertex, err)
		}
		ids := make([]int64, len(fan))
		for i, e := range fan {
			ids[i] = int64(e)
		}
		return assertEdgeList("fan", ids, a.Length, a.Fan)
	case AssertTraceCount:
		got := 0
		for _, ev := range result.Trace {
			if ev.Op == a.Op {
				got++
			}
		}
		if got != *a.Count {
			return fmt.Sprintf("op %q appears %d times in the trace, expected %d", a.Op, got, *a.Count)
		}
	}
	return ""
}

func assertCounts(k *kernel.Kernel, a *Assertion) string {
	if a.Vertices != nil && k.VertexCount() != *a.Vertices {
		return fmt.Sprintf("vertex count = %d, expected %d", k.VertexCount(), *a.Vertices)
	}
	if a.Edges != nil && k.EdgeCount() != *a.Edges {
		return fmt.Sprintf("edge count = %d, expected %d", k.EdgeCount(), *a.Edges)
	}
	if a.Faces != nil && k.FaceCount() != *a.Faces {
		return fmt.Sprintf("face count = %d, expected %d", k.FaceCount(), *a.Faces)
	}
	return ""
}

// assertEdgeList checks a walked edge list against an expected length
// and, when given, an expected multiset of edge ids. Walks are compared
// as multisets: the sequence is deterministic but its starting point
// depends on representative-edge bookkeeping, which scenarios should not
// have to track.
func assertEdgeList(what string, got []int64, length *int, expected []int64) string {
	if length != nil && len(got) != *length {
		return fmt.Sprintf("%s has %d edges (%v), expected %d", what, len(got), got, *length)
	}
	if len(expected) == 0 {
		return ""
	}
	if len(got) != len(expected) {
		return fmt.Sprintf("%s = %v, expected the edges %v", what, got, expected)
	}
	counts := make(map[int64]int, len(got))
	for _, id := range got {
		counts[id]++
	}
	for _, id := range expected {
		counts[id]--
		if counts[id] < 0 {
			return fmt.Sprintf("%s = %v, expected the edges %v", what, got, expected)
		}
	}
	return ""
}
