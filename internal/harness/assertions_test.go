package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbacus/sketchy/internal/kernel"
)

func builtSquare(t *testing.T) (*kernel.Kernel, *Result) {
	t.Helper()
	scenario := &Scenario{
		Name:        "fixture",
		Description: "square fixture",
		Steps:       squareSteps(),
		Assertions:  []Assertion{{Type: AssertValidate}},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)
	return result.Kernel, result
}

func TestAssertionsHoldOnSquare(t *testing.T) {
	k, result := builtSquare(t)

	violations := EvaluateAssertions(k, result, []Assertion{
		{Type: AssertCounts, Vertices: intp(4), Edges: intp(4), Faces: intp(2)},
		{Type: AssertEuler, Value: intp(2)},
		{Type: AssertValidate},
		{Type: AssertManifold},
		{Type: AssertFaceBoundary, Face: id64p(1), Length: intp(4), Loop: []int64{1, 2, 3, 4}},
		{Type: AssertIncidentEdges, Vertex: id64p(1), Length: intp(2), Fan: []int64{1, 4}},
		{Type: AssertTraceCount, Op: OpMEV, Count: intp(3)},
	})
	assert.Empty(t, violations)
}

func TestCountsViolation(t *testing.T) {
	k, result := builtSquare(t)
	violations := EvaluateAssertions(k, result, []Assertion{
		{Type: AssertCounts, Vertices: intp(5)},
	})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "vertex count")
}

func TestEulerViolation(t *testing.T) {
	k, result := builtSquare(t)
	violations := EvaluateAssertions(k, result, []Assertion{
		{Type: AssertEuler, Value: intp(0)},
	})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "V - E + F")
}

func TestFaceBoundaryViolations(t *testing.T) {
	k, result := builtSquare(t)

	violations := EvaluateAssertions(k, result, []Assertion{
		{Type: AssertFaceBoundary, Face: id64p(1), Length: intp(3)},
	})
	require.Len(t, violations, 1)

	// Right length, wrong edge multiset.
	violations = EvaluateAssertions(k, result, []Assertion{
		{Type: AssertFaceBoundary, Face: id64p(1), Loop: []int64{1, 2, 3, 9}},
	})
	require.Len(t, violations, 1)

	// Dead face handle reports the walk failure.
	violations = EvaluateAssertions(k, result, []Assertion{
		{Type: AssertFaceBoundary, Face: id64p(42), Length: intp(4)},
	})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "boundary walk")
}

func TestIncidentEdgesViolation(t *testing.T) {
	k, result := builtSquare(t)
	violations := EvaluateAssertions(k, result, []Assertion{
		{Type: AssertIncidentEdges, Vertex: id64p(1), Fan: []int64{1, 2}},
	})
	require.Len(t, violations, 1)
}

func TestTraceCountViolation(t *testing.T) {
	k, result := builtSquare(t)
	violations := EvaluateAssertions(k, result, []Assertion{
		{Type: AssertTraceCount, Op: OpKEF, Count: intp(1)},
	})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "kef")
}

func TestViolationsAreIndexed(t *testing.T) {
	k, result := builtSquare(t)
	violations := EvaluateAssertions(k, result, []Assertion{
		{Type: AssertValidate},
		{Type: AssertCounts, Faces: intp(7)},
	})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "assertions[1]")
}
