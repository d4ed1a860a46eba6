package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbacus/sketchy/internal/testutil"
)

func squareSteps() []Step {
	return []Step{
		{Op: OpMVSF, Args: map[string]any{"position": []any{0, 0, 0}}},
		{Op: OpMEV, Args: map[string]any{"vertex": 1, "position": []any{1, 0, 0}, "face": 1}},
		{Op: OpMEV, Args: map[string]any{"vertex": 2, "position": []any{1, 1, 0}, "face": 1}},
		{Op: OpMEV, Args: map[string]any{"vertex": 3, "position": []any{0, 1, 0}, "face": 1}},
		{Op: OpMEF, Args: map[string]any{"v1": 4, "v2": 1, "face": 1}},
	}
}

func intp(v int) *int       { return &v }
func id64p(v int64) *int64  { return &v }

func TestRunSquare(t *testing.T) {
	scenario := &Scenario{
		Name:        "square-inline",
		Description: "square built from inline steps",
		Steps:       squareSteps(),
		Assertions: []Assertion{
			{Type: AssertCounts, Vertices: intp(4), Edges: intp(4), Faces: intp(2)},
			{Type: AssertEuler, Value: intp(2)},
			{Type: AssertValidate},
			{Type: AssertManifold},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Len(t, result.Trace, 5)
	assert.Equal(t, testutil.DefaultRunToken, result.RunToken)

	require.NotNil(t, result.Kernel)
	assert.Equal(t, 4, result.Kernel.VertexCount())

	// Every event carries a strictly increasing sequence number.
	for i, ev := range result.Trace {
		assert.Equal(t, int64(i+1), ev.Seq)
	}
}

func TestRunTokenPinned(t *testing.T) {
	scenario := &Scenario{
		Name:        "token",
		Description: "pinned run token",
		RunToken:    "test-run-pinned",
		Steps:       []Step{{Op: OpMVSF, Args: map[string]any{"position": []any{0, 0, 0}}}},
		Assertions:  []Assertion{{Type: AssertValidate}},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.Equal(t, "test-run-pinned", result.RunToken)
}

func TestExpectResultMismatchFails(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "wrong expected vertex id",
		Steps: []Step{
			{
				Op:     OpMVSF,
				Args:   map[string]any{"position": []any{0, 0, 0}},
				Expect: &ExpectClause{Result: map[string]any{"vertex": 99}},
			},
		},
		Assertions: []Assertion{{Type: AssertValidate}},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "vertex")
}

func TestUnexpectedFailureHaltsRun(t *testing.T) {
	scenario := &Scenario{
		Name:        "halt",
		Description: "MEV against a dead vertex stops the run",
		Steps: []Step{
			{Op: OpMVSF, Args: map[string]any{"position": []any{0, 0, 0}}},
			{Op: OpMEV, Args: map[string]any{"vertex": 42, "position": []any{1, 0, 0}, "face": 1}},
			{Op: OpMVSF, Args: map[string]any{"position": []any{5, 0, 0}}},
		},
		Assertions: []Assertion{{Type: AssertValidate}},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)

	// The failing step is traced, the step after it never ran.
	require.Len(t, result.Trace, 2)
	assert.Equal(t, "INVALID_ARGUMENT", result.Trace[1].Error)
	assert.Equal(t, 1, result.Kernel.VertexCount())
}

func TestExpectedErrorPasses(t *testing.T) {
	scenario := &Scenario{
		Name:        "expected-error",
		Description: "KEF on a chain spike is rejected",
		Steps: []Step{
			{Op: OpMVSF, Args: map[string]any{"position": []any{0, 0, 0}}},
			{Op: OpMEV, Args: map[string]any{"vertex": 1, "position": []any{1, 0, 0}, "face": 1}},
			{
				Op:     OpKEF,
				Args:   map[string]any{"edge": 1},
				Expect: &ExpectClause{Error: "INVALID_ARGUMENT"},
			},
		},
		Assertions: []Assertion{
			{Type: AssertCounts, Edges: intp(1)},
			{Type: AssertValidate},
		},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, "INVALID_ARGUMENT", result.Trace[2].Error)
}

func TestExpectedErrorButSuccessFails(t *testing.T) {
	scenario := &Scenario{
		Name:        "wanted-failure",
		Description: "a step that should have failed",
		Steps: []Step{
			{
				Op:     OpMVSF,
				Args:   map[string]any{"position": []any{0, 0, 0}},
				Expect: &ExpectClause{Error: "INVALID_ARGUMENT"},
			},
		},
		Assertions: []Assertion{{Type: AssertValidate}},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
}

func TestMalformedArgsAbortRun(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad-args",
		Description: "missing position argument",
		Steps:       []Step{{Op: OpMVSF, Args: map[string]any{}}},
		Assertions:  []Assertion{{Type: AssertValidate}},
	}
	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position")
}

func TestTransformStep(t *testing.T) {
	scenario := &Scenario{
		Name:        "transform",
		Description: "translate the whole sheet",
		Steps: append(squareSteps(),
			Step{Op: OpTransform, Args: map[string]any{"translate": []any{10, 0, 0}}},
		),
		Assertions: []Assertion{
			{Type: AssertCounts, Vertices: intp(4), Edges: intp(4), Faces: intp(2)},
			{Type: AssertValidate},
		},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	v, err := result.Kernel.Vertex(1)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, v.Position.X, 1e-9)

	// Transform events carry no result payload.
	last := result.Trace[len(result.Trace)-1]
	assert.Equal(t, OpTransform, last.Op)
	assert.Nil(t, last.Result)
}

func TestTransformRejectsAmbiguousSpec(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad-transform",
		Description: "translate and scale in one step",
		Steps: []Step{
			{Op: OpMVSF, Args: map[string]any{"position": []any{0, 0, 0}}},
			{Op: OpTransform, Args: map[string]any{
				"translate": []any{1, 0, 0},
				"scale":     []any{2, 2, 2},
			}},
		},
		Assertions: []Assertion{{Type: AssertValidate}},
	}
	_, err := Run(scenario)
	require.Error(t, err)
}
