package harness

import (
	"errors"
	"fmt"

	"github.com/jbacus/sketchy/internal/geom"
	"github.com/jbacus/sketchy/internal/kernel"
	"github.com/jbacus/sketchy/internal/testutil"
	"github.com/jbacus/sketchy/internal/topo"
)

// TraceEvent records one operator invocation and its outcome.
type TraceEvent struct {
	Seq    int64          `json:"seq"`
	Op     string         `json:"op"`
	Args   map[string]any `json:"args,omitempty"`
	Result map[string]any `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"` // error code of an expected failure
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause and assertion held.
	Pass bool `json:"pass"`

	// RunToken tags every event of this execution.
	RunToken string `json:"run_token"`

	// Trace lists the operator invocations in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors lists expect and assertion violations. Empty when Pass.
	Errors []string `json:"errors,omitempty"`

	// Kernel is the final structure, for callers that want to render or
	// inspect it after the run.
	Kernel *kernel.Kernel `json:"-"`
}

// NewResult creates an empty passing result.
func NewResult(runToken string) *Result {
	return &Result{
		Pass:     true,
		RunToken: runToken,
		Trace:    []TraceEvent{},
		Errors:   []string{},
	}
}

// AddError records a violation and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Harness replays one scenario against a fresh kernel.
type Harness struct {
	kernel *kernel.Kernel
	clock  *testutil.DeterministicClock
}

// Run executes a scenario and returns its result. Each scenario gets a
// fresh kernel, so identifiers always start at 1 and runs are isolated.
//
// A returned error means the scenario itself is unusable (malformed
// arguments); operator failures and assertion violations land in the
// result instead.
func Run(scenario *Scenario) (*Result, error) {
	h := &Harness{
		kernel: kernel.New(),
		clock:  testutil.NewDeterministicClock(),
	}
	result := NewResult(testutil.NewFixedTokenSource(scenario.RunToken).Token())
	result.Kernel = h.kernel

	for i, step := range scenario.Steps {
		halt, err := h.executeStep(step, result)
		if err != nil {
			return nil, fmt.Errorf("steps[%d] (%s): %w", i, step.Op, err)
		}
		if halt {
			break
		}
	}

	for _, msg := range EvaluateAssertions(h.kernel, result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

// executeStep invokes one operator, appends the trace event and checks
// the expect clause. halt is set when an unexpected operator failure
// makes the remaining steps meaningless.
func (h *Harness) executeStep(step Step, result *Result) (halt bool, err error) {
	res, opErr, argErr := h.invoke(step.Op, step.Args)
	if argErr != nil {
		return false, argErr
	}

	ev := TraceEvent{
		Seq:  h.clock.Next(),
		Op:   step.Op,
		Args: step.Args,
	}

	if opErr != nil {
		code := errorCode(opErr)
		ev.Error = code
		result.Trace = append(result.Trace, ev)

		if step.Expect == nil || step.Expect.Error == "" {
			result.AddError(fmt.Sprintf("step %d (%s): unexpected failure: %v", ev.Seq, step.Op, opErr))
			return true, nil
		}
		if step.Expect.Error != code {
			result.AddError(fmt.Sprintf("step %d (%s): failed with %s, expected %s", ev.Seq, step.Op, code, step.Expect.Error))
		}
		return false, nil
	}

	ev.Result = res
	result.Trace = append(result.Trace, ev)

	if step.Expect == nil {
		return false, nil
	}
	if step.Expect.Error != "" {
		result.AddError(fmt.Sprintf("step %d (%s): succeeded, expected failure %s", ev.Seq, step.Op, step.Expect.Error))
		return false, nil
	}
	for key, want := range step.Expect.Result {
		got, ok := res[key]
		if !ok {
			result.AddError(fmt.Sprintf("step %d (%s): result has no field %q", ev.Seq, step.Op, key))
			continue
		}
		if !scalarEqual(want, got) {
			result.AddError(fmt.Sprintf("step %d (%s): result %s = %v, expected %v", ev.Seq, step.Op, key, got, want))
		}
	}
	return false, nil
}

// invoke dispatches one operator call. opErr carries kernel failures
// (which expect clauses may anticipate); argErr carries scenario
// authoring mistakes, which abort the run.
func (h *Harness) invoke(op string, args map[string]any) (res map[string]any, opErr, argErr error) {
	switch op {
	case OpMVSF:
		pos, err := argVec3(args, "position")
		if err != nil {
			return nil, nil, err
		}
		v, f := h.kernel.MVSF(pos)
		return map[string]any{"vertex": int64(v), "face": int64(f)}, nil, nil

	case OpMEV:
		from, err := argID(args, "vertex")
		if err != nil {
			return nil, nil, err
		}
		pos, err := argVec3(args, "position")
		if err != nil {
			return nil, nil, err
		}
		face, err := argID(args, "face")
		if err != nil {
			return nil, nil, err
		}
		e, err := h.kernel.MEV(topo.VertexID(from), pos, topo.FaceID(face))
		if err != nil {
			return nil, err, nil
		}
		edge, err := h.kernel.Edge(e)
		if err != nil {
			return nil, err, nil
		}
		return map[string]any{"edge": int64(e), "vertex": int64(edge.V2)}, nil, nil

	case OpMEF:
		v1, err := argID(args, "v1")
		if err != nil {
			return nil, nil, err
		}
		v2, err := argID(args, "v2")
		if err != nil {
			return nil, nil, err
		}
		face, err := argID(args, "face")
		if err != nil {
			return nil, nil, err
		}
		e, err := h.kernel.MEF(topo.VertexID(v1), topo.VertexID(v2), topo.FaceID(face))
		if err != nil {
			return nil, err, nil
		}
		edge, err := h.kernel.Edge(e)
		if err != nil {
			return nil, err, nil
		}
		return map[string]any{"edge": int64(e), "face": int64(edge.F2)}, nil, nil

	case OpKEF:
		e, err := argID(args, "edge")
		if err != nil {
			return nil, nil, err
		}
		f, err := h.kernel.KEF(topo.EdgeID(e))
		if err != nil {
			return nil, err, nil
		}
		return map[string]any{"face": int64(f)}, nil, nil

	case OpKFMRH:
		hole, err := argID(args, "hole")
		if err != nil {
			return nil, nil, err
		}
		outer, err := argID(args, "outer")
		if err != nil {
			return nil, nil, err
		}
		if err := h.kernel.KFMRH(topo.FaceID(hole), topo.FaceID(outer)); err != nil {
			return nil, err, nil
		}
		return nil, nil, nil

	case OpTransform:
		m, err := argTransform(args)
		if err != nil {
			return nil, nil, err
		}
		h.kernel.Transform(m)
		return nil, nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown op %q", op)
	}
}

// errorCode extracts the kernel error code, or a generic marker for
// errors from outside the topology taxonomy.
func errorCode(err error) string {
	var te *topo.TopologyError
	if errors.As(err, &te) {
		return string(te.Code)
	}
	return "ERROR"
}

// scalarEqual compares an expected YAML scalar with a result value,
// normalizing the integer widths the YAML decoder produces.
func scalarEqual(want, got any) bool {
	wi, wok := toInt64(want)
	gi, gok := toInt64(got)
	if wok && gok {
		return wi == gi
	}
	return want == got
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func argID(args map[string]any, key string) (int64, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", key)
	}
	id, ok := toInt64(v)
	if !ok {
		return 0, fmt.Errorf("argument %q must be an integer handle, got %T", key, v)
	}
	return id, nil
}

func argVec3(args map[string]any, key string) (geom.Vec3, error) {
	v, ok := args[key]
	if !ok {
		return geom.Vec3{}, fmt.Errorf("missing argument %q", key)
	}
	list, ok := v.([]any)
	if !ok || len(list) != 3 {
		return geom.Vec3{}, fmt.Errorf("argument %q must be a 3-element number list", key)
	}
	var out [3]float64
	for i, elem := range list {
		f, ok := toFloat(elem)
		if !ok {
			return geom.Vec3{}, fmt.Errorf("argument %q[%d] must be a number, got %T", key, i, elem)
		}
		out[i] = f
	}
	return geom.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

// argTransform builds the matrix for a transform step from exactly one
// of translate, scale or rotate.
func argTransform(args map[string]any) (geom.Mat4, error) {
	given := 0
	for _, key := range []string{"translate", "scale", "rotate"} {
		if _, ok := args[key]; ok {
			given++
		}
	}
	if given != 1 {
		return geom.Mat4{}, fmt.Errorf("transform takes exactly one of translate, scale or rotate")
	}

	if _, ok := args["translate"]; ok {
		v, err := argVec3(args, "translate")
		if err != nil {
			return geom.Mat4{}, err
		}
		return geom.Translation(v.X, v.Y, v.Z), nil
	}
	if _, ok := args["scale"]; ok {
		v, err := argVec3(args, "scale")
		if err != nil {
			return geom.Mat4{}, err
		}
		return geom.Scaling(v.X, v.Y, v.Z), nil
	}

	spec, ok := args["rotate"].(map[string]any)
	if !ok {
		return geom.Mat4{}, fmt.Errorf("rotate must be a map with axis and angle")
	}
	axis, err := argVec3(spec, "axis")
	if err != nil {
		return geom.Mat4{}, err
	}
	angleVal, ok := spec["angle"]
	if !ok {
		return geom.Mat4{}, fmt.Errorf("rotate needs an angle in radians")
	}
	angle, ok := toFloat(angleVal)
	if !ok {
		return geom.Mat4{}, fmt.Errorf("rotate angle must be a number, got %T", angleVal)
	}
	return geom.Rotation(axis, angle), nil
}
