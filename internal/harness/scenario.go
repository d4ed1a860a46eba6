package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: a sequence of Euler operator
// steps replayed against a fresh kernel, followed by assertions on the
// final structure.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description"`

	// Steps lists the operator invocations, executed in order. Entity
	// identifiers are monotonic per kind, so steps reference the ids the
	// preceding steps are known to have produced.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final kernel state and the trace.
	Assertions []Assertion `yaml:"assertions"`

	// RunToken optionally pins the run token recorded in the trace.
	// Empty means the deterministic default, which keeps golden files
	// stable; set an explicit token when runs must be distinguishable.
	RunToken string `yaml:"run_token,omitempty"`
}

// Step is one operator invocation.
type Step struct {
	// Op names the operator: mvsf, mev, mef, kef, kfmrh or transform.
	Op string `yaml:"op"`

	// Args holds the operator arguments. Entity handles are integers,
	// positions are 3-element number lists.
	Args map[string]any `yaml:"args"`

	// Expect optionally validates the step's outcome. Without it the
	// step is simply required to succeed.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the expected outcome of a step.
type ExpectClause struct {
	// Result lists expected fields of the operator's result, compared as
	// a subset: only the named fields are checked.
	Result map[string]any `yaml:"result,omitempty"`

	// Error is the expected error code (e.g. "INVALID_ARGUMENT"). When
	// set, the step must fail with that code.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the final kernel state or the trace.
type Assertion struct {
	// Type selects the assertion:
	//   counts                - entity counts match vertices/edges/faces
	//   euler_characteristic  - V - E + F equals value
	//   validate              - the structural scan reports no violation
	//   manifold              - IsManifold() matches want (default true)
	//   face_boundary         - boundary walk of face has the given
	//                           length and (optionally) edge multiset
	//   incident_edges        - radial fan of vertex has the given
	//                           length and (optionally) edge multiset
	//   trace_count           - op appears exactly count times in the trace
	Type string `yaml:"type"`

	// counts
	Vertices *int `yaml:"vertices,omitempty"`
	Edges    *int `yaml:"edges,omitempty"`
	Faces    *int `yaml:"faces,omitempty"`

	// euler_characteristic
	Value *int `yaml:"value,omitempty"`

	// manifold
	Want *bool `yaml:"want,omitempty"`

	// face_boundary
	Face *int64 `yaml:"face,omitempty"`
	Loop []int64 `yaml:"loop,omitempty"`

	// incident_edges
	Vertex *int64  `yaml:"vertex,omitempty"`
	Fan    []int64 `yaml:"fan,omitempty"`

	// face_boundary / incident_edges
	Length *int `yaml:"length,omitempty"`

	// trace_count
	Op    string `yaml:"op,omitempty"`
	Count *int   `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertCounts        = "counts"
	AssertEuler         = "euler_characteristic"
	AssertValidate      = "validate"
	AssertManifold      = "manifold"
	AssertFaceBoundary  = "face_boundary"
	AssertIncidentEdges = "incident_edges"
	AssertTraceCount    = "trace_count"
)

// Operator name constants.
const (
	OpMVSF      = "mvsf"
	OpMEV       = "mev"
	OpMEF       = "mef"
	OpKEF       = "kef"
	OpKFMRH     = "kfmrh"
	OpTransform = "transform"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected, which catches typos like "assertion:" for "assertions:".
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpMVSF, OpMEV, OpMEF, OpKEF, OpKFMRH, OpTransform:
		case "":
			return fmt.Errorf("steps[%d]: op is required", i)
		default:
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
		if step.Args == nil {
			return fmt.Errorf("steps[%d]: args is required (use an empty map if there are none)", i)
		}
		if step.Expect != nil && step.Expect.Error == "" && len(step.Expect.Result) == 0 {
			return fmt.Errorf("steps[%d].expect: result or error is required", i)
		}
		if step.Expect != nil && step.Expect.Error != "" && len(step.Expect.Result) > 0 {
			return fmt.Errorf("steps[%d].expect: result and error are mutually exclusive", i)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertCounts:
		if a.Vertices == nil && a.Edges == nil && a.Faces == nil {
			return fmt.Errorf("assertions[%d]: counts needs at least one of vertices/edges/faces", index)
		}
	case AssertEuler:
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for euler_characteristic", index)
		}
	case AssertValidate, AssertManifold:
		// No required fields.
	case AssertFaceBoundary:
		if a.Face == nil {
			return fmt.Errorf("assertions[%d]: face is required for face_boundary", index)
		}
		if a.Length == nil && len(a.Loop) == 0 {
			return fmt.Errorf("assertions[%d]: length or loop is required for face_boundary", index)
		}
	case AssertIncidentEdges:
		if a.Vertex == nil {
			return fmt.Errorf("assertions[%d]: vertex is required for incident_edges", index)
		}
		if a.Length == nil && len(a.Fan) == 0 {
			return fmt.Errorf("assertions[%d]: length or fan is required for incident_edges", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for trace_count", index)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
