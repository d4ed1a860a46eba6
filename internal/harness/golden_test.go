package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGoldenScenarios replays every scenario under testdata/scenarios and
// compares its trace against the golden file of the same name.
func TestGoldenScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario files found")

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)

			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "scenario failed: %v", result.Errors)
		})
	}
}

func TestSnapshotOmitsUnsetFields(t *testing.T) {
	snapshot := TraceSnapshot{
		ScenarioName: "omit",
		RunToken:     "test-run-omit",
		Trace: []TraceEvent{
			{Seq: 1, Op: "kfmrh", Args: map[string]any{"hole": 2, "outer": 1}},
		},
	}
	data, err := MarshalCanonical(snapshot.toCanonicalMap())
	require.NoError(t, err)
	assert.Equal(t,
		`{"run_token":"test-run-omit","scenario_name":"omit","trace":[{"args":{"hole":2,"outer":1},"op":"kfmrh","seq":1}]}`,
		string(data))
}
