// Package harness executes conformance scenarios against the topology
// kernel.
//
// A scenario is a YAML document listing Euler operator steps and final
// state assertions. The harness replays the steps against a fresh kernel,
// records every invocation and outcome in a trace stamped with a
// deterministic logical clock, and evaluates the assertions against the
// resulting structure.
//
// Because entity identifiers are monotonic per kind and the clock is
// deterministic, the same scenario always produces the same trace. Traces
// serialize to canonical JSON and are compared byte-for-byte against
// golden files under testdata/golden (regenerate with `go test -update`).
package harness
