package testutil

import "github.com/google/uuid"

// DefaultRunToken is the token used when a scenario does not pin one.
// Keeping it constant keeps golden trace files byte-stable.
const DefaultRunToken = "test-run-default"

// TokenSource yields the run token that tags every event of one harness
// execution.
type TokenSource interface {
	Token() string
}

// FixedTokenSource always returns the same token.
//
// The token is typically pinned in the scenario YAML:
//
//	run_token: "test-run-square"
type FixedTokenSource struct {
	token string
}

// NewFixedTokenSource creates a source for the given token. An empty
// token falls back to DefaultRunToken.
func NewFixedTokenSource(token string) *FixedTokenSource {
	if token == "" {
		token = DefaultRunToken
	}
	return &FixedTokenSource{token: token}
}

// Token returns the fixed run token.
func (s *FixedTokenSource) Token() string {
	return s.token
}

// RandomTokenSource mints a fresh time-ordered token per call. Used by
// the CLI, where runs should be distinguishable rather than reproducible.
type RandomTokenSource struct{}

// Token returns "run-" followed by a UUIDv7, falling back to a random
// UUIDv4 if the system clock source fails.
func (RandomTokenSource) Token() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "run-" + id.String()
}
