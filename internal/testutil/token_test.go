package testutil

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedTokenSource(t *testing.T) {
	src := NewFixedTokenSource("test-run-square")
	assert.Equal(t, "test-run-square", src.Token())
	assert.Equal(t, src.Token(), src.Token())
}

func TestFixedTokenSourceDefault(t *testing.T) {
	src := NewFixedTokenSource("")
	assert.Equal(t, DefaultRunToken, src.Token())
}

func TestRandomTokenSource(t *testing.T) {
	var src RandomTokenSource

	a := src.Token()
	b := src.Token()
	assert.NotEqual(t, a, b)

	require.True(t, strings.HasPrefix(a, "run-"))
	_, err := uuid.Parse(strings.TrimPrefix(a, "run-"))
	assert.NoError(t, err)
}
