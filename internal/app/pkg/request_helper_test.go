package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClientIP_PrefersForwardedFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "203.0.113.7", ResolveClientIP("203.0.113.7", "10.0.0.1"))
}

func TestResolveClientIP_TakesFirstForwardedEntry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "203.0.113.7", ResolveClientIP("203.0.113.7, 198.51.100.2, 10.0.0.1", "10.0.0.1"))
	assert.Equal(t, "203.0.113.7", ResolveClientIP(" 203.0.113.7 ,198.51.100.2", "10.0.0.1"))
}

func TestResolveClientIP_FallsBackToRemoteAddr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.0.0.1", ResolveClientIP("", "10.0.0.1"))
}
