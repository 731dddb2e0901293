package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalID(t *testing.T) {
	t.Parallel()

	got, ok := CanonicalID("7C4D8B1E-0000-4000-8000-000000000001")
	assert.True(t, ok)
	assert.Equal(t, "7c4d8b1e-0000-4000-8000-000000000001", got)

	for _, bad := range []string{"", "123", "not-a-uuid", "64b7f0c2e1a2b3c4d5e6f708"} {
		_, ok := CanonicalID(bad)
		assert.False(t, ok, bad)
	}

	_, ok = CanonicalID(NewID())
	assert.True(t, ok)
}
