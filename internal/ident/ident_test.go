package ident

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_CanonicalV4(t *testing.T) {
	id := NewID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Equal(t, uuid.RFC4122, parsed.Variant())
}

func TestNewID_NoShortTermRepeats(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup, "generated duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
