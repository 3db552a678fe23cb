package petpoojasync

import (
	"testing"

	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverResolvesRecordedIDs(t *testing.T) {
	r := NewResolver()
	r.Record(RefCategory, "C1", "uuid-c1")

	id, ok := r.Resolve(RefCategory, "C1")
	require.True(t, ok)
	require.NotNil(t, id)
	assert.Equal(t, "uuid-c1", *id)
}

func TestResolverKindsAreSeparate(t *testing.T) {
	r := NewResolver()
	r.Record(RefCategory, "1", "uuid-cat")

	id, ok := r.Resolve(RefAddonGroup, "1")
	assert.False(t, ok)
	assert.Nil(t, id)
	assert.Equal(t, 1, r.Misses(RefAddonGroup))
	assert.Equal(t, 0, r.Misses(RefCategory))
}

func TestResolverZeroReferenceIsNotAMiss(t *testing.T) {
	r := NewResolver()

	for _, ref := range []string{"", "0"} {
		id, ok := r.Resolve(RefCategory, petpooja.ID(ref))
		assert.True(t, ok)
		assert.Nil(t, id)
	}
	assert.Equal(t, 0, r.Misses(RefCategory))
}

func TestResolverTotalMissesSumsKinds(t *testing.T) {
	r := NewResolver()
	r.Record(RefAttribute, "A1", "uuid-a1")

	r.Resolve(RefCategory, "C9")
	r.Resolve(RefAddonGroup, "G9")
	r.Resolve(RefAddonGroup, "G8")
	r.Resolve(RefAttribute, "A1")

	assert.Equal(t, 3, r.TotalMisses())
}
