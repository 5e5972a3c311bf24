package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ToggleTwiceRestores(t *testing.T) {
	seed := map[int]bool{1: false, 2: true, 3: false}

	for id, orig := range seed {
		r := NewRegistry(seed)
		assert.Equal(t, !orig, r.Toggle(id))
		assert.Equal(t, orig, r.Toggle(id))
		assert.Equal(t, orig, r.IsFavorite(id))
	}
}

func TestRegistry_ToggleLeavesOthersUntouched(t *testing.T) {
	r := NewRegistry(map[int]bool{1: false, 2: true, 5: true})

	r.Toggle(1)
	assert.Equal(t, map[int]bool{1: true, 2: true, 5: true}, r.Snapshot())
	assert.Equal(t, []int{1, 2, 5}, r.IDs())

	r.Toggle(2)
	assert.Equal(t, []int{1, 5}, r.IDs())
}

func TestRegistry_SeedIsCopied(t *testing.T) {
	seed := map[int]bool{1: false}
	r := NewRegistry(seed)
	r.Toggle(1)

	assert.False(t, seed[1])

	snap := r.Snapshot()
	snap[1] = false
	assert.True(t, r.IsFavorite(1))
}
