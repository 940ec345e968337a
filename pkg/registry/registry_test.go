package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/registry"
)

type fakeMachine struct {
	kind string
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := registry.New()
	goblin := &fakeMachine{kind: "goblin"}

	r.Register("goblin", goblin)

	got, ok := r.Get("goblin")
	require.True(t, ok)
	assert.Same(t, goblin, got)

	_, ok = r.Get("dragon")
	assert.False(t, ok)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := registry.New()
	r.Register("goblin", &fakeMachine{kind: "old"})

	replacement := &fakeMachine{kind: "new"}
	r.Register("goblin", replacement)

	got, ok := r.Get("goblin")
	require.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestRegistry_Kinds(t *testing.T) {
	r := registry.New()
	r.Register("goblin", &fakeMachine{})
	r.Register("dragon", &fakeMachine{})

	assert.Equal(t, []string{"dragon", "goblin"}, r.Kinds())
}

func TestResolve(t *testing.T) {
	r := registry.New()
	goblin := &fakeMachine{kind: "goblin"}
	r.Register("goblin", goblin)

	t.Run("typed lookup", func(t *testing.T) {
		m, err := registry.Resolve[*fakeMachine](r, "goblin")
		require.NoError(t, err)
		assert.Same(t, goblin, m)
	})

	t.Run("missing kind", func(t *testing.T) {
		_, err := registry.Resolve[*fakeMachine](r, "dragon")
		assert.ErrorIs(t, err, registry.ErrNotRegistered)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := registry.Resolve[string](r, "goblin")
		assert.Error(t, err)
	})
}
