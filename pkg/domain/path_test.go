package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/canopy/pkg/domain"
)

func TestActivePath_Lifecycle(t *testing.T) {
	var p domain.ActivePath
	assert.False(t, p.Attached())
	assert.Equal(t, 0, p.Capacity())
	assert.Equal(t, 0, p.Depth())

	p.Reset(3)
	assert.True(t, p.Attached())
	assert.Equal(t, 3, p.Capacity())
	assert.Equal(t, 0, p.Depth())

	p.Release()
	assert.False(t, p.Attached())
}

func TestActivePath_SlotOperations(t *testing.T) {
	var p domain.ActivePath
	p.Reset(3)

	p.Set(0, "root")
	p.Set(1, "grounded")
	assert.Equal(t, 2, p.Depth())
	assert.Equal(t, domain.ID("grounded"), p.At(1))
	assert.Equal(t, domain.None, p.At(2))

	assert.True(t, p.Contains("root"))
	assert.False(t, p.Contains("move"))
	assert.False(t, p.Contains(domain.None))

	assert.Equal(t, []domain.ID{"root", "grounded"}, p.IDs())

	p.Clear(1)
	assert.Equal(t, 1, p.Depth())
	assert.Equal(t, []domain.ID{"root"}, p.IDs())
}

func TestActivePath_OutOfRangeAccess(t *testing.T) {
	var p domain.ActivePath
	p.Reset(2)

	assert.Equal(t, domain.None, p.At(-1))
	assert.Equal(t, domain.None, p.At(2))

	// Writes outside the slot range are ignored, not panics.
	p.Set(5, "ghost")
	assert.Equal(t, 0, p.Depth())
}

func TestActivePath_IDsReturnsCopy(t *testing.T) {
	var p domain.ActivePath
	p.Reset(2)
	p.Set(0, "root")

	ids := p.IDs()
	ids[0] = "mutated"
	assert.Equal(t, domain.ID("root"), p.At(0))
}
