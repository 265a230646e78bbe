package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRepeatedKeepsSingleLine(t *testing.T) {
	c := Cart{}
	for i := 0; i < 5; i++ {
		c = c.Add(7)
	}
	require.Len(t, c.Lines, 1)
	assert.Equal(t, int32(5), c.Quantity(7))
}

func TestAddIncrementsInPlace(t *testing.T) {
	c := Cart{}.Add(1).Add(2).Add(3).Add(2)
	assert.Equal(t, []CartLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	}, c.Lines)
	assert.Equal(t, 4, c.ItemCount())
}

func TestRemove(t *testing.T) {
	t.Run("quantity one drops the line", func(t *testing.T) {
		c, ok := Cart{}.Add(1).Add(2).Remove(1)
		require.True(t, ok)
		assert.Equal(t, []CartLine{{ProductID: 2, Quantity: 1}}, c.Lines)
		assert.Equal(t, int32(0), c.Quantity(1))
	})

	t.Run("decrements", func(t *testing.T) {
		c, ok := Cart{}.Add(1).Add(1).Remove(1)
		require.True(t, ok)
		assert.Equal(t, int32(1), c.Quantity(1))
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		before := Cart{ID: "c"}.Add(1)
		after, ok := before.Remove(9)
		assert.False(t, ok)
		assert.Equal(t, before, after)
	})
}

func TestAddThenRemoveRestoresState(t *testing.T) {
	base := Cart{ID: "c"}.Add(1).Add(2).Add(2).Add(3)

	for _, id := range []int64{1, 2, 3, 4} {
		got, ok := base.Add(id).Remove(id)
		require.True(t, ok)
		assert.Equal(t, base.Lines, got.Lines, "product %d", id)
	}
}

func TestClear(t *testing.T) {
	c := Cart{ID: "c"}.Add(1).Add(2).Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "c", c.ID)
	assert.True(t, Cart{}.Clear().IsEmpty())
}

func TestSnapshotsAreNotAliased(t *testing.T) {
	snap := Cart{}.Add(1)
	_ = snap.Add(1)
	_, _ = snap.Remove(1)
	assert.Equal(t, int32(1), snap.Quantity(1))
}
