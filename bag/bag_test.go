package bag_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cdt2d/bag"
)

func TestAddContainsRemove(t *testing.T) {
	b := bag.New[int32](10)
	assert.Equal(t, 0, b.Size())
	assert.False(t, b.Contains(3))

	b.Add(3)
	assert.True(t, b.Contains(3))
	assert.Equal(t, 1, b.Size())

	b.Remove(3)
	assert.False(t, b.Contains(3))
	assert.Equal(t, 0, b.Size())
}

func TestRemoveAddIdentity(t *testing.T) {
	// remove(add(s, x), x) == s when x not already in s.
	b := bag.New[int32](10)
	b.Add(1)
	b.Add(2)
	before := b.Elements()

	b.Add(5)
	b.Remove(5)

	assert.ElementsMatch(t, before, b.Elements())
}

func TestAdd_PanicsOnDuplicate(t *testing.T) {
	b := bag.New[int32](4)
	b.Add(1)
	assert.PanicsWithValue(t, bag.ErrAlreadyPresent, func() { b.Add(1) })
}

func TestRemove_PanicsWhenAbsent(t *testing.T) {
	b := bag.New[int32](4)
	assert.PanicsWithValue(t, bag.ErrNotPresent, func() { b.Remove(1) })
}

func TestUniformPick_PanicsWhenEmpty(t *testing.T) {
	b := bag.New[int32](4)
	assert.PanicsWithValue(t, bag.ErrEmpty, func() { b.UniformPick(rand.New(rand.NewSource(1))) })
}

func TestUniformPick_OnlyReturnsLiveElements(t *testing.T) {
	b := bag.New[int32](5)
	b.Add(0)
	b.Add(2)
	b.Add(4)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		got := b.UniformPick(rng)
		assert.True(t, got == 0 || got == 2 || got == 4)
	}
}

func TestRemove_LastElementSwapKeepsDense(t *testing.T) {
	b := bag.New[int32](8)
	for _, l := range []int32{0, 1, 2, 3} {
		b.Add(l)
	}
	b.Remove(1) // middle removal exercises the swap-with-last path
	assert.Equal(t, 3, b.Size())
	assert.ElementsMatch(t, []int32{0, 2, 3}, b.Elements())
	for _, l := range []int32{0, 2, 3} {
		assert.True(t, b.Contains(l))
	}
	assert.False(t, b.Contains(1))
}
