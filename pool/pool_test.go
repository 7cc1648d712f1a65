package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cdt2d/pool"
)

func TestCreateDestroy_ConservesSize(t *testing.T) {
	p := pool.New[int](4)
	assert.Equal(t, 0, p.Size())
	assert.Equal(t, 4, p.Capacity())

	a := p.Create()
	b := p.Create()
	assert.Equal(t, 2, p.Size())
	assert.True(t, p.Live(a))
	assert.True(t, p.Live(b))

	p.Destroy(a)
	assert.Equal(t, 1, p.Size())
	assert.False(t, p.Live(a))

	c := p.Create()
	assert.Equal(t, 2, p.Size())
	assert.Equal(t, a, c, "freed label must be reused by the next allocation")
}

func TestCreate_MutatesThroughAt(t *testing.T) {
	p := pool.New[string](2)
	l := p.Create()
	*p.At(l) = "hello"
	assert.Equal(t, "hello", *p.At(l))
}

func TestCreate_PanicsWhenFull(t *testing.T) {
	p := pool.New[int](1)
	p.Create()
	assert.PanicsWithValue(t, pool.ErrCapacityExhausted, func() { p.Create() })
}

func TestDestroy_PanicsOnDoubleFree(t *testing.T) {
	p := pool.New[int](2)
	l := p.Create()
	p.Destroy(l)
	assert.Panics(t, func() { p.Destroy(l) })
}

func TestAt_PanicsOnDeadLabel(t *testing.T) {
	p := pool.New[int](2)
	l := p.Create()
	p.Destroy(l)
	assert.Panics(t, func() { p.At(l) })
}

func TestItems_ReflectsLiveSet(t *testing.T) {
	p := pool.New[int](5)
	a := p.Create()
	b := p.Create()
	c := p.Create()
	p.Destroy(b)

	require.Equal(t, 2, p.Size())
	items := p.Items()
	assert.ElementsMatch(t, []pool.Label{a, c}, items)
}

func TestItems_EmptyPool(t *testing.T) {
	p := pool.New[int](3)
	assert.Empty(t, p.Items())
}
