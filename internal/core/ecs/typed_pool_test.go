package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vcthuster/arlecs/internal/core/arena"
)

type testPosition struct {
	X, Y float64
}

func Test_TypedPool_Register_ReturnsWorkingHandle(t *testing.T) {
	// Arrange
	a, err := arena.Create(1 << 20)
	assert.NoError(t, err)
	w := CreateWorld(a, 100)

	// Act
	id, pool, err := Register[testPosition](w)
	assert.NoError(t, err)
	e := w.CreateEntity()

	ptr := pool.Add(e)
	ptr.X, ptr.Y = 1, 2

	// Assert
	assert.Equal(t, ComponentID(0), id)
	got, ok := pool.Get(e)
	assert.True(t, ok)
	assert.Equal(t, testPosition{1, 2}, *got)
	assert.True(t, pool.Has(e))
	assert.Equal(t, 1, pool.Count())
}

func Test_TypedPool_DoubleAdd_ReturnsSamePointer(t *testing.T) {
	// Arrange
	a, err := arena.Create(1 << 20)
	assert.NoError(t, err)
	w := CreateWorld(a, 10)
	_, pool, err := Register[testPosition](w)
	assert.NoError(t, err)
	e := w.CreateEntity()

	// Act
	p1 := pool.Add(e)
	p1.X = 5
	p2 := pool.Add(e)

	// Assert
	assert.Same(t, p1, p2)
	assert.Equal(t, 1, pool.Count())
}

func Test_TypedPool_Remove_DetachesComponent(t *testing.T) {
	// Arrange
	a, err := arena.Create(1 << 20)
	assert.NoError(t, err)
	w := CreateWorld(a, 10)
	_, pool, err := Register[testPosition](w)
	assert.NoError(t, err)
	e := w.CreateEntity()
	pool.Add(e)

	// Act
	pool.Remove(e)

	// Assert
	assert.False(t, pool.Has(e))
	_, ok := pool.Get(e)
	assert.False(t, ok)
	assert.Equal(t, 0, pool.Count())
}
