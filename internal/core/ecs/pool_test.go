package ecs

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/vcthuster/arlecs/internal/core/arena"
)

func newTestPool(t *testing.T, elemSize uintptr, capacity uint32) *pool {
	t.Helper()
	a, err := arena.Create(1 << 20)
	assert.NoError(t, err)
	p, err := newPool(a, elemSize, capacity)
	assert.NoError(t, err)
	return p
}

func Test_Pool_TripleAddWithMiddleRemoval(t *testing.T) {
	// Arrange: Pool over int, capacity 100.
	p := newTestPool(t, unsafe.Sizeof(int(0)), 100)

	set := func(e EntityID, v int) {
		ptr := p.add(e)
		assert.NotNil(t, ptr)
		*(*int)(ptr) = v
	}

	// Act
	set(10, 111)
	set(20, 222)
	set(30, 333)
	p.remove(20)

	// Assert
	assert.EqualValues(t, 2, p.count)
	assert.False(t, p.has(20))
	assert.EqualValues(t, 111, *(*int)(p.get(10)))
	assert.EqualValues(t, 333, *(*int)(p.get(30)))
	assert.Equal(t, EntityID(10), p.dense[0])
	assert.Equal(t, EntityID(30), p.dense[1])
}

func Test_Pool_OutOfRange(t *testing.T) {
	// Arrange: Pool over int, capacity 5.
	p := newTestPool(t, unsafe.Sizeof(int(0)), 5)

	// Act & Assert
	assert.NotNil(t, p.add(0))
	assert.NotNil(t, p.add(4))
	assert.Nil(t, p.add(5))
}

func Test_Pool_DoubleAdd(t *testing.T) {
	// Arrange
	p := newTestPool(t, unsafe.Sizeof(int(0)), 10)

	// Act
	p1 := p.add(5)
	*(*int)(p1) = 123
	p2 := p.add(5)

	// Assert
	assert.Equal(t, p1, p2)
	assert.EqualValues(t, 1, p.count)
	assert.EqualValues(t, 123, *(*int)(p2))
}

func Test_Pool_Get_NullWhenAbsent(t *testing.T) {
	// Arrange
	p := newTestPool(t, unsafe.Sizeof(int(0)), 10)

	// Act & Assert
	assert.Nil(t, p.get(3))
	assert.False(t, p.has(3))
}

func Test_Pool_Get_OutOfRangeEntity(t *testing.T) {
	// Arrange
	p := newTestPool(t, unsafe.Sizeof(int(0)), 4)

	// Act & Assert
	assert.Nil(t, p.get(100))
	assert.False(t, p.has(100))
}

func Test_Pool_Remove_SwapPopRelocatesLastEntity(t *testing.T) {
	// Arrange
	p := newTestPool(t, unsafe.Sizeof(int(0)), 10)
	writeInt := func(e EntityID, v int) { *(*int)(p.add(e)) = v }
	writeInt(1, 10)
	writeInt(2, 20)
	writeInt(3, 30)

	// Act: remove the first entity, which is not last in dense.
	p.remove(1)

	// Assert: the entity that used to be last (3) is still findable with
	// the same bytes, and now lives at the removed slot.
	assert.False(t, p.has(1))
	assert.True(t, p.has(3))
	assert.EqualValues(t, 30, *(*int)(p.get(3)))
	assert.EqualValues(t, 2, p.count)
}

func Test_Pool_Remove_OnAbsentEntityIsNoOp(t *testing.T) {
	// Arrange
	p := newTestPool(t, unsafe.Sizeof(int(0)), 10)
	p.add(1)

	// Act
	p.remove(2)

	// Assert
	assert.EqualValues(t, 1, p.count)
	assert.True(t, p.has(1))
}

func Test_Pool_Remove_OutOfRangeIsNoOp(t *testing.T) {
	// Arrange
	p := newTestPool(t, unsafe.Sizeof(int(0)), 4)

	// Act & Assert: must not panic.
	p.remove(100)
}

func Test_Pool_Invariants_HoldAfterMixedOperations(t *testing.T) {
	// Arrange
	p := newTestPool(t, unsafe.Sizeof(int(0)), 1000)

	for i := EntityID(0); i < 500; i++ {
		p.add(i)
	}
	for i := EntityID(0); i < 500; i += 3 {
		p.remove(i)
	}
	for i := EntityID(500); i < 700; i++ {
		p.add(i)
	}

	// Assert: P1 bijection invariant.
	for k := uint32(0); k < p.count; k++ {
		e := p.dense[k]
		assert.Equal(t, k, p.sparse[e])
	}
	for e := EntityID(0); e < EntityID(p.capacity); e++ {
		if p.sparse[e] != sparseSentinel {
			idx := p.sparse[e]
			assert.Less(t, idx, p.count)
			assert.Equal(t, e, p.dense[idx])
		}
	}
}

func Test_Pool_ZeroSizedElementIsTagComponent(t *testing.T) {
	// Arrange: elem_size 0 is a valid tag-component pool.
	p := newTestPool(t, 0, 10)

	// Act
	ptr := p.add(2)

	// Assert: no data backing, but presence tracking still works.
	assert.True(t, p.has(2))
	_ = ptr
}

func Benchmark_Pool_Add(b *testing.B) {
	a, _ := arena.Create(1 << 28)
	p, _ := newPool(a, unsafe.Sizeof(int(0)), uint32(b.N)+1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.add(EntityID(i))
	}
}

func Benchmark_Pool_Get(b *testing.B) {
	a, _ := arena.Create(1 << 28)
	const n = 100000
	p, _ := newPool(a, unsafe.Sizeof(int(0)), n)
	for i := EntityID(0); i < n; i++ {
		p.add(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.get(EntityID(i % n))
	}
}
