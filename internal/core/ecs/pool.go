package ecs

import (
	"unsafe"

	"github.com/vcthuster/arlecs/internal/core/arena"
)

// pool is the type-erased sparse-set storage for exactly one component
// type. It is the thing that actually lives in the arena; Pool[T] (in
// typed_pool.go) is a thin generic wrapper around it that casts slot
// pointers to *T. Keeping the pool itself untyped, as SPEC_FULL.md §9
// recommends, is what lets World hold a single uniform
// [MaxComponentTypes]*pool table indexed by a small integer instead of
// needing per-type specialization at the registry layer.
//
// Invariants (must hold after every call to add/remove):
//  1. for every k in [0, count): sparse[dense[k]] == k
//  2. for every entity e < capacity with sparse[e] != NullEntity:
//     sparse[e] < count && dense[sparse[e]] == e
//  3. data[k*elemSize : (k+1)*elemSize] is the live bytes for dense[k]
//  4. no entity appears twice in dense[0:count]
type pool struct {
	elemSize uintptr
	capacity uint32
	count    uint32

	sparse []uint32   // entity -> dense index, or sentinel
	dense  []EntityID // dense index -> entity
	data   []byte     // packed component bytes, elemSize per slot
}

const sparseSentinel uint32 = ^uint32(0)

// newPool allocates sparse, dense and data back-to-back in a, so a single
// component type's bookkeeping and payload stay adjacent in memory.
func newPool(a *arena.Arena, elemSize uintptr, capacity uint32) (*pool, error) {
	sparse, err := arena.TypedArray[uint32](a, int(capacity))
	if err != nil {
		return nil, err
	}
	for i := range sparse {
		sparse[i] = sparseSentinel
	}

	dense, err := arena.TypedArray[EntityID](a, int(capacity))
	if err != nil {
		return nil, err
	}

	var data []byte
	if elemSize > 0 {
		data, err = arena.TypedArray[byte](a, int(uintptr(capacity)*elemSize))
		if err != nil {
			return nil, err
		}
	}

	return &pool{
		elemSize: elemSize,
		capacity: capacity,
		sparse:   sparse,
		dense:    dense,
		data:     data,
	}, nil
}

// add returns a pointer to the entity's storage slot, allocating a new
// dense slot on first add. A second add for the same entity returns the
// existing slot unchanged (DoubleAdd, not an error — see SPEC_FULL.md §7).
// Out-of-range entities return nil (PoolCapacityExceeded, also not an
// error): this is a data-driven condition, not a contract violation.
func (p *pool) add(e EntityID) unsafe.Pointer {
	if uint32(e) >= p.capacity {
		return nil
	}

	if p.sparse[e] != sparseSentinel {
		return p.slot(p.sparse[e])
	}

	idx := p.count
	p.sparse[e] = idx
	p.dense[idx] = e
	p.count++

	return p.slot(idx)
}

// get returns the entity's storage slot, or nil if the entity does not
// carry this component. The double check (bounds + back-reference) is
// required because sparse is never cleared as capacity is consumed by
// other entities; see arlecs_pool_get in the original source.
func (p *pool) get(e EntityID) unsafe.Pointer {
	if uint32(e) >= p.capacity {
		return nil
	}
	idx := p.sparse[e]
	if idx >= p.count || p.dense[idx] != e {
		return nil
	}
	return p.slot(idx)
}

// has reports whether the entity carries this component, using the same
// validity test as get.
func (p *pool) has(e EntityID) bool {
	if uint32(e) >= p.capacity {
		return false
	}
	idx := p.sparse[e]
	return idx < p.count && p.dense[idx] == e
}

// remove performs the swap-and-pop removal: the last dense element is
// moved into the vacated slot to keep the dense array contiguous. Any raw
// pointer previously returned for the entity that occupied the last slot
// now refers to the removed entity's slot — callers must not retain
// pointers across remove on the same pool.
func (p *pool) remove(e EntityID) {
	if uint32(e) >= p.capacity {
		return
	}
	idx := p.sparse[e]
	if idx == sparseSentinel {
		return
	}

	last := p.count - 1
	if idx != last {
		lastEntity := p.dense[last]
		if p.elemSize > 0 {
			copy(p.slotBytes(idx), p.slotBytes(last))
		}
		p.dense[idx] = lastEntity
		p.sparse[lastEntity] = idx
	}

	p.sparse[e] = sparseSentinel
	p.count--
}

func (p *pool) slot(index uint32) unsafe.Pointer {
	if p.elemSize == 0 {
		return nil
	}
	return unsafe.Pointer(&p.data[uintptr(index)*p.elemSize])
}

func (p *pool) slotBytes(index uint32) []byte {
	start := uintptr(index) * p.elemSize
	return p.data[start : start+p.elemSize]
}

// entityAt returns the entity stored at a dense index, used by View to
// drive iteration off the master pool's dense array directly.
func (p *pool) entityAt(index uint32) EntityID {
	return p.dense[index]
}
