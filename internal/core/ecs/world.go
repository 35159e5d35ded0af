package ecs

import (
	"unsafe"

	"github.com/vcthuster/arlecs/internal/core/arena"
)

// World is the registry of component pools and the entity ID minter. The
// bulk data each pool carries — its sparse, dense and data arrays — lives
// inside the arena.Arena passed to CreateWorld; see CreateWorld's doc
// comment for why the World and pool header structs themselves do not.
//
// Entities are never explicitly destroyed by World; "destruction" is
// modeled by removing the entity from every pool it appears in, which is
// left to the host (see SPEC_FULL.md §3). There is no ID recycling: the
// entity counter only grows.
type World struct {
	arena *arena.Arena

	maxEntities      uint32
	entityCounter    EntityID
	componentCounter ComponentID

	pools [MaxComponentTypes]*pool

	// generation is bumped on every structural mutation (RegisterComponent,
	// AddComponent, RemoveComponent, and their typed-Pool equivalents) so
	// that an in-flight View can detect it was invalidated mid-walk. See
	// SPEC_FULL.md §5.
	generation uint64
}

// CreateWorld records maxEntities as the default capacity every
// subsequently registered component pool will get, and wires up a and
// returns the World. This follows the "auto-ID, world-wide default
// capacity" registration shape chosen in SPEC_FULL.md §4.3.
//
// The World value itself, and each pool's header struct, are ordinary Go
// heap allocations rather than arena-carved memory: both hold live Go
// pointers (to the Arena, to pool structs, to pool slice headers), and a
// manually bump-allocated []byte region carries no pointer bitmap for the
// garbage collector to scan, which would make anything reachable only
// through it collectible out from under the ECS. Only the POD payloads
// that actually benefit from the arena's contiguity guarantee — each pool's
// sparse, dense and data arrays — are arena-backed; see newPool.
func CreateWorld(a *arena.Arena, maxEntities uint32) *World {
	return &World{
		arena:       a,
		maxEntities: maxEntities,
	}
}

// RegisterComponent assigns the next free ComponentID, allocates a pool for
// it sized at elemSize bytes per element with the world's default capacity,
// and returns the ID. It fails with ErrTooManyComponentTypes once
// MaxComponentTypes registrations have already happened.
func (w *World) RegisterComponent(elemSize uintptr) (ComponentID, error) {
	if int(w.componentCounter) >= MaxComponentTypes {
		return 0, newError(ErrTooManyComponentTypes, "RegisterComponent", NullEntity, 0)
	}

	id := w.componentCounter
	p, err := newPool(w.arena, elemSize, w.maxEntities)
	if err != nil {
		return 0, err
	}

	w.pools[id] = p
	w.componentCounter++
	w.bumpGeneration()

	return id, nil
}

// CreateEntity mints a new entity ID. There is no recycling and no
// generation counter on the entity itself; the core assumes the host never
// exceeds a pool's capacity.
func (w *World) CreateEntity() EntityID {
	id := w.entityCounter
	w.entityCounter++
	return id
}

// EntityCount returns how many entities have been minted so far.
func (w *World) EntityCount() int {
	return int(w.entityCounter)
}

// poolFor resolves a ComponentID to its pool, validating range.
func (w *World) poolFor(c ComponentID) (*pool, error) {
	if int(c) >= MaxComponentTypes {
		return nil, newError(ErrComponentIDOutOfRange, "poolFor", NullEntity, c)
	}
	return w.pools[c], nil
}

// AddComponent adds the component identified by c to entity e and returns a
// pointer to its storage, freshly allocated (contents undefined) unless e
// already carries it, in which case the existing pointer is returned
// unchanged. The pool must be registered and the entity must already have
// been minted by CreateEntity.
func (w *World) AddComponent(e EntityID, c ComponentID) (unsafe.Pointer, error) {
	p, err := w.poolFor(c)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, newError(ErrUnknownComponent, "AddComponent", e, c)
	}
	if e >= w.entityCounter {
		return nil, newError(ErrUnknownEntity, "AddComponent", e, c)
	}

	ptr := p.add(e)
	w.bumpGeneration()
	return ptr, nil
}

// GetComponent returns the component c attached to e, or nil if e does not
// carry it. Unlike Add, Get tolerates an unregistered component ID by
// returning nil rather than an error. An entity not yet minted by
// CreateEntity also yields nil.
func (w *World) GetComponent(e EntityID, c ComponentID) unsafe.Pointer {
	if int(c) >= MaxComponentTypes || e >= w.entityCounter {
		return nil
	}
	p := w.pools[c]
	if p == nil {
		return nil
	}
	return p.get(e)
}

// HasComponent reports whether e carries component c.
func (w *World) HasComponent(e EntityID, c ComponentID) bool {
	if int(c) >= MaxComponentTypes {
		return false
	}
	p := w.pools[c]
	if p == nil {
		return false
	}
	return p.has(e)
}

// RemoveComponent detaches component c from e, if present. Unlike Add,
// Remove on an unregistered component ID is a no-op, not an error.
func (w *World) RemoveComponent(e EntityID, c ComponentID) {
	if int(c) >= MaxComponentTypes {
		return
	}
	p := w.pools[c]
	if p == nil {
		return
	}
	p.remove(e)
	w.bumpGeneration()
}

func (w *World) bumpGeneration() {
	w.generation++
}
