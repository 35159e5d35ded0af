// Package ecs implements a single-threaded, fixed-capacity sparse-set ECS
// data engine: a registry of per-component-type Pools (O(1) insertion,
// removal and lookup with dense, cache-friendly iteration) backed entirely
// by an arena.Arena, plus a multi-component View that walks the
// intersection of several pools.
//
// The package deliberately does not grow pools, recycle entity IDs, or
// schedule work across goroutines — see the closing non-goal list of
// SPEC_FULL.md. Everything here runs
// synchronously on whatever goroutine calls it.
package ecs

// EntityID is a stable index into every pool's sparse array. Entities carry
// no data of their own; they are purely keys.
type EntityID uint32

// NullEntity is the sentinel used inside a pool's sparse slots to mean
// "absent", and inside an in-flight View to mean "no current entity".
const NullEntity EntityID = ^EntityID(0)

// ComponentID identifies a registered component type.
type ComponentID uint8

// MaxComponentTypes bounds how many distinct component types a single World
// may register.
const MaxComponentTypes = 32

// ViewMaxComponents bounds how many pools a single View may walk at once.
const ViewMaxComponents = 8
