// Package components holds a small set of plain-old-data component types
// exercised by the core package's own tests and benchmarks. Their shape
// mirrors the three-component-plus-tag layout bench.c uses to demonstrate
// the view's master-pool ordering claim: a dense component every entity
// carries (Position), a sparser one most don't (Velocity), and a rare
// tag-like one (Mass) that marks a small subset of entities for systems
// like gravity to act on.
package components

import "github.com/vcthuster/arlecs/internal/core/ecs"

// Position is the component every entity in a typical world carries.
type Position struct {
	X, Y float64
}

// Velocity drives an entity's Position forward each tick. Only entities
// that move carry one.
type Velocity struct {
	DX, DY float64
}

// Life tracks a remaining lifespan; when it reaches zero a system is
// expected to reset or remove the entity.
type Life struct {
	Remaining float64
	Max       float64
}

// Mass marks an entity as participating in gravity-like interactions. It
// carries no data of its own beyond the scalar — most worlds attach it to
// a minority of entities, which is exactly the skew the master-pool
// ordering optimization is built to exploit.
type Mass struct {
	Density float64
}

// Set bundles the registered pools for this package's four component
// types so a caller can register all of them in one call instead of four.
type Set struct {
	Position *ecs.Pool[Position]
	Velocity *ecs.Pool[Velocity]
	Life     *ecs.Pool[Life]
	Mass     *ecs.Pool[Mass]
}

// Register registers Position, Velocity, Life and Mass against w, in that
// order, and returns the resulting pool handles. It fails on the first
// registration that does, leaving whichever component types already
// registered in place (the world has no rollback for partially completed
// registration batches).
func Register(w *ecs.World) (Set, error) {
	_, pos, err := ecs.Register[Position](w)
	if err != nil {
		return Set{}, err
	}
	_, vel, err := ecs.Register[Velocity](w)
	if err != nil {
		return Set{}, err
	}
	_, life, err := ecs.Register[Life](w)
	if err != nil {
		return Set{}, err
	}
	_, mass, err := ecs.Register[Mass](w)
	if err != nil {
		return Set{}, err
	}

	return Set{Position: pos, Velocity: vel, Life: life, Mass: mass}, nil
}
