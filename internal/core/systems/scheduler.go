// Package systems provides the external scheduler collaborator the core
// ecs package assumes but does not implement itself: named callbacks,
// tagged with a phase, run in registration order against a world.
package systems

import "github.com/vcthuster/arlecs/internal/core/ecs"

// Phase identifies when a registered system runs relative to a host's own
// frame structure. The core package never interprets these values itself —
// it is purely a tag the scheduler groups systems by.
type Phase int

const (
	PhaseStartup Phase = iota
	PhaseUpdate
	PhaseRender
	PhaseManual
)

// Func is a system callback: it mutates world state (and, by convention,
// nothing else) for one tick. ctx carries whatever per-tick data the host
// wants available — a delta time, an input snapshot, anything — without
// the scheduler needing to know its shape.
type Func func(w *ecs.World, ctx any)

type system struct {
	name   string
	phase  Phase
	fn     Func
	active bool
}

// Scheduler holds a fixed-order list of named, phase-tagged systems and
// runs them single-threaded, in registration order, skipping inactive
// ones — the same contract arlecs_sys_run_all/arlecs_sys_run_phase expose.
type Scheduler struct {
	systems []system
}

// NewScheduler returns an empty Scheduler ready for Register calls.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends a new system under name, tagged with phase, active by
// default. Registering two systems under the same name is legal; SetActive
// then affects every system sharing that name.
func (s *Scheduler) Register(name string, phase Phase, fn Func) {
	s.systems = append(s.systems, system{name: name, phase: phase, fn: fn, active: true})
}

// SetActive flips the active flag of every system registered under name.
// A name with no matching system is a silent no-op, matching the original
// scheduler's linear scan-and-skip behavior.
func (s *Scheduler) SetActive(name string, active bool) {
	for i := range s.systems {
		if s.systems[i].name == name {
			s.systems[i].active = active
		}
	}
}

// RunPhase runs every active system tagged with phase, in registration
// order.
func (s *Scheduler) RunPhase(w *ecs.World, phase Phase, ctx any) {
	for _, sys := range s.systems {
		if sys.active && sys.phase == phase {
			sys.fn(w, ctx)
		}
	}
}

// RunAll runs every active system regardless of phase, in registration
// order.
func (s *Scheduler) RunAll(w *ecs.World, ctx any) {
	for _, sys := range s.systems {
		if sys.active {
			sys.fn(w, ctx)
		}
	}
}
