package ecs

import "unsafe"

// View is a multi-pool intersection iterator: it walks entities present in
// every one of the requested component pools. It is an ordinary stack
// value, not heap-allocated by the package itself — the compiler is free to
// keep it off the heap when a caller doesn't let it escape.
//
// The FIRST component ID passed to OpenView is the "master": iteration
// drives entirely off the master pool's dense array, and every other pool
// is only ever consulted with a Has check. Because of this, total work for
// a full walk is O(master.Count() * n) in the worst case and O(master.Count())
// when the intersection is dense — but only if the master is chosen well.
// Callers should list the component expected to have the fewest live
// entities first, so the outer loop runs the fewest iterations; see
// OrderByRarity for an opt-in helper that sorts a component list by pool
// population.
//
// A View is only valid so long as no structural mutation (AddComponent,
// RemoveComponent, RegisterComponent, or their typed Pool[T] equivalents)
// happens on the World or any pool it references; see SPEC_FULL.md §5.
type View struct {
	world *World
	pools [ViewMaxComponents]*pool
	count uint32
	cursor uint32

	generation uint64

	Entity     EntityID
	Components [ViewMaxComponents]unsafe.Pointer
}

// OpenView resolves each requested component ID to a pool and returns a
// View ready for iteration. n (the number of ids) is clamped to
// ViewMaxComponents. An ID that is out of range or unregistered resolves to
// a nil pool slot, which the walk treats as "never matches" rather than as
// an error — opening with no master pool, or with n == 0, simply yields a
// View whose first Next() call returns false.
func OpenView(w *World, ids ...ComponentID) View {
	v := View{
		world:      w,
		generation: w.generation,
		Entity:     NullEntity,
	}

	n := len(ids)
	if n > ViewMaxComponents {
		n = ViewMaxComponents
	}
	v.count = uint32(n)

	for i := 0; i < n; i++ {
		id := ids[i]
		if int(id) < MaxComponentTypes {
			v.pools[i] = w.pools[id]
		}
	}

	return v
}

// Next advances the cursor to the next matching entity. It returns false
// once the master pool's dense array is exhausted, or immediately if the
// View was opened with no master pool or if the World was structurally
// mutated since OpenView (or the previous Next) ran.
func (v *View) Next() bool {
	if v.generation != v.world.generation {
		return false
	}

	master := v.pools[0]
	if master == nil {
		return false
	}

	for v.cursor < master.count {
		candidate := master.entityAt(v.cursor)

		matched := true
		for i := uint32(1); i < v.count; i++ {
			p := v.pools[i]
			if p == nil || !p.has(candidate) {
				matched = false
				break
			}
		}

		if matched {
			v.Entity = candidate
			v.Components[0] = master.slot(v.cursor)
			for i := uint32(1); i < v.count; i++ {
				v.Components[i] = v.pools[i].get(candidate)
			}
			v.cursor++
			return true
		}

		v.cursor++
	}

	return false
}

// ViewComponent casts the i-th component pointer of the view's current
// entity to *T. It is the typed counterpart to View.Components[i]; callers
// know T from the order they listed component IDs in OpenView.
func ViewComponent[T any](v *View, i int) *T {
	ptr := v.Components[i]
	if ptr == nil {
		return nil
	}
	return (*T)(ptr)
}

// OrderByRarity sorts a copy of ids by each component's current live count,
// ascending, so the caller can pass the result straight to OpenView and get
// the master-pool-first ordering the view's performance contract assumes.
// It is deliberately not run automatically inside OpenView: sorting costs
// O(n log n) on every call, which would tax the common case where the
// caller already knows the right order, and it would hide the requirement
// from anyone reading OpenView's call site.
func OrderByRarity(w *World, ids ...ComponentID) []ComponentID {
	ordered := make([]ComponentID, len(ids))
	copy(ordered, ids)

	counts := make(map[ComponentID]uint32, len(ids))
	for _, id := range ordered {
		if int(id) < MaxComponentTypes && w.pools[id] != nil {
			counts[id] = w.pools[id].count
		} else {
			counts[id] = 0
		}
	}

	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && counts[ordered[j-1]] > counts[ordered[j]]; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}

	return ordered
}
