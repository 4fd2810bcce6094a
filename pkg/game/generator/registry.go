package generator

import (
	"mazegen/pkg/engine/world"
)

// setRecord is one slot of the registry arena.
type setRecord struct {
	id      int
	members []int
}

// SetRegistry tracks, for a single row, which columns belong to which set.
//
// Records live in an arena in creation order; slots maps a set ID to its
// record. Merged-away sets leave a dead record behind (id 0) so that slot
// indices stay stable for the lifetime of the row.
type SetRegistry struct {
	grid  *world.Grid
	row   int
	sets  []setRecord
	slots map[int]int
	live  int
}

// NewSetRegistry creates an empty registry for row y of grid.
func NewSetRegistry(grid *world.Grid, y int) *SetRegistry {
	return &SetRegistry{
		grid:  grid,
		row:   y,
		slots: make(map[int]int),
	}
}

// Row returns the grid row this registry describes
func (r *SetRegistry) Row() int {
	return r.row
}

// Add registers column x as a member of set id, creating the set if needed.
// It does not write to the grid.
func (r *SetRegistry) Add(id, x int) {
	if slot, ok := r.slots[id]; ok {
		r.sets[slot].members = append(r.sets[slot].members, x)
		return
	}
	r.slots[id] = len(r.sets)
	r.sets = append(r.sets, setRecord{id: id, members: []int{x}})
	r.live++
}

// Has returns true if set id has members in this row
func (r *SetRegistry) Has(id int) bool {
	_, ok := r.slots[id]
	return ok
}

// Members returns a copy of the columns registered under id, in insertion order
func (r *SetRegistry) Members(id int) []int {
	slot, ok := r.slots[id]
	if !ok {
		return nil
	}
	out := make([]int, len(r.sets[slot].members))
	copy(out, r.sets[slot].members)
	return out
}

// Len returns the number of sets present in the row
func (r *SetRegistry) Len() int {
	return r.live
}

// IDs returns the live set IDs in creation order
func (r *SetRegistry) IDs() []int {
	ids := make([]int, 0, r.live)
	for _, rec := range r.sets {
		if rec.id != 0 {
			ids = append(ids, rec.id)
		}
	}
	return ids
}

// Merge folds set from into set into. Every column of from is retagged to
// into on this registry's row of the grid and appended to into's members;
// from is then dropped. Returns false if either set is missing or they are
// the same set.
func (r *SetRegistry) Merge(into, from int) bool {
	if into == from {
		return false
	}
	dst, ok := r.slots[into]
	if !ok {
		return false
	}
	src, ok := r.slots[from]
	if !ok {
		return false
	}

	for _, x := range r.sets[src].members {
		r.grid.Set(x, r.row, into)
	}
	r.sets[dst].members = append(r.sets[dst].members, r.sets[src].members...)

	r.sets[src] = setRecord{}
	delete(r.slots, from)
	r.live--
	return true
}
