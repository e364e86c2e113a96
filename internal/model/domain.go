package model

import "maps"

// Timeslot is a half-open interval [Start, End) of discrete time units.
type Timeslot struct {
	Start uint64
	End   uint64
}

// Checks whether the two timeslots share at least one time unit
func (slot Timeslot) Overlaps(other Timeslot) bool {
	return slot.Start < other.End && other.Start < slot.End
}

// Subject is an immutable teaching unit identified by Id. Eligible holds the
// ids of the faculty members permitted to teach it.
type Subject struct {
	Id       uint64
	Name     string
	Eligible map[uint64]bool
	Slot     Timeslot
}

// Faculty is an immutable faculty member identified by Id. Capacity bounds
// the number of subjects it may carry within one solution.
type Faculty struct {
	Id       uint64
	Name     string
	Capacity uint64
}

// Assignment maps every subject id to exactly one faculty id. It is the
// mutable search state: infeasible mappings are representable on purpose and
// penalized by the scorer rather than rejected structurally.
type Assignment map[uint64]uint64

func (assignment Assignment) Clone() Assignment {
	return maps.Clone(assignment)
}

// Load returns the number of subjects mapped to the faculty
func (assignment Assignment) Load(faculty uint64) uint64 {
	var load uint64
	for _, assigned := range assignment {
		if assigned == faculty {
			load++
		}
	}
	return load
}
