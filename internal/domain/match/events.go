package match

import (
	"fmt"
	"sort"
)

// eventTime is the chronological sort key shared by all event kinds.
// Storage order is append order, not chronological; every read for
// projection purposes must sort first.
func eventTime(minute int, stoppage *int) (int, int) {
	if stoppage == nil {
		return minute, 0
	}
	return minute, *stoppage
}

func timeBefore(aMin int, aStop *int, bMin int, bStop *int) bool {
	am, as := eventTime(aMin, aStop)
	bm, bs := eventTime(bMin, bStop)
	if am != bm {
		return am < bm
	}
	return as < bs
}

// SortGoals returns the goals in chronological order. The sort is
// stable: events at the identical (minute, stoppage) keep array order.
func SortGoals(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	sort.SliceStable(out, func(i, j int) bool {
		return timeBefore(out[i].Minute, out[i].StoppageTime, out[j].Minute, out[j].StoppageTime)
	})
	return out
}

// SortBookings returns the bookings in chronological order, stable.
func SortBookings(bookings []Booking) []Booking {
	out := make([]Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return timeBefore(out[i].Minute, out[i].StoppageTime, out[j].Minute, out[j].StoppageTime)
	})
	return out
}

// SortChanges returns the substitutions in chronological order, stable.
func SortChanges(changes []Change) []Change {
	out := make([]Change, len(changes))
	copy(out, changes)
	sort.SliceStable(out, func(i, j int) bool {
		return timeBefore(out[i].Minute, out[i].StoppageTime, out[j].Minute, out[j].StoppageTime)
	})
	return out
}

var stoppageBoundaries = map[int]struct{}{45: {}, 90: {}, 105: {}, 120: {}}

// ValidateEventTime enforces the minute invariant: minutes run within
// [1, 90], or [1, 120] when the match went to extra time, and stoppage
// time may only be set at a period boundary.
func ValidateEventTime(minute int, stoppage *int, extraTime bool) error {
	limit := RegulationLength
	if extraTime {
		limit = ExtraTimeLength
	}
	if minute < 1 || minute > limit {
		return fmt.Errorf("event minute must be within [1, %d]: %d", limit, minute)
	}
	if stoppage != nil {
		if _, ok := stoppageBoundaries[minute]; !ok {
			return fmt.Errorf("stoppage time is only valid at a period boundary, not minute %d", minute)
		}
		if *stoppage < 0 {
			return fmt.Errorf("stoppage time cannot be negative: %d", *stoppage)
		}
	}
	return nil
}
