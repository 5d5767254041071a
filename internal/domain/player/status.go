package player

import (
	"sort"
	"time"
)

// ResolveStatus derives the lifecycle status of a player at ref from the
// chronological event sequences. Only signed contracts and loans count;
// the chronologically last signed contract governs. Date ranges are
// half-open: started_on <= ref < ended_on.
//
// Decision order:
//  1. no signed contract            -> StatusNone (free agent)
//  2. ref before contract start     -> StatusPending
//  3. inside the contract term      -> Injured, else Loaned (outbound
//     loan from club), else Active
//  4. ref at/after contract end     -> StatusNone (expired)
func ResolveStatus(club string, contracts []Contract, injuries []Injury, loans []Loan, ref time.Time) Status {
	contract, ok := lastSignedContract(contracts)
	if !ok {
		return StatusNone
	}

	if ref.Before(contract.StartedOn) {
		return StatusPending
	}
	if !ref.Before(contract.EndedOn) {
		return StatusNone
	}

	if injury, ok := lastInjury(injuries); ok && within(ref, injury.StartedOn, injury.EndedOn) {
		return StatusInjured
	}
	if loan, ok := lastSignedLoan(loans); ok && within(ref, loan.StartedOn, loan.EndedOn) && loan.Origin == club {
		return StatusLoaned
	}

	return StatusActive
}

// LosesKitNumber reports whether a status transition should also clear
// the player's kit number. Leaving the active squad (Active or Loaned)
// frees the shirt.
func LosesKitNumber(prev, next Status) bool {
	if prev != StatusActive && prev != StatusLoaned {
		return false
	}
	return next != StatusActive && next != StatusLoaned
}

func lastSignedContract(contracts []Contract) (Contract, bool) {
	signed := make([]Contract, 0, len(contracts))
	for _, c := range contracts {
		if c.SignedOn != nil {
			signed = append(signed, c)
		}
	}
	if len(signed) == 0 {
		return Contract{}, false
	}
	sort.SliceStable(signed, func(i, j int) bool {
		return signed[i].StartedOn.Before(signed[j].StartedOn)
	})
	return signed[len(signed)-1], true
}

func lastInjury(injuries []Injury) (Injury, bool) {
	if len(injuries) == 0 {
		return Injury{}, false
	}
	out := make([]Injury, len(injuries))
	copy(out, injuries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedOn.Before(out[j].StartedOn)
	})
	return out[len(out)-1], true
}

func lastSignedLoan(loans []Loan) (Loan, bool) {
	signed := make([]Loan, 0, len(loans))
	for _, l := range loans {
		if l.SignedOn != nil {
			signed = append(signed, l)
		}
	}
	if len(signed) == 0 {
		return Loan{}, false
	}
	sort.SliceStable(signed, func(i, j int) bool {
		return signed[i].StartedOn.Before(signed[j].StartedOn)
	})
	return signed[len(signed)-1], true
}

func within(ref, start, end time.Time) bool {
	return !ref.Before(start) && ref.Before(end)
}
