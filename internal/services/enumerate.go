package services

import (
	"errors"
	"fmt"
	"slices"

	"elevator-sequence-service/internal/domain"
)

// ExactEnumLimit bounds exhaustive enumeration of event orders. The
// number of valid orders for n passengers is (2n)!/2^n, which outgrows
// any evaluation budget quickly.
const ExactEnumLimit = 6

// ErrTooManyPassengers is returned when exact enumeration is requested
// above ExactEnumLimit.
var ErrTooManyPassengers = errors.New("too many passengers for exact enumeration")

// EnumerateValidOrders produces every event order satisfying the
// precedence constraint, each exactly once, and passes completed
// sequences to visit. Branching is pickups first, then drops, each in
// ascending passenger id order, so the output order is stable across
// calls.
//
// The sequence passed to visit is reused between calls; visit must
// copy anything it retains.
func EnumerateValidOrders(passengers []domain.Passenger, visit func(domain.Sequence)) error {
	n := len(passengers)
	if n > ExactEnumLimit {
		return fmt.Errorf("enumerate valid orders: %w (n=%d, limit=%d)", ErrTooManyPassengers, n, ExactEnumLimit)
	}

	if n == 0 {
		visit(domain.Sequence{})
		return nil
	}

	ids := sortedIDs(passengers)
	picked := make(map[int]bool, n)
	dropped := make(map[int]bool, n)
	seq := make(domain.Sequence, 0, 2*n)

	var backtrack func()
	backtrack = func() {
		if len(seq) == 2*n {
			visit(seq)
			return
		}

		for _, id := range ids {
			if picked[id] {
				continue
			}
			picked[id] = true
			seq = append(seq, domain.Event{Kind: domain.EventPickup, PassengerID: id})
			backtrack()
			seq = seq[:len(seq)-1]
			picked[id] = false
		}

		for _, id := range ids {
			if !picked[id] || dropped[id] {
				continue
			}
			dropped[id] = true
			seq = append(seq, domain.Event{Kind: domain.EventDrop, PassengerID: id})
			backtrack()
			seq = seq[:len(seq)-1]
			dropped[id] = false
		}
	}
	backtrack()

	return nil
}

func sortedIDs(passengers []domain.Passenger) []int {
	ids := make([]int, 0, len(passengers))
	for _, p := range passengers {
		ids = append(ids, p.ID)
	}
	slices.Sort(ids)
	return ids
}
