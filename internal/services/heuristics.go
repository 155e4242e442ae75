package services

import (
	"math/rand"
	"slices"

	"elevator-sequence-service/internal/domain"
)

// DropPolicy controls how drop events are scheduled relative to pickups
// when a sequence is built from a pickup ordering.
type DropPolicy int

const (
	// DropImmediate appends each passenger's drop right after their
	// pickup, detouring to every drop before the next pickup.
	DropImmediate DropPolicy = iota
	// DropDeferNearest performs all pickups first, then services the
	// remaining drops greedily by nearest drop floor.
	DropDeferNearest
)

// MaxShuffleTries caps the number of randomized pickup orders evaluated
// per call regardless of the requested tries.
const MaxShuffleTries = 500

// PickupPermutationLimit bounds the exhaustive pickup-permutation
// enrichment used by the selector. Permutations of pickups grow as n!,
// far slower than full event interleavings.
const PickupPermutationLimit = 8

// BuildSequenceFromPickupOrder expands an ordering of pickups into a
// full event sequence under the given drop policy. The result satisfies
// the precedence constraint by construction, so no validation pass is
// needed.
func BuildSequenceFromPickupOrder(start int, passengers []domain.Passenger, pickupOrder []int, policy DropPolicy) domain.Sequence {
	byID := domain.PassengersByID(passengers)

	seq := make(domain.Sequence, 0, 2*len(pickupOrder))
	current := start
	remaining := make([]int, 0, len(pickupOrder))

	for _, id := range pickupOrder {
		seq = append(seq, domain.Event{Kind: domain.EventPickup, PassengerID: id})
		current = byID[id].Pickup

		if policy == DropImmediate {
			seq = append(seq, domain.Event{Kind: domain.EventDrop, PassengerID: id})
			current = byID[id].Drop
			continue
		}
		remaining = append(remaining, id)
	}

	// Service deferred drops nearest-first from the floor of the last
	// stop. Ties go to the lowest passenger id.
	slices.Sort(remaining)
	for len(remaining) > 0 {
		bestIdx := 0
		bestDist := abs(byID[remaining[0]].Drop - current)
		for i, id := range remaining[1:] {
			if d := abs(byID[id].Drop - current); d < bestDist {
				bestDist = d
				bestIdx = i + 1
			}
		}

		id := remaining[bestIdx]
		seq = append(seq, domain.Event{Kind: domain.EventDrop, PassengerID: id})
		current = byID[id].Drop
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return seq
}

// HeuristicCandidates returns candidate sequences for scenarios beyond
// exhaustive reach: nearest-pickup-first, farthest-pickup-first, then
// up to min(tries, MaxShuffleTries) uniformly shuffled pickup orders
// drawn from rng. The first two candidates are deterministic and do not
// depend on rng.
func HeuristicCandidates(start int, passengers []domain.Passenger, tries int, rng *rand.Rand) []domain.Sequence {
	ids := sortedIDs(passengers)
	byID := domain.PassengersByID(passengers)

	nearest := slices.Clone(ids)
	slices.SortStableFunc(nearest, func(a, b int) int {
		return abs(byID[a].Pickup-start) - abs(byID[b].Pickup-start)
	})

	farthest := slices.Clone(nearest)
	slices.Reverse(farthest)

	shuffles := min(tries, MaxShuffleTries)
	if rng == nil {
		shuffles = 0
	}

	candidates := make([]domain.Sequence, 0, 2+shuffles)
	candidates = append(candidates,
		BuildSequenceFromPickupOrder(start, passengers, nearest, DropDeferNearest),
		BuildSequenceFromPickupOrder(start, passengers, farthest, DropDeferNearest),
	)

	for i := 0; i < shuffles; i++ {
		order := slices.Clone(ids)
		rng.Shuffle(len(order), func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})
		candidates = append(candidates, BuildSequenceFromPickupOrder(start, passengers, order, DropDeferNearest))
	}

	return candidates
}
