package services

import (
	"math"
	"math/rand"
	"slices"

	"elevator-sequence-service/internal/domain"
)

// FindBestSequences evaluates candidate event orders for the given
// scenario and returns the best sequence per objective.
//
// When n <= ExactEnumLimit the candidate pool is the full exact
// enumeration; above the limit it is the heuristic candidate set.
// Whenever n <= PickupPermutationLimit, sequences built from every
// pickup permutation under both drop policies are added as enrichment.
// Overlap between the exact pool and the permutation enrichment is
// tolerated: duplicates only waste evaluation, never change the result.
//
// With zero passengers every objective stays absent; the selector never
// fabricates a degenerate answer.
func FindBestSequences(start int, passengers []domain.Passenger, tries int, rng *rand.Rand) domain.BestSet {
	best := domain.NewBestSet()

	n := len(passengers)
	if n == 0 {
		return best
	}

	consider := func(seq domain.Sequence) {
		foldBest(best, seq, SimulateEvents(seq, start, passengers))
	}

	if n <= ExactEnumLimit {
		// The guard above makes the limit error unreachable here.
		_ = EnumerateValidOrders(passengers, consider)
	} else {
		for _, seq := range HeuristicCandidates(start, passengers, tries, rng) {
			consider(seq)
		}
	}

	if n <= PickupPermutationLimit {
		forEachPermutation(sortedIDs(passengers), func(order []int) {
			consider(BuildSequenceFromPickupOrder(start, passengers, order, DropDeferNearest))
			consider(BuildSequenceFromPickupOrder(start, passengers, order, DropImmediate))
		})
	}

	return best
}

// foldBest folds one evaluated candidate into the running bests,
// applying each objective's comparison and tie-break chain. The
// sequence is cloned only when retained.
func foldBest(best domain.BestSet, seq domain.Sequence, m domain.SimulationResult) {
	retain := func(obj domain.Objective) {
		best[obj] = &domain.Candidate{Sequence: slices.Clone(seq), Metrics: m}
	}

	// Smaller average pickup wait wins; ties fall to total travel.
	if cur := best[domain.MinAvgPickupWait]; cur == nil ||
		m.AvgPickupWait < cur.Metrics.AvgPickupWait ||
		(closeEnough(m.AvgPickupWait, cur.Metrics.AvgPickupWait) && m.TotalTravel < cur.Metrics.TotalTravel) {
		retain(domain.MinAvgPickupWait)
	}

	// Smaller max pickup wait wins; ties fall to average pickup wait,
	// then total travel.
	if cur := best[domain.MinMaxPickupWait]; cur == nil ||
		m.MaxPickupWait < cur.Metrics.MaxPickupWait ||
		(m.MaxPickupWait == cur.Metrics.MaxPickupWait &&
			(m.AvgPickupWait < cur.Metrics.AvgPickupWait ||
				(closeEnough(m.AvgPickupWait, cur.Metrics.AvgPickupWait) && m.TotalTravel < cur.Metrics.TotalTravel))) {
		retain(domain.MinMaxPickupWait)
	}

	// Smaller total travel wins; first candidate at the minimum is kept.
	if cur := best[domain.MinTotalTravel]; cur == nil || m.TotalTravel < cur.Metrics.TotalTravel {
		retain(domain.MinTotalTravel)
	}

	// Smaller average arrival time wins; ties fall to total travel.
	if cur := best[domain.MinAvgArrivalTime]; cur == nil ||
		m.AvgArrivalTime < cur.Metrics.AvgArrivalTime ||
		(closeEnough(m.AvgArrivalTime, cur.Metrics.AvgArrivalTime) && m.TotalTravel < cur.Metrics.TotalTravel) {
		retain(domain.MinAvgArrivalTime)
	}
}

// closeEnough reports approximate float equality with a relative
// tolerance of 1e-9, used for tie detection on averaged metrics.
func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

// forEachPermutation visits every permutation of ids exactly once in a
// stable order. The order slice is reused between calls.
func forEachPermutation(ids []int, visit func([]int)) {
	order := slices.Clone(ids)

	var recurse func(k int)
	recurse = func(k int) {
		if k == len(order) {
			visit(order)
			return
		}
		for i := k; i < len(order); i++ {
			order[k], order[i] = order[i], order[k]
			recurse(k + 1)
			order[k], order[i] = order[i], order[k]
		}
	}
	recurse(0)
}
