package services

import (
	"elevator-sequence-service/internal/domain"
)

// SimulateEvents walks the elevator through the given event sequence
// and returns its timing metrics. Time is measured in floors travelled,
// one unit per floor, starting at zero from the start floor.
//
// The sequence is assumed to satisfy the precedence constraint and is
// not re-validated here; a malformed sequence yields meaningless but
// well-defined metrics, since each event is just a floor lookup.
// The function is pure: repeated calls on the same inputs return
// identical results.
func SimulateEvents(seq domain.Sequence, start int, passengers []domain.Passenger) domain.SimulationResult {
	byID := domain.PassengersByID(passengers)

	elapsed := 0
	current := start
	pickupTimes := make(map[int]int, len(passengers))
	arrivalTimes := make(map[int]int, len(passengers))

	for _, ev := range seq {
		p := byID[ev.PassengerID]
		floor := p.Pickup
		if ev.Kind == domain.EventDrop {
			floor = p.Drop
		}

		elapsed += abs(floor - current)
		current = floor

		if ev.Kind == domain.EventPickup {
			pickupTimes[ev.PassengerID] = elapsed
		} else {
			arrivalTimes[ev.PassengerID] = elapsed
		}
	}

	result := domain.SimulationResult{
		TotalTravel:  elapsed,
		PickupTimes:  pickupTimes,
		ArrivalTimes: arrivalTimes,
	}

	n := len(passengers)
	if n == 0 {
		return result
	}

	totalArrival := 0
	for _, p := range passengers {
		wait := pickupTimes[p.ID]
		result.TotalPickupWait += wait
		if wait > result.MaxPickupWait {
			result.MaxPickupWait = wait
		}

		arrival := arrivalTimes[p.ID]
		totalArrival += arrival
		if arrival > result.MaxArrivalTime {
			result.MaxArrivalTime = arrival
		}
	}

	result.AvgPickupWait = float64(result.TotalPickupWait) / float64(n)
	result.AvgArrivalTime = float64(totalArrival) / float64(n)

	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
