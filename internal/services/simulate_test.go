package services

import (
	"reflect"
	"testing"

	"elevator-sequence-service/internal/domain"
)

func threePassengers() []domain.Passenger {
	return []domain.Passenger{
		{ID: 1, Pickup: 2, Drop: 1},
		{ID: 2, Pickup: 10, Drop: 6},
		{ID: 3, Pickup: 15, Drop: 19},
	}
}

func TestSimulateEventsMetrics(t *testing.T) {
	passengers := threePassengers()

	seq := domain.Sequence{
		{Kind: domain.EventPickup, PassengerID: 1},
		{Kind: domain.EventDrop, PassengerID: 1},
		{Kind: domain.EventPickup, PassengerID: 2},
		{Kind: domain.EventDrop, PassengerID: 2},
		{Kind: domain.EventPickup, PassengerID: 3},
		{Kind: domain.EventDrop, PassengerID: 3},
	}

	// Travel: 5→2→1→10→6→15→19 = 3+1+9+4+9+4 floors.
	res := SimulateEvents(seq, 5, passengers)

	if res.TotalTravel != 30 {
		t.Errorf("TotalTravel = %d, want 30", res.TotalTravel)
	}
	if got := res.PickupTimes[1]; got != 3 {
		t.Errorf("pickup time p1 = %d, want 3", got)
	}
	if got := res.ArrivalTimes[1]; got != 4 {
		t.Errorf("arrival time p1 = %d, want 4", got)
	}
	if got := res.PickupTimes[3]; got != 26 {
		t.Errorf("pickup time p3 = %d, want 26", got)
	}
	if got := res.ArrivalTimes[3]; got != 30 {
		t.Errorf("arrival time p3 = %d, want 30", got)
	}
	if res.TotalPickupWait != 42 {
		t.Errorf("TotalPickupWait = %d, want 42", res.TotalPickupWait)
	}
	if res.AvgPickupWait != 14 {
		t.Errorf("AvgPickupWait = %v, want 14", res.AvgPickupWait)
	}
	if res.MaxPickupWait != 26 {
		t.Errorf("MaxPickupWait = %d, want 26", res.MaxPickupWait)
	}
	if res.AvgArrivalTime != 17 {
		t.Errorf("AvgArrivalTime = %v, want 17", res.AvgArrivalTime)
	}
	if res.MaxArrivalTime != 30 {
		t.Errorf("MaxArrivalTime = %d, want 30", res.MaxArrivalTime)
	}
}

func TestSimulateEventsDeterministic(t *testing.T) {
	passengers := threePassengers()

	seq := domain.Sequence{
		{Kind: domain.EventPickup, PassengerID: 2},
		{Kind: domain.EventPickup, PassengerID: 1},
		{Kind: domain.EventDrop, PassengerID: 2},
		{Kind: domain.EventDrop, PassengerID: 1},
	}

	first := SimulateEvents(seq, 5, passengers)
	second := SimulateEvents(seq, 5, passengers)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated simulation differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestSimulateEventsSinglePassenger(t *testing.T) {
	passengers := []domain.Passenger{{ID: 1, Pickup: 0, Drop: 10}}
	seq := domain.Sequence{
		{Kind: domain.EventPickup, PassengerID: 1},
		{Kind: domain.EventDrop, PassengerID: 1},
	}

	res := SimulateEvents(seq, 0, passengers)

	if res.TotalTravel != 10 {
		t.Errorf("TotalTravel = %d, want 10", res.TotalTravel)
	}
	if res.PickupTimes[1] != 0 {
		t.Errorf("pickup time = %d, want 0", res.PickupTimes[1])
	}
	if res.ArrivalTimes[1] != 10 {
		t.Errorf("arrival time = %d, want 10", res.ArrivalTimes[1])
	}
	if res.AvgPickupWait != 0 || res.MaxPickupWait != 0 {
		t.Errorf("pickup waits = (%v, %d), want zero", res.AvgPickupWait, res.MaxPickupWait)
	}
	if res.AvgArrivalTime != 10 || res.MaxArrivalTime != 10 {
		t.Errorf("arrival metrics = (%v, %d), want 10", res.AvgArrivalTime, res.MaxArrivalTime)
	}
}
