package services

import (
	"math/rand"
	"slices"
	"testing"

	"elevator-sequence-service/internal/domain"
)

func TestBuildSequenceFromPickupOrderImmediate(t *testing.T) {
	passengers := threePassengers()

	seq := BuildSequenceFromPickupOrder(5, passengers, []int{2, 1, 3}, DropImmediate)

	want := domain.Sequence{
		{Kind: domain.EventPickup, PassengerID: 2},
		{Kind: domain.EventDrop, PassengerID: 2},
		{Kind: domain.EventPickup, PassengerID: 1},
		{Kind: domain.EventDrop, PassengerID: 1},
		{Kind: domain.EventPickup, PassengerID: 3},
		{Kind: domain.EventDrop, PassengerID: 3},
	}
	if !slices.Equal(seq, want) {
		t.Fatalf("sequence = %v, want %v", seq, want)
	}
}

func TestBuildSequenceFromPickupOrderDeferNearest(t *testing.T) {
	// Last pickup is floor 15 (p3); nearest drops from there are
	// 19 (p3, distance 4), then 6 (p2), then 1 (p1).
	passengers := threePassengers()

	seq := BuildSequenceFromPickupOrder(5, passengers, []int{1, 2, 3}, DropDeferNearest)

	want := domain.Sequence{
		{Kind: domain.EventPickup, PassengerID: 1},
		{Kind: domain.EventPickup, PassengerID: 2},
		{Kind: domain.EventPickup, PassengerID: 3},
		{Kind: domain.EventDrop, PassengerID: 3},
		{Kind: domain.EventDrop, PassengerID: 2},
		{Kind: domain.EventDrop, PassengerID: 1},
	}
	if !slices.Equal(seq, want) {
		t.Fatalf("sequence = %v, want %v", seq, want)
	}

	if err := seq.Validate(passengers); err != nil {
		t.Fatalf("builder emitted invalid sequence: %v", err)
	}
}

func TestBuildSequenceFromPickupOrderDropTie(t *testing.T) {
	// Both drops are 2 floors from the last pickup; the lower id wins.
	passengers := []domain.Passenger{
		{ID: 1, Pickup: 0, Drop: 3},
		{ID: 2, Pickup: 5, Drop: 7},
	}

	seq := BuildSequenceFromPickupOrder(0, passengers, []int{1, 2}, DropDeferNearest)

	want := domain.Sequence{
		{Kind: domain.EventPickup, PassengerID: 1},
		{Kind: domain.EventPickup, PassengerID: 2},
		{Kind: domain.EventDrop, PassengerID: 1},
		{Kind: domain.EventDrop, PassengerID: 2},
	}
	if !slices.Equal(seq, want) {
		t.Fatalf("sequence = %v, want %v", seq, want)
	}
}

func TestHeuristicCandidatesDeterministicLeaders(t *testing.T) {
	// Nine passengers, above both the exact and permutation limits.
	passengers := makePassengers(9)

	a := HeuristicCandidates(3, passengers, 50, rand.New(rand.NewSource(1)))
	b := HeuristicCandidates(3, passengers, 50, rand.New(rand.NewSource(99)))

	if len(a) != 52 || len(b) != 52 {
		t.Fatalf("candidate counts = %d, %d, want 52", len(a), len(b))
	}

	// Nearest-first and farthest-first do not depend on the seed.
	for i := 0; i < 2; i++ {
		if !slices.Equal(a[i], b[i]) {
			t.Errorf("candidate %d differs across seeds: %v vs %v", i, a[i], b[i])
		}
	}

	for i, seq := range a {
		if err := seq.Validate(passengers); err != nil {
			t.Fatalf("candidate %d invalid: %v", i, err)
		}
	}
}

func TestHeuristicCandidatesReproducible(t *testing.T) {
	passengers := makePassengers(9)

	a := HeuristicCandidates(3, passengers, 20, rand.New(rand.NewSource(7)))
	b := HeuristicCandidates(3, passengers, 20, rand.New(rand.NewSource(7)))

	if len(a) != len(b) {
		t.Fatalf("candidate counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			t.Fatalf("candidate %d differs under the same seed", i)
		}
	}
}

func TestHeuristicCandidatesTriesCap(t *testing.T) {
	passengers := makePassengers(9)

	got := HeuristicCandidates(3, passengers, 10_000, rand.New(rand.NewSource(1)))
	if len(got) != 2+MaxShuffleTries {
		t.Fatalf("candidate count = %d, want %d", len(got), 2+MaxShuffleTries)
	}
}
