package domain

import "fmt"

// EventKind distinguishes the two stop types an elevator performs.
type EventKind uint8

const (
	EventPickup EventKind = iota
	EventDrop
)

func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventDrop:
		return "drop"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a single elevator stop instruction for one passenger.
type Event struct {
	Kind        EventKind
	PassengerID int
}

// Sequence is an ordered list of stop events covering a passenger set.
// A well-formed sequence contains exactly one pickup and one drop per
// passenger, with the pickup strictly before the drop (the precedence
// constraint). The enumerator and the pickup-order builder only ever
// produce well-formed sequences.
type Sequence []Event

// Validate checks the precedence constraint against a passenger set:
// every passenger appears exactly once as a pickup and once as a drop,
// the pickup strictly before the drop, and no unknown ids appear.
func (s Sequence) Validate(passengers []Passenger) error {
	byID := PassengersByID(passengers)

	picked := make(map[int]bool, len(passengers))
	dropped := make(map[int]bool, len(passengers))

	for i, ev := range s {
		if _, ok := byID[ev.PassengerID]; !ok {
			return fmt.Errorf("validate sequence: event %d references unknown passenger %d", i, ev.PassengerID)
		}

		switch ev.Kind {
		case EventPickup:
			if picked[ev.PassengerID] {
				return fmt.Errorf("validate sequence: passenger %d picked up twice", ev.PassengerID)
			}
			picked[ev.PassengerID] = true
		case EventDrop:
			if !picked[ev.PassengerID] {
				return fmt.Errorf("validate sequence: passenger %d dropped before pickup", ev.PassengerID)
			}
			if dropped[ev.PassengerID] {
				return fmt.Errorf("validate sequence: passenger %d dropped twice", ev.PassengerID)
			}
			dropped[ev.PassengerID] = true
		default:
			return fmt.Errorf("validate sequence: event %d has unknown kind %d", i, ev.Kind)
		}
	}

	for _, p := range passengers {
		if !picked[p.ID] {
			return fmt.Errorf("validate sequence: passenger %d never picked up", p.ID)
		}
		if !dropped[p.ID] {
			return fmt.Errorf("validate sequence: passenger %d never dropped off", p.ID)
		}
	}

	return nil
}
