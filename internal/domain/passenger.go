package domain

import "strconv"

// Represents a single elevator request: board at the pickup floor,
// leave at the drop floor. Passengers are immutable once constructed
// and live for the duration of one optimization call.
// Pickup != Drop is enforced at the boundary; the core assumes it holds.
type Passenger struct {
	ID     int
	Pickup int
	Drop   int
	Name   string
}

// Label returns the display name, falling back to the numeric id.
func (p Passenger) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return strconv.Itoa(p.ID)
}

// PassengersByID indexes a passenger list by id.
func PassengersByID(passengers []Passenger) map[int]Passenger {
	byID := make(map[int]Passenger, len(passengers))
	for _, p := range passengers {
		byID[p.ID] = p
	}
	return byID
}
