package services

import (
	"fmt"
	"strconv"
	"strings"

	"elevator-sequence-service/internal/domain"
)

// FormatSequence renders a sequence as a floor-by-floor itinerary, e.g.
// "5 → 2 (pickup Ada) → 1 (drop Ada)". Passengers without a name are
// labelled by their id.
func FormatSequence(start int, seq domain.Sequence, passengers []domain.Passenger) string {
	byID := domain.PassengersByID(passengers)

	var b strings.Builder
	b.WriteString(strconv.Itoa(start))

	for _, ev := range seq {
		p := byID[ev.PassengerID]
		floor := p.Pickup
		if ev.Kind == domain.EventDrop {
			floor = p.Drop
		}
		fmt.Fprintf(&b, " → %d (%s %s)", floor, ev.Kind, p.Label())
	}

	return b.String()
}
