package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"elevator-sequence-service/internal/api/dto"
	"elevator-sequence-service/internal/domain"
	"elevator-sequence-service/internal/platform/logger"
	"elevator-sequence-service/internal/ports"
	"elevator-sequence-service/internal/services"
)

// ScheduleHandler computes optimized stop schedules. It owns all input
// validation (floor ranges, tries bounds); the optimizer below it
// receives already-validated integers only.
type ScheduleHandler struct {
	Repo     ports.PassengerRepository
	Cache    ports.ScheduleCache
	MinFloor int
	MaxFloor int
}

// Create validates the scenario, resolves inline passengers (or defers
// to the repository), and runs the multi-objective optimizer.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.StartFloor == nil {
		writeError(w, r, http.StatusBadRequest, "start_floor is required")
		return
	}
	start := *req.StartFloor
	if start < h.MinFloor || start > h.MaxFloor {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("start_floor must be between %d and %d", h.MinFloor, h.MaxFloor))
		return
	}

	tries := req.Tries
	if tries == 0 {
		tries = 200
	}
	if tries < 0 || tries > services.MaxShuffleTries {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("tries must be between 1 and %d", services.MaxShuffleTries))
		return
	}

	passengers := make([]domain.Passenger, 0, len(req.Passengers))
	for i, p := range req.Passengers {
		if p.Pickup < h.MinFloor || p.Pickup > h.MaxFloor || p.Drop < h.MinFloor || p.Drop > h.MaxFloor {
			writeError(w, r, http.StatusBadRequest,
				fmt.Sprintf("passenger %d: floors must be between %d and %d", i+1, h.MinFloor, h.MaxFloor))
			return
		}
		passengers = append(passengers, domain.Passenger{
			ID:     i + 1,
			Pickup: p.Pickup,
			Drop:   p.Drop,
			Name:   p.Name,
		})
	}

	svcReq := services.OptimizeScheduleRequest{
		StartFloor: start,
		Tries:      tries,
		Seed:       req.Seed,
		Passengers: passengers,
	}

	result, err := services.OptimizeSchedule(r.Context(), svcReq, h.Repo, h.Cache)
	if err != nil {
		logger.Get().Error().Err(err).Msg("optimize schedule failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse(result))
}

func scheduleResponse(result *domain.ScheduleResult) dto.ScheduleResponse {
	byID := domain.PassengersByID(result.Passengers)

	res := dto.ScheduleResponse{
		StartFloor: result.StartFloor,
		Passengers: make([]dto.PassengerResponse, 0, len(result.Passengers)),
		Objectives: make([]dto.ObjectiveResponse, 0, 4),
	}

	for _, p := range result.Passengers {
		res.Passengers = append(res.Passengers, dto.PassengerResponse{
			PassengerID: p.ID,
			Pickup:      p.Pickup,
			Drop:        p.Drop,
			Name:        p.Name,
		})
	}

	for _, obj := range domain.Objectives() {
		entry := dto.ObjectiveResponse{Objective: string(obj)}

		if cand := result.Best[obj]; cand != nil {
			events := make([]dto.EventResponse, 0, len(cand.Sequence))
			for _, ev := range cand.Sequence {
				p := byID[ev.PassengerID]
				floor := p.Pickup
				if ev.Kind == domain.EventDrop {
					floor = p.Drop
				}
				events = append(events, dto.EventResponse{
					Kind:        ev.Kind.String(),
					PassengerID: ev.PassengerID,
					Floor:       floor,
				})
			}

			entry.Best = &dto.ObjectiveBestResponse{
				Sequence:       events,
				Itinerary:      services.FormatSequence(result.StartFloor, cand.Sequence, result.Passengers),
				TotalTravel:    cand.Metrics.TotalTravel,
				AvgPickupWait:  cand.Metrics.AvgPickupWait,
				MaxPickupWait:  cand.Metrics.MaxPickupWait,
				AvgArrivalTime: cand.Metrics.AvgArrivalTime,
				MaxArrivalTime: cand.Metrics.MaxArrivalTime,
			}
		}

		res.Objectives = append(res.Objectives, entry)
	}

	return res
}
