package handlers

import (
	"net/http"

	"elevator-sequence-service/internal/api/dto"
	"elevator-sequence-service/internal/platform/logger"
	"elevator-sequence-service/internal/ports"
)

// PassengerHandler exposes read-only passenger retrieval endpoints.
type PassengerHandler struct {
	Repo ports.PassengerRepository
}

func (h *PassengerHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	passengers, err := h.Repo.ListPassengers(r.Context())
	if err != nil {
		logger.Get().Error().Err(err).Msg("list passengers failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPassengersResponse{
		Passengers: make([]dto.PassengerResponse, 0, len(passengers)),
	}
	for _, p := range passengers {
		res.Passengers = append(res.Passengers, dto.PassengerResponse{
			PassengerID: p.ID,
			Pickup:      p.Pickup,
			Drop:        p.Drop,
			Name:        p.Name,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
