package api

import (
	"net/http"

	"elevator-sequence-service/internal/api/handlers"
	"elevator-sequence-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters. cache may be nil when no Redis is configured.
func NewRouter(repo ports.PassengerRepository, cache ports.ScheduleCache, minFloor, maxFloor int) http.Handler {
	mux := http.NewServeMux()

	passengerHandler := &handlers.PassengerHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Repo:     repo,
		Cache:    cache,
		MinFloor: minFloor,
		MaxFloor: maxFloor,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/passengers", passengerHandler.List)
	mux.HandleFunc("/schedules", scheduleHandler.Create)

	return loggingMiddleware(mux)
}
