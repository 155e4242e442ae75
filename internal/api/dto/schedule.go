package dto

type SchedulePassengerRequest struct {
	Pickup int    `json:"pickup"`
	Drop   int    `json:"drop"`
	Name   string `json:"name"`
}

type ScheduleRequest struct {
	// Pointer so that floor 0 is distinguishable from an absent field.
	StartFloor *int                       `json:"start_floor"`
	Tries      int                        `json:"tries"`
	Seed       int64                      `json:"seed"`
	Passengers []SchedulePassengerRequest `json:"passengers"`
}

type EventResponse struct {
	Kind        string `json:"kind"`
	PassengerID int    `json:"passenger_id"`
	Floor       int    `json:"floor"`
}

type ObjectiveBestResponse struct {
	Sequence       []EventResponse `json:"sequence"`
	Itinerary      string          `json:"itinerary"`
	TotalTravel    int             `json:"total_travel"`
	AvgPickupWait  float64         `json:"avg_pickup_wait"`
	MaxPickupWait  int             `json:"max_pickup_wait"`
	AvgArrivalTime float64         `json:"avg_arrival_time"`
	MaxArrivalTime int             `json:"max_arrival_time"`
}

type ObjectiveResponse struct {
	Objective string `json:"objective"`
	// Best is null when no candidate exists for the objective.
	Best *ObjectiveBestResponse `json:"best"`
}

type ScheduleResponse struct {
	StartFloor int                 `json:"start_floor"`
	Passengers []PassengerResponse `json:"passengers"`
	Objectives []ObjectiveResponse `json:"objectives"`
}
