package dto

type PassengerResponse struct {
	PassengerID int    `json:"passenger_id"`
	Pickup      int    `json:"pickup"`
	Drop        int    `json:"drop"`
	Name        string `json:"name,omitempty"`
}

type ListPassengersResponse struct {
	Passengers []PassengerResponse `json:"passengers"`
}
