package domain

// SimulationResult holds the timing metrics computed for one fixed
// event sequence. Time is measured in floors travelled, one unit per
// floor. It is recomputed per sequence and never persisted unless it
// becomes a running best.
type SimulationResult struct {
	TotalTravel     int
	PickupTimes     map[int]int
	ArrivalTimes    map[int]int
	TotalPickupWait int
	AvgPickupWait   float64
	MaxPickupWait   int
	AvgArrivalTime  float64
	MaxArrivalTime  int
}

// Objective names one of the independently minimized scalar metrics.
type Objective string

const (
	MinAvgPickupWait  Objective = "min_avg_pickup_wait"
	MinMaxPickupWait  Objective = "min_max_pickup_wait"
	MinTotalTravel    Objective = "min_total_travel"
	MinAvgArrivalTime Objective = "min_avg_arrival_time"
)

// Objectives returns every objective in reporting order.
func Objectives() []Objective {
	return []Objective{MinAvgPickupWait, MinMaxPickupWait, MinTotalTravel, MinAvgArrivalTime}
}

// Candidate pairs an event sequence with its simulated metrics.
type Candidate struct {
	Sequence Sequence
	Metrics  SimulationResult
}

// BestSet maps each objective to the best candidate observed, or nil
// when no candidate was evaluated. Entries are independent bests per
// objective, not a joint optimum.
type BestSet map[Objective]*Candidate

// NewBestSet returns a BestSet with every objective present and empty.
func NewBestSet() BestSet {
	best := make(BestSet, 4)
	for _, obj := range Objectives() {
		best[obj] = nil
	}
	return best
}

// ScheduleResult is the full outcome of one optimization call: the
// scenario that was actually evaluated (after boundary filtering) and
// the per-objective winners.
type ScheduleResult struct {
	StartFloor int
	Passengers []Passenger
	Best       BestSet
}
