package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"elevator-sequence-service/internal/domain"
	"elevator-sequence-service/internal/platform/logger"
	"elevator-sequence-service/internal/platform/obs"
	"elevator-sequence-service/internal/ports"
)

type OptimizeScheduleRequest struct {
	StartFloor int
	Tries      int
	Seed       int64
	Passengers []domain.Passenger // optional; repository used when empty
}

// OptimizeSchedule orchestrates one optimization call: it resolves the
// passenger set, filters zero-distance requests at the boundary,
// consults the schedule cache, and runs the multi-objective selector.
//
// Cache failures are logged and treated as misses; they never fail the
// call.
func OptimizeSchedule(
	ctx context.Context,
	req OptimizeScheduleRequest,
	repo ports.PassengerRepository,
	cache ports.ScheduleCache,
) (_ *domain.ScheduleResult, err error) {
	defer obs.Time(ctx, "services.OptimizeSchedule")(&err)

	passengers := req.Passengers
	if len(passengers) == 0 {
		if repo == nil {
			return nil, errors.New("optimize schedule: no passengers given and no repository configured")
		}
		passengers, err = repo.ListPassengers(ctx)
		if err != nil {
			return nil, fmt.Errorf("optimize schedule: list passengers: %w", err)
		}
	}

	// Zero-distance requests are a boundary concern: drop them here so
	// the core never sees pickup == drop.
	kept := make([]domain.Passenger, 0, len(passengers))
	for _, p := range passengers {
		if p.Pickup == p.Drop {
			logger.Get().Warn().
				Int("passenger_id", p.ID).
				Int("floor", p.Pickup).
				Msg("ignoring zero-distance passenger")
			continue
		}
		kept = append(kept, p)
	}

	key := requestKey(req.StartFloor, req.Tries, req.Seed, kept)
	if cache != nil {
		cached, ok, cerr := cache.Get(ctx, key)
		if cerr != nil {
			logger.Get().Warn().Err(cerr).Msg("schedule cache get failed; recomputing")
		} else if ok {
			return cached, nil
		}
	}

	rng := rand.New(rand.NewSource(req.Seed))
	best := FindBestSequences(req.StartFloor, kept, req.Tries, rng)

	result := &domain.ScheduleResult{
		StartFloor: req.StartFloor,
		Passengers: kept,
		Best:       best,
	}

	if cache != nil {
		if cerr := cache.Put(ctx, key, result); cerr != nil {
			logger.Get().Warn().Err(cerr).Msg("schedule cache put failed")
		}
	}

	return result, nil
}

// requestKey fingerprints a scenario so identical requests share a
// cache entry. Passengers are hashed in id order, so permutations of
// the same request map to the same key. Names are length-prefixed so
// that delimiter characters inside a name cannot collide with the
// field encoding of another scenario.
func requestKey(start, tries int, seed int64, passengers []domain.Passenger) string {
	sorted := slices.Clone(passengers)
	slices.SortFunc(sorted, func(a, b domain.Passenger) int { return a.ID - b.ID })

	h := sha256.New()
	fmt.Fprintf(h, "start=%d;tries=%d;seed=%d", start, tries, seed)
	for _, p := range sorted {
		fmt.Fprintf(h, ";%d:%d:%d:%d:%s", p.ID, p.Pickup, p.Drop, len(p.Name), p.Name)
	}

	return "schedule:" + hex.EncodeToString(h.Sum(nil))
}
