package api

import (
	"context"
	"sync/atomic"

	"github.com/andesvia/boleteria/internal/model"
)

// TripFetcher serializes trip-occupancy fetches under a last-wins
// rule: every Fetch opens a new generation, and a response whose
// generation has been superseded is reported stale so the caller
// discards it.  Without this, a slow response to an earlier refresh
// could land after a newer one and resurrect outdated occupancy.
type TripFetcher struct {
	client *Client
	gen    atomic.Uint64
}

// NewTripFetcher wraps a client.
func NewTripFetcher(c *Client) *TripFetcher {
	if c == nil {
		panic("nil client passed to api.NewTripFetcher")
	}
	return &TripFetcher{client: c}
}

// Fetch retrieves the trip.  The stale result is true when a newer
// Fetch was issued while this one was in flight; the trip and error
// must then be ignored, whatever they are.
func (f *TripFetcher) Fetch(ctx context.Context, tripID uint64) (trip model.Trip, stale bool, err error) {
	gen := f.gen.Add(1)
	trip, err = f.client.GetTrip(ctx, tripID)
	if f.gen.Load() != gen {
		return model.Trip{}, true, nil
	}
	return trip, false, err
}
