// Package sale implements the submission flow: validate the selection,
// build the request exactly once, hand it to the sale collaborator and
// reconcile local seat state with the server's answer.
package sale

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/andesvia/boleteria/internal/api"
	"github.com/andesvia/boleteria/internal/model"
	"github.com/andesvia/boleteria/internal/seatmap"
)

// SaleAPI is the sale collaborator contract.
type SaleAPI interface {
	SubmitSale(ctx context.Context, req model.SaleRequest) (model.SaleReceipt, error)
}

// TripAPI is the slice of the trip collaborator the flow needs to
// refetch occupancy after the server has changed it.
type TripAPI interface {
	GetTrip(ctx context.Context, tripID uint64) (model.Trip, error)
}

// ErrInFlight is returned when a submission is attempted while a
// previous one has not finished.  At most one sale may be in flight
// per submitter.
var ErrInFlight = errors.New("sale submission already in flight")

// ErrEmptySelection is returned when no seats are selected.
var ErrEmptySelection = errors.New("no seats selected")

// ValidationError lists the seats whose passenger data is incomplete.
// No network call is made when it is returned.
type ValidationError struct {
	Seats []int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Seats))
	for i, n := range e.Seats {
		parts[i] = strconv.Itoa(n)
	}
	return "incomplete passenger data for seats " + strings.Join(parts, ", ")
}

// Outcome is what a finished submission leaves behind.  Trip carries
// the refreshed occupancy when the flow refetched it (after success
// or a conflict); it is nil when the refetch failed or was not
// needed.
type Outcome struct {
	Receipt model.SaleReceipt
	Trip    *model.Trip
}

// Submitter runs sale submissions against the collaborators.  It is
// owned by the seat-map view, like the stores it reconciles.
type Submitter struct {
	sales    SaleAPI
	trips    TripAPI
	inFlight atomic.Bool
}

// NewSubmitter wires the collaborators.  Both must be non-nil.
func NewSubmitter(sales SaleAPI, trips TripAPI) *Submitter {
	if sales == nil || trips == nil {
		panic("nil collaborator passed to sale.NewSubmitter")
	}
	return &Submitter{sales: sales, trips: trips}
}

// Submit finalizes the current selection as one sale:
//
//  1. Fails fast with a ValidationError when any selected seat lacks
//     a valid passenger record; the collaborator is not called.
//  2. Builds the request once, seats in ascending order.
//  3. Rejects a second concurrent call with ErrInFlight.
//  4. On success resets the selection and refetches occupancy, the
//     server now being authoritative for the sold seats.
//  5. On a conflict refetches occupancy and resets the selection; on
//     any other failure local state is kept so the seller can retry
//     without re-entering passenger data.
func (s *Submitter) Submit(ctx context.Context, trip model.Trip, store *seatmap.Store) (Outcome, error) {
	if store.SelectionCount() == 0 {
		return Outcome{}, ErrEmptySelection
	}
	if bad := store.Passengers().Invalid(); len(bad) > 0 {
		return Outcome{}, &ValidationError{Seats: bad}
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return Outcome{}, ErrInFlight
	}
	defer s.inFlight.Store(false)

	req := model.SaleRequest{TripID: trip.ID, Seats: store.Passengers().Records()}

	receipt, err := s.sales.SubmitSale(ctx, req)
	if err == nil {
		// Clear first so the selection is gone even if the
		// refetch below fails.
		store.Reset()
		out := Outcome{Receipt: receipt}
		if fresh, ok := s.refresh(ctx, trip.ID, store); ok {
			out.Trip = fresh
		}
		return out, nil
	}

	if api.IsConflict(err) {
		out := Outcome{}
		if fresh, ok := s.refresh(ctx, trip.ID, store); ok {
			out.Trip = fresh
		} else {
			store.Reset()
		}
		return out, err
	}

	// Anything else: surface the failure, keep the selection.
	return Outcome{}, fmt.Errorf("submit sale: %w", err)
}

// refresh refetches the trip and re-initializes the store from its
// occupancy.  It reports false when the fetch failed, leaving the
// store untouched.
func (s *Submitter) refresh(ctx context.Context, tripID uint64, store *seatmap.Store) (*model.Trip, bool) {
	fresh, err := s.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, false
	}
	if err := store.Initialize(fresh.Bus.TotalCapacity, fresh.OccupiedSeatNumbers(), fresh.ReservedSeats); err != nil {
		return nil, false
	}
	return &fresh, true
}
