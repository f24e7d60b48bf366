package sale

import (
	"context"
	"errors"
	"testing"

	"github.com/andesvia/boleteria/internal/api"
	"github.com/andesvia/boleteria/internal/model"
	"github.com/andesvia/boleteria/internal/seatmap"
)

type fakeSales struct {
	receipt model.SaleReceipt
	err     error
	calls   int
	lastReq model.SaleRequest

	// When set, SubmitSale signals started and blocks until release
	// is closed, to exercise the in-flight guard.
	started chan struct{}
	release chan struct{}
}

func (f *fakeSales) SubmitSale(_ context.Context, req model.SaleRequest) (model.SaleReceipt, error) {
	f.calls++
	f.lastReq = req
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	return f.receipt, f.err
}

type fakeTrips struct {
	trip  model.Trip
	err   error
	calls int
}

func (f *fakeTrips) GetTrip(_ context.Context, _ uint64) (model.Trip, error) {
	f.calls++
	return f.trip, f.err
}

func testTrip(occupied ...int) model.Trip {
	t := model.Trip{
		ID:  7,
		Bus: model.Bus{ID: 1, TotalCapacity: 20},
	}
	for _, n := range occupied {
		t.OccupiedSeats = append(t.OccupiedSeats, model.OccupiedSeat{SeatNumber: n})
	}
	return t
}

func selectedStore(t *testing.T, seats ...int) *seatmap.Store {
	t.Helper()
	s := seatmap.New(seatmap.NewPassengerStore())
	if err := s.Initialize(20, nil, nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for _, n := range seats {
		s.Toggle(n)
		s.Passengers().SetName(n, "Ana Torres")
		s.Passengers().SetDocument(n, "45678912")
	}
	return s
}

func TestSubmitRejectsEmptySelection(t *testing.T) {
	sales := &fakeSales{}
	sub := NewSubmitter(sales, &fakeTrips{})
	store := selectedStore(t)

	_, err := sub.Submit(context.Background(), testTrip(), store)
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
	if sales.calls != 0 {
		t.Fatal("collaborator called despite empty selection")
	}
}

func TestSubmitFailsFastOnInvalidPassengers(t *testing.T) {
	sales := &fakeSales{}
	sub := NewSubmitter(sales, &fakeTrips{})
	store := selectedStore(t, 3)
	store.Toggle(8) // selected, no passenger data

	_, err := sub.Submit(context.Background(), testTrip(), store)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if len(verr.Seats) != 1 || verr.Seats[0] != 8 {
		t.Fatalf("invalid seats = %v, want [8]", verr.Seats)
	}
	if sales.calls != 0 {
		t.Fatal("collaborator called despite invalid passenger data")
	}
	if store.SelectionCount() != 2 {
		t.Fatal("selection must survive a validation failure")
	}
}

func TestSubmitBuildsRequestInSeatOrder(t *testing.T) {
	sales := &fakeSales{receipt: model.SaleReceipt{ID: 41, Total: 190}}
	trips := &fakeTrips{trip: testTrip(3, 7)}
	sub := NewSubmitter(sales, trips)
	store := selectedStore(t, 7, 3)

	out, err := sub.Submit(context.Background(), testTrip(), store)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sales.lastReq.TripID != 7 {
		t.Errorf("TripID = %d, want 7", sales.lastReq.TripID)
	}
	if len(sales.lastReq.Seats) != 2 || sales.lastReq.Seats[0].SeatNumber != 3 || sales.lastReq.Seats[1].SeatNumber != 7 {
		t.Errorf("request seats = %+v, want ascending [3 7]", sales.lastReq.Seats)
	}
	if out.Receipt.ID != 41 {
		t.Errorf("receipt = %+v", out.Receipt)
	}
}

func TestSubmitSuccessResetsAndRefetches(t *testing.T) {
	sales := &fakeSales{receipt: model.SaleReceipt{ID: 1, Total: 95}}
	trips := &fakeTrips{trip: testTrip(5)}
	sub := NewSubmitter(sales, trips)
	store := selectedStore(t, 5)

	out, err := sub.Submit(context.Background(), testTrip(), store)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if trips.calls != 1 {
		t.Fatalf("refetch calls = %d, want 1", trips.calls)
	}
	if out.Trip == nil {
		t.Fatal("outcome must carry the refreshed trip")
	}
	if store.SelectionCount() != 0 {
		t.Error("selection must be cleared after success")
	}
	if st, _ := store.Status(5); st != seatmap.StatusOccupied {
		t.Errorf("Status(5) = %v after refetch, want occupied", st)
	}
}

func TestSubmitConflictRefetchesAndResets(t *testing.T) {
	conflict := &api.Error{Kind: api.KindConflict, Status: 409, Message: "Conflicto de asientos: el asiento 5 ya fue vendido"}
	sales := &fakeSales{err: conflict}
	trips := &fakeTrips{trip: testTrip(5)}
	sub := NewSubmitter(sales, trips)
	store := selectedStore(t, 5)

	out, err := sub.Submit(context.Background(), testTrip(), store)
	if !api.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if out.Trip == nil {
		t.Fatal("conflict outcome must carry the refreshed trip")
	}
	if st, _ := store.Status(5); st != seatmap.StatusOccupied {
		t.Errorf("Status(5) = %v after conflict refetch, want occupied", st)
	}
	if store.SelectionCount() != 0 {
		t.Error("selection must be cleared after a conflict")
	}
}

func TestSubmitConflictWithFailedRefetchStillResets(t *testing.T) {
	conflict := &api.Error{Kind: api.KindConflict, Status: 409, Message: "Conflicto de asientos"}
	sales := &fakeSales{err: conflict}
	trips := &fakeTrips{err: &api.Error{Kind: api.KindConnection, Message: "down"}}
	sub := NewSubmitter(sales, trips)
	store := selectedStore(t, 5)

	out, err := sub.Submit(context.Background(), testTrip(), store)
	if !api.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
	if out.Trip != nil {
		t.Error("outcome must not carry a trip when the refetch failed")
	}
	if store.SelectionCount() != 0 {
		t.Error("selection must still be cleared")
	}
}

func TestSubmitOtherFailureKeepsState(t *testing.T) {
	sales := &fakeSales{err: &api.Error{Kind: api.KindConnection, Message: "cannot reach the ticketing service"}}
	trips := &fakeTrips{}
	sub := NewSubmitter(sales, trips)
	store := selectedStore(t, 3, 7)

	_, err := sub.Submit(context.Background(), testTrip(), store)
	if err == nil || !api.IsConnection(err) {
		t.Fatalf("err = %v, want connection failure", err)
	}
	if trips.calls != 0 {
		t.Error("no refetch on a non-conflict failure")
	}
	if store.SelectionCount() != 2 {
		t.Error("selection must survive a non-conflict failure")
	}
	if rec, ok := store.Passengers().Get(3); !ok || rec.FullName == "" {
		t.Error("passenger data must survive a non-conflict failure")
	}
}

func TestSubmitAllowsOnlyOneInFlight(t *testing.T) {
	sales := &fakeSales{
		receipt: model.SaleReceipt{ID: 9},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	trips := &fakeTrips{trip: testTrip(3)}
	sub := NewSubmitter(sales, trips)
	store := selectedStore(t, 3)

	done := make(chan error, 1)
	go func() {
		_, err := sub.Submit(context.Background(), testTrip(), store)
		done <- err
	}()
	<-sales.started

	second := selectedStore(t, 4)
	if _, err := sub.Submit(context.Background(), testTrip(), second); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second submit err = %v, want ErrInFlight", err)
	}

	close(sales.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if sales.calls != 1 {
		t.Fatalf("collaborator calls = %d, want 1", sales.calls)
	}
}
