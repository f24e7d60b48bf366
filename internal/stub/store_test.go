package stub

import (
	"errors"
	"testing"
	"time"

	"github.com/andesvia/boleteria/internal/model"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.AddTrip(model.Trip{
		ID:            1,
		Bus:           model.Bus{ID: 1, TotalCapacity: 10},
		PricePerSeat:  50,
		OccupiedSeats: []model.OccupiedSeat{{SeatNumber: 4}},
		ReservedSeats: []int{10},
	})
	return s
}

func passenger(seat int) model.SalePassenger {
	return model.SalePassenger{SeatNumber: seat, FullName: "Ana Torres", PassengerDoc: "45678912"}
}

func TestRecordSaleIsAllOrNothing(t *testing.T) {
	s := seededStore(t)

	// Seat 4 is taken, so the whole request must be rejected and seat
	// 1 must stay sellable.
	_, err := s.RecordSale(model.SaleRequest{TripID: 1, Seats: []model.SalePassenger{passenger(1), passenger(4)}}, "vendedor1")
	var taken *SeatTakenError
	if !errors.As(err, &taken) || taken.Seat != 4 {
		t.Fatalf("err = %v, want SeatTakenError for seat 4", err)
	}

	if _, err := s.RecordSale(model.SaleRequest{TripID: 1, Seats: []model.SalePassenger{passenger(1)}}, "vendedor1"); err != nil {
		t.Fatalf("seat 1 must still be free after the rejected sale: %v", err)
	}
}

func TestRecordSaleRejectsReservedSeats(t *testing.T) {
	s := seededStore(t)
	_, err := s.RecordSale(model.SaleRequest{TripID: 1, Seats: []model.SalePassenger{passenger(10)}}, "vendedor1")
	var taken *SeatTakenError
	if !errors.As(err, &taken) {
		t.Fatalf("err = %v, want SeatTakenError for a reserved seat", err)
	}
}

func TestRecordSaleRejectsOutOfRangeSeats(t *testing.T) {
	s := seededStore(t)
	_, err := s.RecordSale(model.SaleRequest{TripID: 1, Seats: []model.SalePassenger{passenger(11)}}, "vendedor1")
	var rng *SeatRangeError
	if !errors.As(err, &rng) || rng.Seat != 11 || rng.Capacity != 10 {
		t.Fatalf("err = %v, want SeatRangeError for seat 11 of 10", err)
	}
}

func TestRecordSaleTotalsAndOccupancy(t *testing.T) {
	s := seededStore(t)

	sale, err := s.RecordSale(model.SaleRequest{TripID: 1, Seats: []model.SalePassenger{passenger(1), passenger(2)}}, "vendedor1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if sale.Total != 100 {
		t.Errorf("total = %v, want 100", sale.Total)
	}
	if sale.Reference == "" {
		t.Error("sale must carry a reference")
	}

	trip, ok := s.Trip(1)
	if !ok {
		t.Fatal("trip 1 missing")
	}
	if got := trip.OccupiedSeatNumbers(); len(got) != 3 {
		t.Fatalf("occupied = %v, want seats 1, 2 and 4", got)
	}
}

func TestDailyReportGroupsByDay(t *testing.T) {
	s := seededStore(t)

	day1 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	s.now = func() time.Time { return day1 }
	if _, err := s.RecordSale(model.SaleRequest{TripID: 1, Seats: []model.SalePassenger{passenger(1)}}, "vendedor1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	s.now = func() time.Time { return day2 }
	if _, err := s.RecordSale(model.SaleRequest{TripID: 1, Seats: []model.SalePassenger{passenger(2), passenger(3)}}, "vendedor2"); err != nil {
		t.Fatalf("record: %v", err)
	}

	rows := s.DailyReport()
	if len(rows) != 2 {
		t.Fatalf("rows = %+v, want 2 days", rows)
	}
	if rows[0].Date != "2026-08-31" || rows[0].TotalSales != 100 {
		t.Errorf("rows[0] = %+v, want 2026-08-31 for 100", rows[0])
	}
	if rows[1].Date != "2026-08-30" || rows[1].TotalSales != 50 {
		t.Errorf("rows[1] = %+v, want 2026-08-30 for 50", rows[1])
	}

	sales := s.Sales()
	if len(sales) != 2 || sales[0].ID != 2 {
		t.Fatalf("sales = %+v, want newest first", sales)
	}
}
