// Package stub is an in-memory stand-in for the ticketing backend.
// It implements the collaborator contracts the terminal depends on so
// the client can be developed and tested without the production API.
// State is process-local on purpose; persistence is not this
// repository's problem.
package stub

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andesvia/boleteria/internal/model"
	"github.com/andesvia/boleteria/internal/utils"
)

// SeatTakenError reports a sale rejected because a seat was already
// sold.  Its message matches the production backend's conflict text,
// which the client's classifier also recognizes.
type SeatTakenError struct {
	Seat int
}

// Error implements the error interface.
func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("Conflicto de asientos: el asiento %d ya fue vendido", e.Seat)
}

// SeatRangeError reports a sale naming a seat outside the bus.
type SeatRangeError struct {
	Seat     int
	Capacity int
}

// Error implements the error interface.
func (e *SeatRangeError) Error() string {
	return fmt.Sprintf("el asiento %d no existe en un bus de %d asientos", e.Seat, e.Capacity)
}

// Store is the stub's state: seller accounts, trips with their
// occupancy, and recorded sales.  A single mutex is plenty at stub
// scale.
type Store struct {
	mu     sync.Mutex
	users  map[string]model.User
	trips  map[uint64]*model.Trip
	sales  []model.Sale
	nextID uint64
	now    func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users: make(map[string]model.User),
		trips: make(map[uint64]*model.Trip),
		now:   time.Now,
	}
}

// AddUser registers a seller account with a bcrypt-hashed password.
func (s *Store) AddUser(id uint64, username, fullName, password string, cost int) error {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = model.User{ID: id, Username: username, FullName: fullName, PasswordHash: hash}
	return nil
}

// AddTrip registers a trip.  The store keeps its own copy.
func (s *Store) AddTrip(t model.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := t
	cp.OccupiedSeats = append([]model.OccupiedSeat(nil), t.OccupiedSeats...)
	cp.ReservedSeats = append([]int(nil), t.ReservedSeats...)
	s.trips[t.ID] = &cp
}

// UserByUsername looks up a seller account.
func (s *Store) UserByUsername(username string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	return u, ok
}

// Cities lists the distinct origins and destinations across all
// trips, sorted for deterministic responses.
func (s *Store) Cities() model.CityIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	origins := make(map[string]struct{})
	dests := make(map[string]struct{})
	for _, t := range s.trips {
		origins[t.Route.OriginCity] = struct{}{}
		dests[t.Route.DestinationCity] = struct{}{}
	}
	return model.CityIndex{Origins: sortedKeys(origins), Destinations: sortedKeys(dests)}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SearchTrips returns copies of the trips matching the filter,
// ordered by id.
func (s *Store) SearchTrips(f model.TripFilter) []model.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Trip, 0)
	for _, t := range s.trips {
		if f.Origin != "" && t.Route.OriginCity != f.Origin {
			continue
		}
		if f.Destination != "" && t.Route.DestinationCity != f.Destination {
			continue
		}
		if f.Date != "" && t.DepartureDate != f.Date {
			continue
		}
		out = append(out, copyTrip(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Trip returns a copy of one trip with its current occupancy.
func (s *Store) Trip(id uint64) (model.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trips[id]
	if !ok {
		return model.Trip{}, false
	}
	return copyTrip(t), true
}

func copyTrip(t *model.Trip) model.Trip {
	cp := *t
	cp.OccupiedSeats = append([]model.OccupiedSeat(nil), t.OccupiedSeats...)
	cp.ReservedSeats = append([]int(nil), t.ReservedSeats...)
	return cp
}

// RecordSale finalizes a sale atomically: either every requested seat
// is still free and all of them flip to occupied, or the request is
// rejected and nothing changes.  Conflicting seats yield a
// SeatTakenError, out-of-range seats a SeatRangeError, and an unknown
// trip a plain error.
func (s *Store) RecordSale(req model.SaleRequest, seller string) (model.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trips[req.TripID]
	if !ok {
		return model.Sale{}, fmt.Errorf("viaje %d no encontrado", req.TripID)
	}

	taken := make(map[int]struct{}, len(t.OccupiedSeats)+len(t.ReservedSeats))
	for _, o := range t.OccupiedSeats {
		taken[o.SeatNumber] = struct{}{}
	}
	for _, n := range t.ReservedSeats {
		taken[n] = struct{}{}
	}
	for _, p := range req.Seats {
		if p.SeatNumber < 1 || p.SeatNumber > t.Bus.TotalCapacity {
			return model.Sale{}, &SeatRangeError{Seat: p.SeatNumber, Capacity: t.Bus.TotalCapacity}
		}
		if _, sold := taken[p.SeatNumber]; sold {
			return model.Sale{}, &SeatTakenError{Seat: p.SeatNumber}
		}
	}

	for _, p := range req.Seats {
		t.OccupiedSeats = append(t.OccupiedSeats, model.OccupiedSeat{
			SeatNumber:    p.SeatNumber,
			PassengerName: p.FullName,
			PassengerDoc:  p.PassengerDoc,
		})
	}
	sort.Slice(t.OccupiedSeats, func(i, j int) bool {
		return t.OccupiedSeats[i].SeatNumber < t.OccupiedSeats[j].SeatNumber
	})

	s.nextID++
	sale := model.Sale{
		ID:        s.nextID,
		Reference: uuid.NewString(),
		TripID:    t.ID,
		Seller:    seller,
		Seats:     append([]model.SalePassenger(nil), req.Seats...),
		Total:     float64(len(req.Seats)) * t.PricePerSeat,
		SoldAt:    s.now().UTC(),
	}
	s.sales = append(s.sales, sale)
	return sale, nil
}

// Sales lists recorded sales, newest first.
func (s *Store) Sales() []model.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.Sale(nil), s.sales...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// DailyReport aggregates sale totals per calendar day, most recent
// day first.
func (s *Store) DailyReport() []model.DailyReportRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	byDay := make(map[string]float64)
	for _, sale := range s.sales {
		byDay[sale.SoldAt.Format("2006-01-02")] += sale.Total
	}
	rows := make([]model.DailyReportRow, 0, len(byDay))
	for day, total := range byDay {
		rows = append(rows, model.DailyReportRow{Date: day, TotalSales: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return rows
}
