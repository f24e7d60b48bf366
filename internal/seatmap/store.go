package seatmap

import (
	"fmt"
	"sort"
)

// Store tracks the status of every seat of one trip.  Occupied and
// reserved seats come exclusively from server data via Initialize;
// Toggle only ever flips a seat between available and selected.  The
// selection is derived from the status map on demand rather than kept
// as a separate field, so the two cannot diverge.
type Store struct {
	total      int
	status     map[int]Status
	passengers *PassengerStore
}

// New builds a Store wired to the passenger store it keeps in
// lockstep.  The passenger store must be non-nil.
func New(passengers *PassengerStore) *Store {
	if passengers == nil {
		panic("nil passenger store passed to seatmap.New")
	}
	return &Store{passengers: passengers, status: make(map[int]Status)}
}

// Passengers exposes the lockstep passenger store.
func (s *Store) Passengers() *PassengerStore { return s.passengers }

// Initialize re-syncs the store from server data: every seat in
// [1, totalSeats] becomes available except those listed as occupied or
// reserved.  The selection and the passenger store are cleared.  Seat
// numbers outside the capacity are ignored; the server owns them and
// the layout cannot show them anyway.  Calling Initialize twice with
// the same data yields an identical store.
func (s *Store) Initialize(totalSeats int, occupied, reserved []int) error {
	if totalSeats < 1 {
		return fmt.Errorf("seatmap: invalid capacity %d", totalSeats)
	}
	s.total = totalSeats
	s.status = make(map[int]Status, totalSeats)
	for n := 1; n <= totalSeats; n++ {
		s.status[n] = StatusAvailable
	}
	for _, n := range reserved {
		if n >= 1 && n <= totalSeats {
			s.status[n] = StatusReserved
		}
	}
	// Occupied wins over reserved when the server reports both.
	for _, n := range occupied {
		if n >= 1 && n <= totalSeats {
			s.status[n] = StatusOccupied
		}
	}
	s.passengers.clear()
	return nil
}

// Toggle flips a seat between available and selected and keeps the
// passenger store in lockstep.  It returns the seat's status after
// the call and whether the toggle was applied; occupied, reserved and
// unknown seats report false without changing anything.
func (s *Store) Toggle(seat int) (Status, bool) {
	st, ok := s.status[seat]
	if !ok || !st.Selectable() {
		return st, false
	}
	if st == StatusSelected {
		s.status[seat] = StatusAvailable
		s.passengers.remove(seat)
		return StatusAvailable, true
	}
	s.status[seat] = StatusSelected
	s.passengers.create(seat)
	return StatusSelected, true
}

// Reset clears the selection: every selected seat returns to
// available and the passenger store is emptied.  Server-provided
// statuses are untouched.
func (s *Store) Reset() {
	for n, st := range s.status {
		if st == StatusSelected {
			s.status[n] = StatusAvailable
		}
	}
	s.passengers.clear()
}

// Status returns the status of a seat.  The second result is false
// for seats outside the initialized capacity.
func (s *Store) Status(seat int) (Status, bool) {
	st, ok := s.status[seat]
	return st, ok
}

// TotalSeats returns the capacity the store was initialized with.
func (s *Store) TotalSeats() int { return s.total }

// SelectedSeats returns the selected seat numbers in ascending order.
func (s *Store) SelectedSeats() []int {
	var sel []int
	for n, st := range s.status {
		if st == StatusSelected {
			sel = append(sel, n)
		}
	}
	sort.Ints(sel)
	return sel
}

// SelectionCount returns how many seats are selected.
func (s *Store) SelectionCount() int {
	count := 0
	for _, st := range s.status {
		if st == StatusSelected {
			count++
		}
	}
	return count
}

// SelectionTotal derives the price of the current selection.
func (s *Store) SelectionTotal(pricePerSeat float64) float64 {
	return float64(s.SelectionCount()) * pricePerSeat
}

// CountByStatus tallies seats per status, used by the legend and by
// tests.
func (s *Store) CountByStatus() map[Status]int {
	out := make(map[Status]int, 4)
	for _, st := range s.status {
		out[st]++
	}
	return out
}
