package seatmap

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/andesvia/boleteria/internal/model"
)

// validate checks passenger records against the tags declared on
// model.SalePassenger (name required, document numeric and at least 8
// characters).
var validate = validator.New()

// PassengerStore holds passenger data keyed by seat number.  Records
// exist only for currently selected seats: the seat store creates an
// empty record when a seat becomes selected and deletes it when the
// seat is deselected, so the record set never diverges from the
// selection.
type PassengerStore struct {
	records map[int]*model.SalePassenger
}

// NewPassengerStore returns an empty store.
func NewPassengerStore() *PassengerStore {
	return &PassengerStore{records: make(map[int]*model.SalePassenger)}
}

// create adds an empty record for a newly selected seat.
func (p *PassengerStore) create(seat int) {
	p.records[seat] = &model.SalePassenger{SeatNumber: seat}
}

// remove deletes the record of a deselected seat.
func (p *PassengerStore) remove(seat int) {
	delete(p.records, seat)
}

// clear drops every record.
func (p *PassengerStore) clear() {
	p.records = make(map[int]*model.SalePassenger)
}

// SetName updates the passenger name for a seat.  It reports false,
// mutating nothing, when the seat has no record (i.e. is not
// currently selected).
func (p *PassengerStore) SetName(seat int, name string) bool {
	r, ok := p.records[seat]
	if !ok {
		return false
	}
	r.FullName = name
	return true
}

// SetDocument updates the passenger identity document for a seat
// under the same gating rule as SetName.
func (p *PassengerStore) SetDocument(seat int, doc string) bool {
	r, ok := p.records[seat]
	if !ok {
		return false
	}
	r.PassengerDoc = doc
	return true
}

// Get returns a copy of the record for a seat.
func (p *PassengerStore) Get(seat int) (model.SalePassenger, bool) {
	r, ok := p.records[seat]
	if !ok {
		return model.SalePassenger{}, false
	}
	return *r, true
}

// Len returns the number of records held.
func (p *PassengerStore) Len() int { return len(p.records) }

// Seats returns the seat numbers that have a record, ascending.
func (p *PassengerStore) Seats() []int {
	seats := make([]int, 0, len(p.records))
	for n := range p.records {
		seats = append(seats, n)
	}
	sort.Ints(seats)
	return seats
}

// Records returns copies of all records ordered by ascending seat
// number, the order required for a sale request.
func (p *PassengerStore) Records() []model.SalePassenger {
	out := make([]model.SalePassenger, 0, len(p.records))
	for _, n := range p.Seats() {
		out = append(out, *p.records[n])
	}
	return out
}

// Invalid returns the seats whose record does not pass validation,
// ascending.  An empty result means submission may proceed.
func (p *PassengerStore) Invalid() []int {
	var bad []int
	for _, n := range p.Seats() {
		if err := validate.Struct(p.records[n]); err != nil {
			bad = append(bad, n)
		}
	}
	return bad
}
