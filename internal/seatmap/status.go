// Package seatmap holds the client-side seat selection state for one
// seat-map view: the per-seat status store and the passenger form
// store, kept in lockstep.  A view owns exactly one Store; the state
// is discarded on navigation and rebuilt from server data on the next
// visit.
package seatmap

// Status is the client-side state of one seat.
type Status uint8

const (
	// StatusAvailable seats can be selected by the seller.
	StatusAvailable Status = iota
	// StatusSelected seats are part of the sale being assembled.
	StatusSelected
	// StatusOccupied seats were sold; set only from server data.
	StatusOccupied
	// StatusReserved seats are blocked by the operator; set only
	// from server data.
	StatusReserved
)

// String returns the wire/legend name of the status.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "AVAILABLE"
	case StatusSelected:
		return "SELECTED"
	case StatusOccupied:
		return "OCCUPIED"
	case StatusReserved:
		return "RESERVED"
	default:
		return "UNKNOWN"
	}
}

// Selectable reports whether user input may toggle a seat in this
// status.  Occupied and reserved seats are sinks for user input; only
// a full re-sync from the server can change them.
func (s Status) Selectable() bool {
	return s == StatusAvailable || s == StatusSelected
}
