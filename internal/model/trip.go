package model

import "strconv"

// Route is the origin/destination pair a trip runs on.  The backend
// serves routes with Spanish field names, so the JSON tags below match
// the wire format rather than the Go names.
//
// Fields:
//  ID              – primary key identifier.
//  OriginCity      – city where the trip departs.
//  DestinationCity – city where the trip arrives.
//  Name            – display name of the route (e.g. "Lima - Cusco").
type Route struct {
	ID              uint64 `json:"id"`
	OriginCity      string `json:"ciudad_origen"`
	DestinationCity string `json:"ciudad_destino"`
	Name            string `json:"nombre"`
}

// Bus describes the vehicle assigned to a trip.  TotalCapacity drives
// the floor-plan generation on the seat-map view.
type Bus struct {
	ID            uint64 `json:"id"`
	Plate         string `json:"placa"`
	TotalCapacity int    `json:"capacidad_total"`
}

// OccupiedSeat is one already-sold seat reported by the backend inside
// a trip's detail payload.  Passenger data is included so the seller
// can answer who occupies a given seat.
type OccupiedSeat struct {
	SeatNumber    int    `json:"numero_asiento"`
	PassengerName string `json:"nombre_pasajero"`
	PassengerDoc  string `json:"dni_pasajero"`
}

// Trip is a scheduled bus departure with a fixed capacity and price.
// The client never mutates a Trip: it holds a read-only copy per view
// and refetches when the server may have changed occupancy.
//
// Fields:
//  ID            – primary key identifier.
//  Route         – origin/destination of the departure.
//  DepartureDate – ISO date (YYYY-MM-DD) of departure.
//  DepartureTime – time of day (HH:MM:SS) of departure.
//  Bus           – vehicle operating the trip.
//  PricePerSeat  – price of one seat; the backend serializes decimals
//                  as strings, hence the ",string" option.
//  OccupiedSeats – seats already sold, with passenger data.
//  ReservedSeats – seat numbers blocked by the operator (not sellable).
type Trip struct {
	ID            uint64         `json:"id"`
	Route         Route          `json:"ruta"`
	DepartureDate string         `json:"fecha_salida"`
	DepartureTime string         `json:"hora_salida"`
	Bus           Bus            `json:"bus"`
	PricePerSeat  float64        `json:"precio_asiento,string"`
	OccupiedSeats []OccupiedSeat `json:"asientos_ocupados"`
	ReservedSeats []int          `json:"asientos_reservados"`
}

// OccupiedSeatNumbers returns just the seat numbers of the sold seats.
func (t Trip) OccupiedSeatNumbers() []int {
	nums := make([]int, 0, len(t.OccupiedSeats))
	for _, s := range t.OccupiedSeats {
		nums = append(nums, s.SeatNumber)
	}
	return nums
}

// DepartureClock trims seconds off the departure time for display
// ("14:30:00" -> "14:30").
func (t Trip) DepartureClock() string {
	if len(t.DepartureTime) >= 5 {
		return t.DepartureTime[:5]
	}
	return t.DepartureTime
}

// Label is a one-line description of the trip used in result lists.
func (t Trip) Label() string {
	return t.Route.OriginCity + " → " + t.Route.DestinationCity +
		" " + t.DepartureDate + " " + t.DepartureClock() +
		" (bus " + t.Bus.Plate + ", " + strconv.Itoa(t.Bus.TotalCapacity) + " asientos)"
}

// CityIndex lists the cities available as search filters.  Origins and
// destinations are kept separate because not every city appears on
// both ends of a route.
type CityIndex struct {
	Origins      []string `json:"origenes"`
	Destinations []string `json:"destinos"`
}

// TripFilter narrows a trip search.  Zero-valued fields are omitted
// from the query string.
type TripFilter struct {
	Origin      string
	Destination string
	Date        string // YYYY-MM-DD
}
