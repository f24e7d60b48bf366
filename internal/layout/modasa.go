package layout

import "fmt"

// ModasaZeusSeats is the fixed capacity of the Modasa Zeus body.
const ModasaZeusSeats = 60

// ModasaZeus builds the fixed template of the Modasa Zeus coach: 44
// seats on the upper floor (numbered first, 1-44) with TV separators
// between row groups, and 16 seats on the lower floor (45-60) behind
// the driver cabin, restroom and boarding door, with the luggage bay
// at the rear.  The scheme is not configurable; it mirrors the
// manufacturer's floor plan.
func ModasaZeus() Template {
	seat4 := RowSpec{SeatsLeft: 2, SeatsRight: 2}

	upper := FloorSpec{Number: 2, Rows: []RowSpec{
		seat4, // 1-4
		tvSeparatorRow,
		seat4, // 5-8
		seat4, // 9-12
		tvSeparatorRow,
		seat4, // 13-16
		seat4, // 17-20
		tvSeparatorRow,
		seat4, // 21-24
		seat4, // 25-28
		tvSeparatorRow,
		seat4, // 29-32
		seat4, // 33-36
		tvSeparatorRow,
		seat4, // 37-40
		seat4, // 41-44
	}}

	lower := FloorSpec{Number: 1, Rows: []RowSpec{
		{Fixtures: []Cell{Service(ServiceDriver), Aisle(), Aisle(), Aisle(), Aisle(), Aisle(), Aisle()}},
		{Fixtures: []Cell{Aisle(), Aisle(), Service(ServiceRestroom), Aisle(), Aisle(), Service(ServiceDoor), Aisle()}},
		{Fixtures: []Cell{Aisle(), Aisle(), Aisle(), Aisle(), Aisle(), Aisle(), Aisle()}},
		seat4, // 45-48
		seat4, // 49-52
		seat4, // 53-56
		seat4, // 57-60
		{Fixtures: []Cell{Service(ServiceLuggage), Aisle(), Aisle(), Aisle(), Aisle(), Aisle(), Aisle()}},
	}}

	return Template{
		Name:       "modasa-zeus",
		TotalSeats: ModasaZeusSeats,
		Floors:     []FloorSpec{upper, lower},
	}
}

// ForBus resolves the template selected by configuration for a bus of
// the given capacity.  The split scheme adapts to the capacity; the
// Modasa scheme is fixed and rejects buses that are not 60-seaters.
func ForBus(template string, totalSeats, floorOneSeats int) (Template, error) {
	switch template {
	case "", "split":
		return Split(totalSeats, floorOneSeats)
	case "modasa", "modasa-zeus":
		if totalSeats != ModasaZeusSeats {
			return Template{}, fmt.Errorf("%w: modasa-zeus is a %d-seat body, bus has %d", ErrInvalidConfiguration, ModasaZeusSeats, totalSeats)
		}
		return ModasaZeus(), nil
	default:
		return Template{}, fmt.Errorf("%w: unknown template %q", ErrInvalidConfiguration, template)
	}
}
