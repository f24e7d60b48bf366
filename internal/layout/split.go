package layout

import "fmt"

// Row specs shared by the built-in templates.
var (
	tvSeparatorRow = RowSpec{Fixtures: []Cell{Aisle(), Aisle(), Aisle(), Service(ServiceTV), Aisle(), Aisle(), Aisle()}}
	driverRow      = RowSpec{Fixtures: []Cell{Service(ServiceDriver), Aisle(), Aisle(), Aisle(), Aisle(), Service(ServiceDoor), Aisle()}}
	restroomRow    = RowSpec{Fixtures: []Cell{Service(ServiceRestroom), Aisle(), Aisle(), Aisle(), Aisle(), Aisle(), Service(ServiceLuggage)}}
)

// Split builds the configurable two-floor template: floorOneSeats on
// the lower floor (numbered first), the remainder upstairs.  The lower
// floor is framed by the driver/door row at the front and the
// restroom/luggage row at the rear.  The upper floor reproduces the
// staircase cutout of the coach body: after three full rows, two rows
// keep only their left-hand pair because the stairwell takes the right
// side.  A TV separator row is inserted every fourth full row.
//
// totalSeats must exceed floorOneSeats and stay within 1..MaxSeats;
// anything else is rejected with ErrInvalidConfiguration.
func Split(totalSeats, floorOneSeats int) (Template, error) {
	if totalSeats < 1 || totalSeats > MaxSeats {
		return Template{}, fmt.Errorf("%w: total seats %d outside 1..%d", ErrInvalidConfiguration, totalSeats, MaxSeats)
	}
	if floorOneSeats < 1 {
		return Template{}, fmt.Errorf("%w: floor one needs at least one seat", ErrInvalidConfiguration)
	}
	if totalSeats <= floorOneSeats {
		return Template{}, fmt.Errorf("%w: total seats %d must exceed the %d lower-floor seats", ErrInvalidConfiguration, totalSeats, floorOneSeats)
	}

	lower := FloorSpec{Number: 1}
	lower.Rows = append(lower.Rows, driverRow)
	for placed := 0; placed < floorOneSeats; placed += 4 {
		// The final row holds only the remainder so the floor
		// boundary lands exactly after floorOneSeats seats.
		left, right := 2, 2
		if rem := floorOneSeats - placed; rem < 4 {
			left = min(rem, 2)
			right = rem - left
		}
		lower.Rows = append(lower.Rows, RowSpec{SeatsLeft: left, SeatsRight: right})
	}
	lower.Rows = append(lower.Rows, restroomRow)

	upper := FloorSpec{Number: 2}
	remaining := totalSeats - floorOneSeats
	placed, rowIdx := 0, 0
	for placed < remaining {
		// Rows four and five sit beside the stairwell and carry
		// only the left-hand pair.
		if rowIdx == 3 || rowIdx == 4 {
			upper.Rows = append(upper.Rows, RowSpec{SeatsLeft: 2, Stairs: true})
			placed += 2
		} else {
			if rowIdx > 0 && rowIdx%4 == 0 {
				upper.Rows = append(upper.Rows, tvSeparatorRow)
			}
			upper.Rows = append(upper.Rows, RowSpec{SeatsLeft: 2, SeatsRight: 2})
			placed += 4
		}
		rowIdx++
	}

	return Template{
		Name:       "split",
		TotalSeats: totalSeats,
		Floors:     []FloorSpec{lower, upper},
	}, nil
}
