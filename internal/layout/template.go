package layout

import "fmt"

// RowSpec declares one physical row of a floor before seat numbers are
// assigned.  Seat rows set SeatsLeft/SeatsRight (0-2 per side); the
// renderer frames them with window markers and a center aisle, and
// assigns numbers sequentially.  Stairs marks the staircase cutout
// rows of the upper floor, where the right-hand pair is replaced by
// the stairwell.  Fixtures, when non-nil, is a literal row (driver
// cabin, restroom, TV separator) emitted as-is; the seat fields are
// ignored for such rows.
type RowSpec struct {
	SeatsLeft  int
	SeatsRight int
	Stairs     bool
	Fixtures   []Cell
}

// FloorSpec groups the rows of one floor.
type FloorSpec struct {
	Number int
	Rows   []RowSpec
}

// Template is a declarative floor-plan description consumed by the
// generic renderer in Plan.  Floors are listed in seat-numbering
// order; the renderer walks them top to bottom assigning numbers
// 1..TotalSeats.
type Template struct {
	Name       string
	TotalSeats int
	Floors     []FloorSpec
}

// seatRow renders one seat row, consuming numbers from next.  Slots
// beyond TotalSeats become Empty cells so a partial final row is
// padded instead of truncated.
func (t Template) seatRow(spec RowSpec, next *int) Row {
	row := make(Row, 0, RowWidth)
	take := func() Cell {
		if *next > t.TotalSeats {
			return Empty()
		}
		c := Seat(*next)
		*next++
		return c
	}
	side := func(n int) []Cell {
		cells := make([]Cell, 0, 2)
		for i := 0; i < 2; i++ {
			if i < n {
				cells = append(cells, take())
			} else {
				cells = append(cells, Empty())
			}
		}
		return cells
	}

	row = append(row, Service(ServiceWindow))
	row = append(row, side(spec.SeatsLeft)...)
	row = append(row, Aisle())
	if spec.Stairs {
		// The stairwell swallows the right-hand pair and its window.
		row = append(row, Service(ServiceStairs), Service(ServiceStairs), Empty())
		return row
	}
	row = append(row, side(spec.SeatsRight)...)
	row = append(row, Service(ServiceWindow))
	return row
}

// fixtureRow pads a literal row to RowWidth with Empty cells.
func fixtureRow(cells []Cell) Row {
	row := make(Row, 0, RowWidth)
	row = append(row, cells...)
	for len(row) < RowWidth {
		row = append(row, Empty())
	}
	return row[:RowWidth]
}

// Plan renders the template into a concrete floor plan.  It
// guarantees that every seat number in [1, TotalSeats] appears exactly
// once, in strictly increasing reading order, or fails with
// ErrInvalidConfiguration when the template's rows cannot hold the
// declared capacity.
func (t Template) Plan() (Plan, error) {
	if t.TotalSeats < 1 || t.TotalSeats > MaxSeats {
		return Plan{}, fmt.Errorf("%w: total seats %d outside 1..%d", ErrInvalidConfiguration, t.TotalSeats, MaxSeats)
	}
	next := 1
	plan := Plan{Template: t.Name, TotalSeats: t.TotalSeats}
	for _, fs := range t.Floors {
		floor := Floor{Number: fs.Number}
		for _, spec := range fs.Rows {
			if spec.Fixtures != nil {
				floor.Rows = append(floor.Rows, fixtureRow(spec.Fixtures))
				continue
			}
			floor.Rows = append(floor.Rows, t.seatRow(spec, &next))
		}
		plan.Floors = append(plan.Floors, floor)
	}
	if next != t.TotalSeats+1 {
		return Plan{}, fmt.Errorf("%w: template %q seats %d of %d", ErrInvalidConfiguration, t.Name, next-1, t.TotalSeats)
	}
	return plan, nil
}
