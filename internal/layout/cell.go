// Package layout turns a bus configuration into a deterministic
// two-floor floor plan: an ordered grid of cells describing seats,
// aisles and service fixtures.  The generator is pure; rendering and
// seat state live elsewhere.
package layout

// RowWidth is the number of cells in every rendered row: a window
// marker, two seats, the center aisle, two seats and a window marker.
const RowWidth = 7

// MaxSeats bounds the supported bus capacity.
const MaxSeats = 100

// ServiceKind identifies a non-seat fixture placed in the floor plan.
type ServiceKind uint8

const (
	ServiceNone ServiceKind = iota
	ServiceWindow
	ServiceTV
	ServiceRestroom
	ServiceDoor
	ServiceLuggage
	ServiceDriver
	ServiceStairs
)

// String returns the label shown for the fixture on the seat map.
// The labels match the signage used on the printed floor plans.
func (k ServiceKind) String() string {
	switch k {
	case ServiceWindow:
		return "V"
	case ServiceTV:
		return "TV"
	case ServiceRestroom:
		return "WC"
	case ServiceDoor:
		return "PUERTA"
	case ServiceLuggage:
		return "MALETERO"
	case ServiceDriver:
		return "CHOFER"
	case ServiceStairs:
		return "GRADAS"
	default:
		return ""
	}
}

// CellKind discriminates the variants of a floor-plan cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellSeat
	CellAisle
	CellService
)

// Cell is one position in the floor-plan grid.  Seat holds the seat
// number when Kind is CellSeat; Service holds the fixture kind when
// Kind is CellService.  Other kinds carry no payload.
type Cell struct {
	Kind    CellKind
	Seat    int
	Service ServiceKind
}

// Seat builds a seat cell for the given seat number.
func Seat(n int) Cell { return Cell{Kind: CellSeat, Seat: n} }

// Aisle builds a walkable aisle cell.
func Aisle() Cell { return Cell{Kind: CellAisle} }

// Service builds a fixture cell of the given kind.
func Service(k ServiceKind) Cell { return Cell{Kind: CellService, Service: k} }

// Empty builds a structural gap cell.
func Empty() Cell { return Cell{} }

// Row is one physical row of cells, always RowWidth wide once rendered.
type Row []Cell

// Floor is the rendered grid of one bus floor.
type Floor struct {
	Number int
	Rows   []Row
}

// Plan is a fully rendered floor plan.  Floors appear in seat-numbering
// order, which is not necessarily ascending by floor number: the
// Modasa scheme numbers the upper floor first.
type Plan struct {
	Template   string
	TotalSeats int
	Floors     []Floor
}

// SeatNumbers returns every seat number in reading order: floor by
// floor, row by row, left to right.
func (p Plan) SeatNumbers() []int {
	var nums []int
	for _, f := range p.Floors {
		for _, row := range f.Rows {
			for _, c := range row {
				if c.Kind == CellSeat {
					nums = append(nums, c.Seat)
				}
			}
		}
	}
	return nums
}

// SeatCount returns the number of seat cells in the plan.
func (p Plan) SeatCount() int { return len(p.SeatNumbers()) }

// FloorOf reports which floor number carries the given seat, or 0
// when the seat does not exist in the plan.
func (p Plan) FloorOf(seat int) int {
	for _, f := range p.Floors {
		for _, row := range f.Rows {
			for _, c := range row {
				if c.Kind == CellSeat && c.Seat == seat {
					return f.Number
				}
			}
		}
	}
	return 0
}
