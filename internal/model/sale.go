package model

import "time"

// SalePassenger assigns one passenger to one seat inside a sale.  The
// validate tags encode the submission rules: a passenger needs a name
// and a numeric document of at least 8 characters.
type SalePassenger struct {
	SeatNumber    int    `json:"numero_asiento" validate:"required,gt=0"`
	FullName      string `json:"nombre_pasajero" validate:"required"`
	PassengerDoc  string `json:"dni_pasajero" validate:"required,numeric,min=8"`
}

// SaleRequest is the payload sent to finalize a sale.  It is built
// exactly once per submission, with seats ordered by ascending seat
// number, and never mutated afterwards; a retry builds a fresh one.
type SaleRequest struct {
	TripID uint64          `json:"viaje_id" validate:"required"`
	Seats  []SalePassenger `json:"asientos" validate:"required,min=1,dive"`
}

// SaleReceipt is the backend's answer to a successful sale.
type SaleReceipt struct {
	ID    uint64  `json:"id"`
	Total float64 `json:"total"`
}

// Sale is a finalized sale as returned by the history endpoint.
//
// Fields:
//  ID        – primary key identifier.
//  Reference – opaque external reference for the sale.
//  TripID    – trip the seats were sold on.
//  Trip      – summary of the trip (route and departure), if expanded.
//  Seller    – username of the seller who closed the sale.
//  Seats     – passenger/seat assignments contained in the sale.
//  Total     – total amount charged.
//  SoldAt    – timestamp when the sale was closed.
type Sale struct {
	ID        uint64          `json:"id"`
	Reference string          `json:"referencia"`
	TripID    uint64          `json:"viaje_id"`
	Trip      *Trip           `json:"viaje,omitempty"`
	Seller    string          `json:"vendedor"`
	Seats     []SalePassenger `json:"asientos"`
	Total     float64         `json:"total"`
	SoldAt    time.Time       `json:"fecha_venta"`
}

// DailyReportRow aggregates the sales of one calendar day.
type DailyReportRow struct {
	Date       string  `json:"fecha"`
	TotalSales float64 `json:"total_ventas"`
}
