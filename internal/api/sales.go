package api

import (
	"context"

	"github.com/andesvia/boleteria/internal/model"
)

// SubmitSale sends a finalized sale to the backend.  A conflict
// (seat sold by another terminal in the meantime) comes back as an
// error with KindConflict; see the classification in client.go.
func (c *Client) SubmitSale(ctx context.Context, req model.SaleRequest) (model.SaleReceipt, error) {
	var receipt model.SaleReceipt
	if err := c.post(ctx, "/ventas/", req, &receipt); err != nil {
		return model.SaleReceipt{}, err
	}
	return receipt, nil
}

// SalesHistory lists the seller's past sales, newest first.
func (c *Client) SalesHistory(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := c.get(ctx, "/historial-ventas/", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// DailyReport returns per-day sale totals.
func (c *Client) DailyReport(ctx context.Context) ([]model.DailyReportRow, error) {
	var rows []model.DailyReportRow
	if err := c.get(ctx, "/reporte-diario/", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
