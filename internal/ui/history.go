package ui

import (
	"fmt"
	"strings"

	"github.com/andesvia/boleteria/internal/model"
)

// historyModel holds the sales returned by the history endpoint,
// newest first.
type historyModel struct {
	sales []model.Sale
}

// reportModel holds the per-day totals of the daily report.
type reportModel struct {
	rows []model.DailyReportRow
}

func (a *App) viewHistory() string {
	var b strings.Builder
	b.WriteString("\nHistorial de ventas\n\n")
	if len(a.history.sales) == 0 {
		b.WriteString(dimStyle.Render("Sin ventas registradas") + "\n")
	}
	for _, s := range a.history.sales {
		line := fmt.Sprintf("#%d  %s  %s  %d asiento(s)  S/ %.2f",
			s.ID, s.SoldAt.Format("2006-01-02 15:04"), s.Seller, len(s.Seats), s.Total)
		if s.Trip != nil {
			line += "  " + dimStyle.Render(s.Trip.Route.OriginCity+" → "+s.Trip.Route.DestinationCity)
		}
		b.WriteString(line + "\n")
		for _, p := range s.Seats {
			b.WriteString(dimStyle.Render(fmt.Sprintf("    asiento %d: %s (%s)", p.SeatNumber, p.FullName, p.PassengerDoc)) + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("esc volver"))
	return b.String()
}

func (a *App) viewReport() string {
	var b strings.Builder
	b.WriteString("\nReporte diario\n\n")
	if len(a.report.rows) == 0 {
		b.WriteString(dimStyle.Render("Sin ventas registradas") + "\n")
	}
	for _, r := range a.report.rows {
		b.WriteString(fmt.Sprintf("  %s  S/ %.2f\n", r.Date, r.TotalSales))
	}
	b.WriteString("\n" + helpStyle.Render("esc volver"))
	return b.String()
}
