package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andesvia/boleteria/internal/api"
	"github.com/andesvia/boleteria/internal/layout"
	"github.com/andesvia/boleteria/internal/model"
	"github.com/andesvia/boleteria/internal/sale"
	"github.com/andesvia/boleteria/internal/seatmap"
)

// seatModel is the selling screen of one trip: the rendered floor
// plan, the seat/passenger stores and the submitter, all owned by this
// view and discarded when the seller leaves it.
type seatModel struct {
	trip      model.Trip
	plan      layout.Plan
	store     *seatmap.Store
	submitter *sale.Submitter

	floorIdx int
	curRow   int
	curCol   int

	formOpen  bool
	formSeat  int
	formField int // 0 name, 1 document
	input     textinput.Model
}

// openSeatMap builds the seat-map view for a freshly fetched trip, or
// for a refreshed copy of the one already open.
func (a *App) openSeatMap(trip model.Trip) (tea.Model, tea.Cmd) {
	tmpl, err := layout.ForBus(a.cfg.LayoutTemplate, trip.Bus.TotalCapacity, a.cfg.FloorOneSeats)
	if err != nil {
		a.setError(err.Error())
		return a, nil
	}
	plan, err := tmpl.Plan()
	if err != nil {
		a.setError(err.Error())
		return a, nil
	}

	store := seatmap.New(seatmap.NewPassengerStore())
	if err := store.Initialize(trip.Bus.TotalCapacity, trip.OccupiedSeatNumbers(), trip.ReservedSeats); err != nil {
		a.setError(err.Error())
		return a, nil
	}

	in := textinput.New()
	in.CharLimit = 64

	a.seat = &seatModel{
		trip:      trip,
		plan:      plan,
		store:     store,
		submitter: sale.NewSubmitter(a.client, a.client),
		input:     in,
	}
	a.seat.placeCursorOnFirstSeat()
	a.view = viewSeatMap
	return a, nil
}

// finishSale applies the result of a submission.  The submitter has
// already reconciled the store; this only updates the trip copy and
// the status line.
func (a *App) finishSale(msg saleDoneMsg) (tea.Model, tea.Cmd) {
	if a.seat == nil {
		return a, nil
	}
	if msg.outcome.Trip != nil {
		a.seat.trip = *msg.outcome.Trip
	}
	if msg.err != nil {
		var verr *sale.ValidationError
		switch {
		case errors.Is(msg.err, sale.ErrEmptySelection):
			a.setError("Seleccione al menos un asiento")
		case errors.As(msg.err, &verr):
			a.setError("Complete los datos de los pasajeros: asiento(s) " + joinInts(verr.Seats))
		default:
			a.setError(api.Message(msg.err))
		}
		return a, nil
	}
	a.setInfo(fmt.Sprintf("Venta #%d registrada, total S/ %.2f", msg.outcome.Receipt.ID, msg.outcome.Receipt.Total))
	return a, nil
}

func (a *App) submitSaleCmd() tea.Cmd {
	m := a.seat
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.RequestTimeout)
		defer cancel()
		// Input is gated and the seat grid is not rendered while
		// this runs, so the stores are not read concurrently.
		out, err := m.submitter.Submit(ctx, m.trip, m.store)
		return saleDoneMsg{outcome: out, err: err}
	}
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func (m *seatModel) floor() layout.Floor { return m.plan.Floors[m.floorIdx] }

func (m *seatModel) seatUnderCursor() int {
	f := m.floor()
	if m.curRow >= len(f.Rows) || m.curCol >= len(f.Rows[m.curRow]) {
		return 0
	}
	c := f.Rows[m.curRow][m.curCol]
	if c.Kind != layout.CellSeat {
		return 0
	}
	return c.Seat
}

func (m *seatModel) placeCursorOnFirstSeat() {
	f := m.floor()
	for r, row := range f.Rows {
		for col, c := range row {
			if c.Kind == layout.CellSeat {
				m.curRow, m.curCol = r, col
				return
			}
		}
	}
	m.curRow, m.curCol = 0, 0
}

// moveCursor walks the grid one step and snaps to the nearest seat
// cell in the target row.  Moves that reach no seat are ignored.
func (m *seatModel) moveCursor(dRow, dCol int) {
	f := m.floor()
	if dCol != 0 {
		for col := m.curCol + dCol; col >= 0 && col < len(f.Rows[m.curRow]); col += dCol {
			if f.Rows[m.curRow][col].Kind == layout.CellSeat {
				m.curCol = col
				return
			}
		}
		return
	}
	for row := m.curRow + dRow; row >= 0 && row < len(f.Rows); row += dRow {
		if col, ok := nearestSeat(f.Rows[row], m.curCol); ok {
			m.curRow, m.curCol = row, col
			return
		}
	}
}

func nearestSeat(row layout.Row, wantCol int) (int, bool) {
	best, bestDist := -1, len(row)+1
	for col, c := range row {
		if c.Kind != layout.CellSeat {
			continue
		}
		dist := col - wantCol
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = col, dist
		}
	}
	return best, best >= 0
}

func (a *App) updateSeatMap(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := a.seat
	if m == nil {
		a.view = viewSearch
		return a, nil
	}
	if m.formOpen {
		return a.updateSeatForm(msg)
	}

	switch msg.String() {
	case "esc":
		a.seat = nil
		a.view = viewSearch
		return a, nil
	case "tab":
		if len(m.plan.Floors) > 1 {
			m.floorIdx = (m.floorIdx + 1) % len(m.plan.Floors)
			m.placeCursorOnFirstSeat()
		}
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "enter", " ":
		if seat := m.seatUnderCursor(); seat > 0 {
			if _, ok := m.store.Toggle(seat); !ok {
				a.setError(fmt.Sprintf("El asiento %d no está disponible", seat))
			}
		}
	case "f":
		seat := m.seatUnderCursor()
		if st, _ := m.store.Status(seat); st == seatmap.StatusSelected {
			m.openForm(seat)
		} else {
			a.setError("Seleccione el asiento antes de registrar al pasajero")
		}
	case "v":
		a.busy = true
		return a, a.submitSaleCmd()
	case "r":
		a.busy = true
		return a, a.fetchTripCmd(m.trip.ID)
	}
	return a, nil
}

func (m *seatModel) openForm(seat int) {
	m.formOpen = true
	m.formSeat = seat
	m.formField = 0
	rec, _ := m.store.Passengers().Get(seat)
	m.input.SetValue(rec.FullName)
	m.input.Placeholder = "nombre completo"
	m.input.CursorEnd()
	m.input.Focus()
}

// commitFormField writes the input into the passenger store and, when
// advancing, loads the other field.  Toggling the seat away closes the
// record underneath us; the gated setters make that safe.
func (m *seatModel) commitFormField() {
	val := strings.TrimSpace(m.input.Value())
	if m.formField == 0 {
		m.store.Passengers().SetName(m.formSeat, val)
	} else {
		m.store.Passengers().SetDocument(m.formSeat, val)
	}
}

func (m *seatModel) loadFormField() {
	rec, _ := m.store.Passengers().Get(m.formSeat)
	if m.formField == 0 {
		m.input.SetValue(rec.FullName)
		m.input.Placeholder = "nombre completo"
	} else {
		m.input.SetValue(rec.PassengerDoc)
		m.input.Placeholder = "documento (mín. 8 dígitos)"
	}
	m.input.CursorEnd()
}

func (a *App) updateSeatForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := a.seat
	switch msg.String() {
	case "esc":
		m.commitFormField()
		m.formOpen = false
		m.input.Blur()
		return a, nil
	case "tab", "shift+tab":
		m.commitFormField()
		m.formField = 1 - m.formField
		m.loadFormField()
		return a, nil
	case "enter":
		m.commitFormField()
		if m.formField == 0 {
			m.formField = 1
			m.loadFormField()
			return a, nil
		}
		m.formOpen = false
		m.input.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return a, cmd
}

func (a *App) viewSeatMap() string {
	m := a.seat
	if m == nil {
		return ""
	}
	if a.busy {
		return "\n" + dimStyle.Render("Procesando...") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + m.trip.Label() + dimStyle.Render(fmt.Sprintf("  S/ %.2f por asiento", m.trip.PricePerSeat)) + "\n\n")

	b.WriteString(m.renderFloorTabs() + "\n")
	b.WriteString(boxStyle.Render(m.renderFloor()) + "\n\n")
	b.WriteString(m.renderLegend() + "\n")
	b.WriteString(m.renderSelection() + "\n")

	if m.formOpen {
		label := "Nombre"
		if m.formField == 1 {
			label = "Documento"
		}
		form := fmt.Sprintf("Pasajero del asiento %d\n%s: %s", m.formSeat, label, m.input.View())
		b.WriteString("\n" + boxStyle.Render(form) + "\n")
		b.WriteString(helpStyle.Render("enter siguiente campo · tab alternar · esc cerrar"))
		return b.String()
	}

	b.WriteString("\n" + helpStyle.Render("flechas mover · enter marcar · f pasajero · tab piso · v vender · r actualizar · esc volver"))
	return b.String()
}

func (m *seatModel) renderFloorTabs() string {
	if len(m.plan.Floors) < 2 {
		return ""
	}
	tabs := make([]string, len(m.plan.Floors))
	for i, f := range m.plan.Floors {
		label := fmt.Sprintf(" Piso %d ", f.Number)
		if i == m.floorIdx {
			tabs[i] = selectedRowStyle.Render(label)
		} else {
			tabs[i] = dimStyle.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}

func (m *seatModel) renderFloor() string {
	f := m.floor()
	lines := make([]string, 0, len(f.Rows))
	for r, row := range f.Rows {
		cells := make([]string, 0, len(row))
		for col, c := range row {
			cells = append(cells, m.renderCell(c, r == m.curRow && col == m.curCol))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *seatModel) renderCell(c layout.Cell, underCursor bool) string {
	const w = 4
	switch c.Kind {
	case layout.CellSeat:
		label := fmt.Sprintf("%*d", w, c.Seat)
		if underCursor {
			return seatCursorStyle.Render(label)
		}
		st, _ := m.store.Status(c.Seat)
		switch st {
		case seatmap.StatusSelected:
			return seatSelectedStyle.Render(label)
		case seatmap.StatusOccupied:
			return seatOccupiedStyle.Render(label)
		case seatmap.StatusReserved:
			return seatReservedStyle.Render(label)
		default:
			return seatAvailableStyle.Render(label)
		}
	case layout.CellService:
		label := c.Service.String()
		if len(label) > w {
			label = label[:w]
		}
		return serviceCellStyle.Render(fmt.Sprintf("%*s", w, label))
	default:
		return strings.Repeat(" ", w)
	}
}

func (m *seatModel) renderLegend() string {
	counts := m.store.CountByStatus()
	parts := []string{
		seatAvailableStyle.Render(fmt.Sprintf("libres %d", counts[seatmap.StatusAvailable])),
		seatSelectedStyle.Render(fmt.Sprintf(" seleccionados %d ", counts[seatmap.StatusSelected])),
		seatOccupiedStyle.Render(fmt.Sprintf("ocupados %d", counts[seatmap.StatusOccupied])),
		seatReservedStyle.Render(fmt.Sprintf("reservados %d", counts[seatmap.StatusReserved])),
	}
	return strings.Join(parts, dimStyle.Render("  ·  "))
}

func (m *seatModel) renderSelection() string {
	seats := m.store.SelectedSeats()
	if len(seats) == 0 {
		return dimStyle.Render("Sin asientos seleccionados")
	}
	var b strings.Builder
	for _, n := range seats {
		rec, _ := m.store.Passengers().Get(n)
		name := rec.FullName
		if name == "" {
			name = dimStyle.Render("(sin nombre)")
		}
		doc := rec.PassengerDoc
		if doc == "" {
			doc = dimStyle.Render("(sin documento)")
		}
		b.WriteString(fmt.Sprintf("  asiento %d: %s %s\n", n, name, doc))
	}
	b.WriteString(fmt.Sprintf("  total: S/ %.2f", m.store.SelectionTotal(m.trip.PricePerSeat)))
	return b.String()
}
