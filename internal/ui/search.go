package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andesvia/boleteria/internal/model"
)

// searchModel is the trip search screen: three filter inputs above a
// result list.  All filters are optional; an empty search lists every
// scheduled trip.
type searchModel struct {
	origin      textinput.Model
	destination textinput.Model
	date        textinput.Model
	focus       int // 0..2 inputs, 3 result list
	cities      model.CityIndex
	trips       []model.Trip
	searched    bool
	cursor      int
}

func newSearchModel() searchModel {
	origin := textinput.New()
	origin.Placeholder = "ciudad de origen"
	origin.CharLimit = 40
	origin.Focus()

	dest := textinput.New()
	dest.Placeholder = "ciudad de destino"
	dest.CharLimit = 40

	date := textinput.New()
	date.Placeholder = "fecha (YYYY-MM-DD)"
	date.CharLimit = 10

	return searchModel{origin: origin, destination: dest, date: date}
}

func (m *searchModel) setCities(c model.CityIndex) { m.cities = c }

func (m *searchModel) setTrips(trips []model.Trip) {
	m.trips = trips
	m.searched = true
	m.cursor = 0
	if len(trips) > 0 {
		m.setFocus(3)
	}
}

func (m *searchModel) setFocus(focus int) {
	m.focus = focus
	inputs := []*textinput.Model{&m.origin, &m.destination, &m.date}
	for i, in := range inputs {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *searchModel) filter() model.TripFilter {
	return model.TripFilter{
		Origin:      strings.TrimSpace(m.origin.Value()),
		Destination: strings.TrimSpace(m.destination.Value()),
		Date:        strings.TrimSpace(m.date.Value()),
	}
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m := &a.search
	switch msg.String() {
	case "esc":
		a.view = viewMenu
		return a, nil
	case "tab":
		m.setFocus((m.focus + 1) % 4)
		return a, nil
	case "shift+tab":
		m.setFocus((m.focus + 3) % 4)
		return a, nil
	}

	if m.focus == 3 {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.trips)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.trips) {
				a.busy = true
				return a, a.fetchTripCmd(m.trips[m.cursor].ID)
			}
		}
		return a, nil
	}

	if msg.String() == "enter" {
		a.busy = true
		return a, a.searchCmd(m.filter())
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.origin, cmd = m.origin.Update(msg)
	case 1:
		m.destination, cmd = m.destination.Update(msg)
	case 2:
		m.date, cmd = m.date.Update(msg)
	}
	return a, cmd
}

func (a *App) viewSearch() string {
	m := &a.search
	var b strings.Builder

	b.WriteString("\nBuscar viajes\n\n")
	b.WriteString("Origen   " + m.origin.View() + "\n")
	b.WriteString("Destino  " + m.destination.View() + "\n")
	b.WriteString("Fecha    " + m.date.View() + "\n")
	if len(m.cities.Origins) > 0 {
		b.WriteString(dimStyle.Render("ciudades: "+strings.Join(m.cities.Origins, ", ")) + "\n")
	}
	b.WriteString("\n")

	switch {
	case !m.searched:
		b.WriteString(dimStyle.Render("Presione enter para buscar") + "\n")
	case len(m.trips) == 0:
		b.WriteString(dimStyle.Render("Sin resultados") + "\n")
	default:
		for i, t := range m.trips {
			line := t.Label()
			if m.focus == 3 && i == m.cursor {
				b.WriteString(cursor(true) + selectedRowStyle.Render(line) + "\n")
			} else {
				b.WriteString(cursor(false) + line + "\n")
			}
		}
	}

	b.WriteString("\n" + helpStyle.Render("tab cambiar campo · enter buscar/abrir · esc volver"))
	return b.String()
}
