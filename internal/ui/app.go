// Package ui is the bubbletea front end of the point-of-sale
// terminal.  One App model owns the whole session; each screen keeps
// its state in a sub-model updated exclusively from the single update
// loop, so no view state is ever mutated concurrently.
package ui

import (
	"context"
	"net/http"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andesvia/boleteria/internal/api"
	"github.com/andesvia/boleteria/internal/config"
	"github.com/andesvia/boleteria/internal/model"
	"github.com/andesvia/boleteria/internal/sale"
	"github.com/andesvia/boleteria/internal/session"
)

type view int

const (
	viewLogin view = iota
	viewMenu
	viewSearch
	viewSeatMap
	viewHistory
	viewReport
)

// Messages delivered by asynchronous commands.  Every network call
// finishes as exactly one of these; state changes happen only when
// the message is handled.
type (
	errMsg       struct{ err error }
	tokenMsg     struct{ token string }
	meMsg        struct{ user model.User }
	loggedOutMsg struct{}
	citiesMsg    struct{ cities model.CityIndex }
	tripsMsg     struct{ trips []model.Trip }
	tripMsg      struct {
		trip  model.Trip
		stale bool
	}
	saleDoneMsg struct {
		outcome sale.Outcome
		err     error
	}
	historyMsg struct{ sales []model.Sale }
	reportMsg  struct{ rows []model.DailyReportRow }
)

var menuItems = []string{
	"Vender pasajes",
	"Historial de ventas",
	"Reporte diario",
	"Cerrar sesión",
}

// App is the root model.
type App struct {
	cfg     config.POS
	client  *api.Client
	fetcher *api.TripFetcher
	sess    *session.Session

	view       view
	width      int
	height     int
	busy       bool
	status     string
	statusErr  bool
	menuCursor int

	spinner spinner.Model

	login   loginModel
	search  searchModel
	seat    *seatModel
	history historyModel
	report  reportModel
}

// Run wires the HTTP stack to a fresh App and blocks until the seller
// quits.  The session transport reads the session through the App so
// login and logout take effect immediately.
func Run(cfg config.POS) error {
	app := newApp(cfg)
	hc := &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: &session.Transport{Source: app.currentSession},
	}
	app.client = api.New(cfg.APIBaseURL, hc)
	app.fetcher = api.NewTripFetcher(app.client)

	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}

func newApp(cfg config.POS) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return &App{
		cfg:     cfg,
		view:    viewLogin,
		spinner: s,
		login:   newLoginModel(),
		search:  newSearchModel(),
	}
}

// currentSession is handed to the session transport.
func (a *App) currentSession() *session.Session { return a.sess }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd { return tea.Batch(a.spinner.Tick, textinput.Blink) }

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case errMsg:
		a.busy = false
		a.setError(api.Message(msg.err))
		return a, nil

	case tokenMsg:
		// Provisional session so the "me" call carries the token.
		a.sess = session.New(msg.token, model.User{})
		return a, a.meCmd()

	case meMsg:
		a.busy = false
		a.sess = session.New(a.sess.Token, msg.user)
		a.view = viewMenu
		a.menuCursor = 0
		a.setInfo("Sesión iniciada como " + msg.user.Username)
		return a, nil

	case loggedOutMsg:
		a.busy = false
		a.sess = nil
		a.seat = nil
		a.view = viewLogin
		a.login = newLoginModel()
		a.setInfo("Sesión cerrada")
		return a, nil

	case citiesMsg:
		a.busy = false
		a.search.setCities(msg.cities)
		return a, nil

	case tripsMsg:
		a.busy = false
		a.search.setTrips(msg.trips)
		return a, nil

	case tripMsg:
		if msg.stale {
			// Superseded by a newer fetch; drop it.
			return a, nil
		}
		a.busy = false
		return a.openSeatMap(msg.trip)

	case saleDoneMsg:
		a.busy = false
		return a.finishSale(msg)

	case historyMsg:
		a.busy = false
		a.history.sales = msg.sales
		a.view = viewHistory
		return a, nil

	case reportMsg:
		a.busy = false
		a.report.rows = msg.rows
		a.view = viewReport
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.busy {
		// One network call at a time; ignore input while waiting.
		return a, nil
	}
	a.clearStatus()
	switch a.view {
	case viewLogin:
		return a.updateLogin(msg)
	case viewMenu:
		return a.updateMenu(msg)
	case viewSearch:
		return a.updateSearch(msg)
	case viewSeatMap:
		return a.updateSeatMap(msg)
	case viewHistory, viewReport:
		return a.updateReadView(msg)
	}
	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "down", "j":
		if a.menuCursor < len(menuItems)-1 {
			a.menuCursor++
		}
	case "enter":
		switch a.menuCursor {
		case 0:
			a.view = viewSearch
			a.busy = true
			return a, a.citiesCmd()
		case 1:
			a.busy = true
			return a, a.historyCmd()
		case 2:
			a.busy = true
			return a, a.reportCmd()
		case 3:
			a.busy = true
			return a, a.logoutCmd()
		}
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) updateReadView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.view = viewMenu
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	body := ""
	switch a.view {
	case viewLogin:
		body = a.viewLogin()
	case viewMenu:
		body = a.viewMenu()
	case viewSearch:
		body = a.viewSearch()
	case viewSeatMap:
		body = a.viewSeatMap()
	case viewHistory:
		body = a.viewHistory()
	case viewReport:
		body = a.viewReport()
	}
	return a.header() + "\n" + body + "\n" + a.footer()
}

func (a *App) header() string {
	title := titleStyle.Render("Boletería – Venta de Pasajes")
	who := ""
	if a.sess != nil {
		who = dimStyle.Render("  vendedor: " + a.sess.User.Username)
		if a.sess.Expired() {
			who += "  " + errorStyle.Render("sesión expirada")
		}
	}
	if a.busy {
		return title + who + "  " + a.spinner.View()
	}
	return title + who
}

func (a *App) footer() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return errorStyle.Render(a.status)
	}
	return okStyle.Render(a.status)
}

func (a *App) viewMenu() string {
	out := "\n"
	for i, item := range menuItems {
		if i == a.menuCursor {
			out += cursor(true) + selectedRowStyle.Render(item) + "\n"
		} else {
			out += cursor(false) + item + "\n"
		}
	}
	out += "\n" + helpStyle.Render("↑/↓ navegar · enter seleccionar · q salir")
	return out
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

func (a *App) setInfo(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) clearStatus() {
	a.status = ""
	a.statusErr = false
}

// ----- commands -----

func (a *App) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.RequestTimeout)
}

func (a *App) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		token, err := a.client.Login(ctx, username, password)
		if err != nil {
			return errMsg{err}
		}
		return tokenMsg{token: token}
	}
}

func (a *App) meCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		user, err := a.client.Me(ctx)
		if err != nil {
			// The token works even when the profile lookup does
			// not; proceed with an anonymous session.
			return meMsg{user: model.User{}}
		}
		return meMsg{user: user}
	}
}

func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		// Best effort: the local session dies regardless.
		_ = a.client.Logout(ctx)
		return loggedOutMsg{}
	}
}

func (a *App) citiesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		cities, err := a.client.ListCities(ctx)
		if err != nil {
			return errMsg{err}
		}
		return citiesMsg{cities: cities}
	}
}

func (a *App) searchCmd(filter model.TripFilter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		trips, err := a.client.SearchTrips(ctx, filter)
		if err != nil {
			return errMsg{err}
		}
		return tripsMsg{trips: trips}
	}
}

func (a *App) fetchTripCmd(tripID uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		trip, stale, err := a.fetcher.Fetch(ctx, tripID)
		if stale {
			return tripMsg{stale: true}
		}
		if err != nil {
			return errMsg{err}
		}
		return tripMsg{trip: trip}
	}
}

func (a *App) historyCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		sales, err := a.client.SalesHistory(ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{sales: sales}
	}
}

func (a *App) reportCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := a.callCtx()
		defer cancel()
		rows, err := a.client.DailyReport(ctx)
		if err != nil {
			return errMsg{err}
		}
		return reportMsg{rows: rows}
	}
}
