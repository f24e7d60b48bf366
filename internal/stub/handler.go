package stub

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/andesvia/boleteria/internal/config"
	"github.com/andesvia/boleteria/internal/model"
	"github.com/andesvia/boleteria/internal/utils"
)

// Handler serves the stub's HTTP endpoints.  The wire shapes mirror
// the production backend so the terminal cannot tell the difference.
type Handler struct {
	Cfg      config.Stub
	Store    *Store
	validate *validator.Validate
}

// NewHandler builds a Handler.  The store must be non-nil.
func NewHandler(cfg config.Stub, store *Store) *Handler {
	if store == nil {
		panic("nil store passed to stub.NewHandler")
	}
	return &Handler{Cfg: cfg, Store: store, validate: validator.New()}
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Login verifies credentials and issues an access token, answering in
// the token-login shape the terminal expects.
func (h *Handler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	u, ok := h.Store.UserByUsername(req.Username)
	if !ok || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "credenciales inválidas"})
	}
	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"auth_token": tok.Token})
}

// Logout acknowledges token invalidation.  The stub keeps no token
// state, so there is nothing to revoke.
func (h *Handler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated seller's account.
func (h *Handler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)
	u, ok := h.Store.UserByUsername(username)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	return c.JSON(http.StatusOK, u)
}

// Cities lists search filter options.
func (h *Handler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Cities())
}

// SearchTrips lists trips matching the backend's filter parameters.
func (h *Handler) SearchTrips(c echo.Context) error {
	filter := model.TripFilter{
		Origin:      c.QueryParam("ruta__ciudad_origen"),
		Destination: c.QueryParam("ruta__ciudad_destino"),
		Date:        c.QueryParam("fecha_salida"),
	}
	return c.JSON(http.StatusOK, h.Store.SearchTrips(filter))
}

// GetTrip returns one trip with current occupancy.
func (h *Handler) GetTrip(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid trip id"})
	}
	t, ok := h.Store.Trip(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "viaje no encontrado"})
	}
	return c.JSON(http.StatusOK, t)
}

// CreateSale finalizes a sale.  Payload validation problems come back
// as 400 with field detail; seat conflicts as 409 with the
// production backend's message shape.
func (h *Handler) CreateSale(c echo.Context) error {
	var req model.SaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationPayload(err))
	}
	seller, _ := c.Get("username").(string)
	sale, err := h.Store.RecordSale(req, seller)
	if err != nil {
		var taken *SeatTakenError
		if errors.As(err, &taken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": taken.Error()})
		}
		var rng *SeatRangeError
		if errors.As(err, &rng) {
			return c.JSON(http.StatusBadRequest, echo.Map{"asientos": []string{rng.Error()}})
		}
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, model.SaleReceipt{ID: sale.ID, Total: sale.Total})
}

// SalesHistory lists recorded sales.
func (h *Handler) SalesHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Sales())
}

// DailyReport returns per-day totals.
func (h *Handler) DailyReport(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.DailyReport())
}

// validationPayload flattens validator errors into the backend's
// field->messages error shape.
func validationPayload(err error) map[string]any {
	out := make(map[string]any)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["general"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = []string{"invalid value (" + fe.Tag() + ")"}
	}
	return out
}
