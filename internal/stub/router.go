package stub

import (
	"github.com/labstack/echo/v4"

	"github.com/andesvia/boleteria/internal/middleware"
)

// RegisterRoutes mounts the stub's endpoints on an Echo instance.
// Paths and trailing slashes match the production backend.  Only
// login and the health check are reachable without a bearer token.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/healthz", h.Health)
	e.POST("/api/token/login/", h.Login)

	g := e.Group("/api")
	g.Use(middleware.JWTAuth(h.Cfg.JWTSecret))
	g.POST("/token/logout/", h.Logout)
	g.GET("/users/me/", h.Me)
	g.GET("/rutas/ciudades/", h.Cities)
	g.GET("/viajes/", h.SearchTrips)
	g.GET("/viajes/:id/", h.GetTrip)
	g.POST("/ventas/", h.CreateSale)
	g.GET("/historial-ventas/", h.SalesHistory)
	g.GET("/reporte-diario/", h.DailyReport)
}
