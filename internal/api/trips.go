package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/andesvia/boleteria/internal/model"
)

// ListCities returns the cities available as search filters.
func (c *Client) ListCities(ctx context.Context) (model.CityIndex, error) {
	var idx model.CityIndex
	if err := c.get(ctx, "/rutas/ciudades/", nil, &idx); err != nil {
		return model.CityIndex{}, err
	}
	return idx, nil
}

// SearchTrips lists the trips matching the filter.  Empty filter
// fields are omitted from the query, matching the backend's filter
// parameter names.
func (c *Client) SearchTrips(ctx context.Context, filter model.TripFilter) ([]model.Trip, error) {
	q := url.Values{}
	if filter.Origin != "" {
		q.Set("ruta__ciudad_origen", filter.Origin)
	}
	if filter.Destination != "" {
		q.Set("ruta__ciudad_destino", filter.Destination)
	}
	if filter.Date != "" {
		q.Set("fecha_salida", filter.Date)
	}
	var trips []model.Trip
	if err := c.get(ctx, "/viajes/", q, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTrip fetches one trip with its current occupancy.  The result is
// the authoritative seat state at the moment of the call.
func (c *Client) GetTrip(ctx context.Context, tripID uint64) (model.Trip, error) {
	var t model.Trip
	if err := c.get(ctx, "/viajes/"+strconv.FormatUint(tripID, 10)+"/", nil, &t); err != nil {
		return model.Trip{}, err
	}
	return t, nil
}
