package stub

import (
	"time"

	"github.com/andesvia/boleteria/internal/model"
)

// Seed loads demo sellers and trips so a freshly started stub is
// immediately usable from the terminal.  Departure dates are placed
// in the near future relative to startup.
func Seed(s *Store, bcryptCost int) error {
	if err := s.AddUser(1, "vendedor1", "María Quispe", "boleteria123", bcryptCost); err != nil {
		return err
	}
	if err := s.AddUser(2, "vendedor2", "Jorge Huamán", "boleteria123", bcryptCost); err != nil {
		return err
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	s.AddTrip(model.Trip{
		ID:            1,
		Route:         model.Route{ID: 1, OriginCity: "Lima", DestinationCity: "Cusco", Name: "Lima - Cusco"},
		DepartureDate: tomorrow,
		DepartureTime: "20:30:00",
		Bus:           model.Bus{ID: 1, Plate: "V2G-781", TotalCapacity: 60},
		PricePerSeat:  95,
		OccupiedSeats: []model.OccupiedSeat{
			{SeatNumber: 5, PassengerName: "Ana Torres", PassengerDoc: "45678912"},
			{SeatNumber: 13, PassengerName: "Luis Paredes", PassengerDoc: "87654321"},
		},
		ReservedSeats: []int{60},
	})
	s.AddTrip(model.Trip{
		ID:            2,
		Route:         model.Route{ID: 2, OriginCity: "Lima", DestinationCity: "Arequipa", Name: "Lima - Arequipa"},
		DepartureDate: tomorrow,
		DepartureTime: "21:00:00",
		Bus:           model.Bus{ID: 2, Plate: "B7K-339", TotalCapacity: 40},
		PricePerSeat:  70,
	})
	s.AddTrip(model.Trip{
		ID:            3,
		Route:         model.Route{ID: 3, OriginCity: "Cusco", DestinationCity: "Puno", Name: "Cusco - Puno"},
		DepartureDate: nextWeek,
		DepartureTime: "08:00:00",
		Bus:           model.Bus{ID: 3, Plate: "X1D-204", TotalCapacity: 60},
		PricePerSeat:  45,
	})
	return nil
}
