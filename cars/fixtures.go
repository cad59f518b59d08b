package cars

import "tourcab/models"

func Fixtures() []models.Car {
	return []models.Car{
		{ID: "car-dzire", Name: "Maruti Suzuki Dzire", Type: "sedan", PricePerDay: 2200, Seats: 4, Transmission: models.TransmissionManual, Fuel: models.FuelPetrol, Image: "/static/uploads/cars/dzire.jpg", Available: true},
		{ID: "car-innova", Name: "Toyota Innova Crysta", Type: "suv", PricePerDay: 3800, Seats: 7, Transmission: models.TransmissionManual, Fuel: models.FuelDiesel, Image: "/static/uploads/cars/innova.jpg", Available: true},
		{ID: "car-ertiga", Name: "Maruti Suzuki Ertiga", Type: "muv", PricePerDay: 2800, Seats: 6, Transmission: models.TransmissionManual, Fuel: models.FuelPetrol, Image: "/static/uploads/cars/ertiga.jpg", Available: false},
		{ID: "car-nexon", Name: "Tata Nexon EV", Type: "suv", PricePerDay: 3000, Seats: 5, Transmission: models.TransmissionAutomatic, Fuel: models.FuelElectric, Image: "/static/uploads/cars/nexon.jpg", Available: true},
		{ID: "car-tempo", Name: "Force Tempo Traveller", Type: "van", PricePerDay: 5500, Seats: 12, Transmission: models.TransmissionManual, Fuel: models.FuelDiesel, Image: "/static/uploads/cars/tempo.jpg", Available: true},
	}
}
