package locations

import "tourcab/models"

func Fixtures() []models.Location {
	return []models.Location{
		{
			ID:          "loc-ajanta",
			Name:        "Ajanta Caves",
			Description: "Thirty rock-cut Buddhist caves with murals dating from the 2nd century BCE.",
			Coordinates: models.Coordinates{Lat: 20.5519, Lng: 75.7033},
			Address:     "Ajanta, Aurangabad district, Maharashtra 431117",
			Type:        models.LocationCave,
			Status:      models.LocationActive,
			Image:       "/static/uploads/locations/ajanta.jpg",
		},
		{
			ID:          "loc-ellora",
			Name:        "Ellora Caves",
			Description: "Hindu, Buddhist and Jain cave temples including the monolithic Kailasa temple.",
			Coordinates: models.Coordinates{Lat: 20.0268, Lng: 75.1771},
			Address:     "Ellora, Aurangabad district, Maharashtra 431102",
			Type:        models.LocationCave,
			Status:      models.LocationActive,
			Image:       "/static/uploads/locations/ellora.jpg",
		},
		{
			ID:          "loc-maqbara",
			Name:        "Bibi Ka Maqbara",
			Description: "Seventeenth-century mausoleum built by Azam Shah in memory of his mother.",
			Coordinates: models.Coordinates{Lat: 19.9015, Lng: 75.3203},
			Address:     "Begumpura, Aurangabad, Maharashtra 431004",
			Type:        models.LocationHeritage,
			Status:      models.LocationActive,
			Image:       "/static/uploads/locations/maqbara.jpg",
		},
		{
			ID:          "loc-daulatabad",
			Name:        "Daulatabad Fort",
			Description: "Hilltop fortress of Devagiri guarded by moats, tunnels and the Chand Minar.",
			Coordinates: models.Coordinates{Lat: 19.9430, Lng: 75.2130},
			Address:     "Daulatabad, Aurangabad, Maharashtra 431002",
			Type:        models.LocationFort,
			Status:      models.LocationActive,
			Image:       "/static/uploads/locations/daulatabad.jpg",
		},
		{
			ID:          "loc-grishneshwar",
			Name:        "Grishneshwar Temple",
			Description: "One of the twelve Jyotirlinga shrines, a short walk from Ellora.",
			Coordinates: models.Coordinates{Lat: 20.0248, Lng: 75.1697},
			Address:     "Verul, Aurangabad district, Maharashtra 431102",
			Type:        models.LocationTemple,
			Status:      models.LocationActive,
			Image:       "/static/uploads/locations/grishneshwar.jpg",
		},
		{
			ID:          "loc-aurangabad",
			Name:        "Aurangabad City",
			Description: "City of gates and the base for every excursion.",
			Coordinates: models.Coordinates{Lat: 19.8762, Lng: 75.3433},
			Address:     "Aurangabad, Maharashtra",
			Type:        models.LocationCity,
			Status:      models.LocationInactive,
			Image:       "/static/uploads/locations/city.jpg",
		},
	}
}
