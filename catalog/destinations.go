package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"yatra/models"
)

// Major Indian tourist destinations with detailed information. The
// destination catalog is curated rather than fetched; hotels, restaurants
// and attractions come from the remote lookup service per city.
type seedDestination struct {
	Name        string
	State       string
	Region      string
	Budget      float64
	Description string
}

var indianDestinations = []seedDestination{
	{"Delhi", "Delhi", "North", 2500, "India's capital city, a vibrant blend of ancient history and modern culture. Home to iconic monuments like Red Fort, Qutub Minar, and India Gate."},
	{"Jaipur", "Rajasthan", "North", 2000, "The Pink City, famous for its stunning palaces, forts, and vibrant bazaars. Must-visit attractions include Amber Fort, City Palace, and Hawa Mahal."},
	{"Agra", "Uttar Pradesh", "North", 1800, "Home to the magnificent Taj Mahal, one of the Seven Wonders of the World. Also features Agra Fort and Fatehpur Sikri."},
	{"Amritsar", "Punjab", "North", 1500, "Spiritual center of Sikhism, home to the Golden Temple. Experience rich Punjabi culture, history, and delicious cuisine."},
	{"Shimla", "Himachal Pradesh", "North", 2200, "Queen of Hill Stations, offering stunning mountain views, colonial architecture, and pleasant weather year-round."},
	{"Bangalore", "Karnataka", "South", 2500, "India's Silicon Valley, known for its pleasant climate, gardens, and thriving tech culture. Features Lalbagh Botanical Garden and Bangalore Palace."},
	{"Chennai", "Tamil Nadu", "South", 2000, "Gateway to South India, rich in culture and heritage. Famous for Marina Beach, temples, and classical arts."},
	{"Hyderabad", "Telangana", "South", 2200, "City of Pearls, known for its rich history, biryani, and IT industry. Visit Charminar, Golconda Fort, and Ramoji Film City."},
	{"Kochi", "Kerala", "South", 2000, "Queen of Arabian Sea, a beautiful port city with colonial heritage, backwaters, and spice markets."},
	{"Mysore", "Karnataka", "South", 1800, "City of Palaces, famous for Mysore Palace, silk sarees, and sandalwood. Known for its royal heritage and yoga."},
	{"Mumbai", "Maharashtra", "West", 3500, "India's financial capital and Bollywood hub. Experience Gateway of India, Marine Drive, and vibrant nightlife."},
	{"Goa", "Goa", "West", 2500, "Beach paradise with Portuguese heritage, stunning coastline, water sports, and vibrant nightlife."},
	{"Pune", "Maharashtra", "West", 2000, "Oxford of the East, known for educational institutions, IT industry, and pleasant weather. Rich in Maratha history."},
	{"Ahmedabad", "Gujarat", "West", 1800, "UNESCO World Heritage City, known for textile industry, Sabarmati Ashram, and vibrant street food culture."},
	{"Udaipur", "Rajasthan", "West", 2200, "City of Lakes, featuring stunning palaces, romantic boat rides, and breathtaking sunset views over Lake Pichola."},
	{"Kolkata", "West Bengal", "East", 2000, "Cultural capital of India, known for literature, art, and colonial architecture. Home to Victoria Memorial and Howrah Bridge."},
	{"Bhubaneswar", "Odisha", "East", 1800, "Temple City of India, featuring ancient temples, caves, and rich Odishan culture and cuisine."},
	{"Darjeeling", "West Bengal", "East", 2200, "Queen of the Hills, famous for tea gardens, toy train, and stunning views of Kanchenjunga mountain."},
	{"Puri", "Odisha", "East", 1500, "Sacred coastal city, home to Jagannath Temple and beautiful beaches. Important pilgrimage destination."},
	{"Guwahati", "Assam", "Northeast", 2000, "Gateway to Northeast India, known for Kamakhya Temple, Brahmaputra River, and Assamese culture."},
	{"Shillong", "Meghalaya", "Northeast", 2200, "Scotland of the East, featuring rolling hills, waterfalls, and pleasant climate. Known for music and natural beauty."},
	{"Gangtok", "Sikkim", "Northeast", 2500, "Himalayan paradise with stunning mountain views, Buddhist monasteries, and adventure activities."},
	{"Bhopal", "Madhya Pradesh", "Central", 1800, "City of Lakes, known for its natural beauty, museums, and proximity to Sanchi Stupa."},
	{"Indore", "Madhya Pradesh", "Central", 1800, "Cleanest city of India, famous for street food, Rajwada Palace, and vibrant markets."},
	{"Nagpur", "Maharashtra", "Central", 1800, "Orange City, known for its oranges, tiger reserves, and central location in India."},
}

var bestTimeByRegion = map[string]string{
	"North":     "October to March",
	"South":     "November to February",
	"West":      "November to February",
	"East":      "October to March",
	"Northeast": "October to April",
	"Central":   "October to March",
}

var footfallByCity = map[string]string{
	"Delhi": "Very High", "Mumbai": "Very High", "Bangalore": "High",
	"Jaipur": "High", "Goa": "Very High", "Agra": "Very High",
	"Kolkata": "High", "Chennai": "High", "Hyderabad": "High",
	"Kochi": "Medium", "Shimla": "High", "Udaipur": "High",
	"Amritsar": "High", "Mysore": "Medium", "Pune": "High",
	"Ahmedabad": "Medium", "Bhubaneswar": "Medium", "Darjeeling": "High",
	"Puri": "High", "Guwahati": "Medium", "Shillong": "Medium",
	"Gangtok": "Medium", "Bhopal": "Low", "Indore": "Medium",
	"Nagpur": "Low",
}

// Destinations returns the curated destination catalog.
func Destinations() []models.Destination {
	out := make([]models.Destination, 0, len(indianDestinations))
	for _, seed := range indianDestinations {
		out = append(out, newDestination(seed))
	}
	return out
}

// DestinationByID looks up a curated destination; nil when unknown.
func DestinationByID(id string) *models.Destination {
	for _, seed := range indianDestinations {
		d := newDestination(seed)
		if d.ID == id {
			return &d
		}
	}
	return nil
}

func newDestination(seed seedDestination) models.Destination {
	bestTime, ok := bestTimeByRegion[seed.Region]
	if !ok {
		bestTime = "October to March"
	}
	footfall, ok := footfallByCity[seed.Name]
	if !ok {
		footfall = "Medium"
	}
	return models.Destination{
		ID:                  fmt.Sprintf("%s-%s", strings.ToLower(seed.Name), strings.ToLower(seed.Region)),
		Name:                seed.Name,
		State:               seed.State,
		Region:              seed.Region,
		Description:         seed.Description,
		AverageBudgetPerDay: seed.Budget,
		ImageURL:            "/placeholder.svg?query=" + url.QueryEscape(seed.Name+" India tourist destination"),
		BestTimeToVisit:     bestTime,
		AverageFootfall:     footfall,
	}
}
