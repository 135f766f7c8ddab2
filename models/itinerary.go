package models

// Day is one ordered slot of the trip: at most one destination and hotel,
// restaurants and attractions unique by id, free-text notes.
type Day struct {
	Day         int          `json:"day" bson:"day"`
	Destination *Destination `json:"destination" bson:"destination,omitempty"`
	Hotel       *Hotel       `json:"hotel" bson:"hotel,omitempty"`
	Restaurants []Restaurant `json:"restaurants" bson:"restaurants"`
	Attractions []Attraction `json:"attractions" bson:"attractions"`
	Notes       string       `json:"notes" bson:"notes"`
}

// ItinerarySnapshot is the full trip state handed across the persistence and
// export boundaries. TotalCost is computed at capture time.
type ItinerarySnapshot struct {
	TripName    string  `json:"tripName" bson:"trip_name"`
	Days        []Day   `json:"days" bson:"days"`
	TotalBudget float64 `json:"totalBudget" bson:"budget_amount"`
	TotalCost   float64 `json:"totalCost" bson:"estimated_cost"`
	NumDays     int     `json:"numDays" bson:"num_days"`
}

// SavedItinerary is the persisted form of a snapshot.
type SavedItinerary struct {
	ItineraryID string  `json:"itineraryid" bson:"itineraryid"`
	UserID      string  `json:"user_id" bson:"user_id"`
	Destination string  `json:"destination" bson:"destination"`
	TripName    string  `json:"trip_name" bson:"trip_name"`
	NumDays     int     `json:"num_days" bson:"num_days"`
	TotalBudget float64 `json:"budget_amount" bson:"budget_amount"`
	TotalCost   float64 `json:"estimated_cost" bson:"estimated_cost"`
	Days        []Day   `json:"days" bson:"days"`
	CreatedAt   string  `json:"created_at" bson:"created_at"`
	Deleted     bool    `json:"-" bson:"deleted,omitempty"`
}
