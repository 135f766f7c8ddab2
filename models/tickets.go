package models

type Ticket struct {
	TicketID          string   `json:"id" bson:"ticketid"`
	TicketType        string   `json:"ticket_type" bson:"ticket_type"` // train/flight/bus/entry_pass/attraction_pass
	Name              string   `json:"name" bson:"name"`
	Description       string   `json:"description" bson:"description"`
	Source            string   `json:"source,omitempty" bson:"source,omitempty"`
	Destination       string   `json:"destination,omitempty" bson:"destination,omitempty"`
	TravelDate        string   `json:"travel_date,omitempty" bson:"travel_date,omitempty"`
	Price             float64  `json:"price" bson:"price"`
	Currency          string   `json:"currency" bson:"currency"`
	AvailableQuantity int      `json:"available_quantity" bson:"available_quantity"`
	ImageURL          string   `json:"image_url" bson:"image_url"`
	Provider          string   `json:"provider" bson:"provider"`
	BookingURL        string   `json:"booking_url,omitempty" bson:"booking_url,omitempty"`
	DurationHours     float64  `json:"duration_hours,omitempty" bson:"duration_hours,omitempty"`
	ValidityDays      int      `json:"validity_days,omitempty" bson:"validity_days,omitempty"`
	Benefits          []string `json:"benefits" bson:"benefits"`
}

type TicketBooking struct {
	BookingID          string           `json:"id" bson:"bookingid"`
	UserID             string           `json:"user_id" bson:"user_id"`
	ItineraryID        string           `json:"itinerary_id" bson:"itinerary_id"`
	TicketID           string           `json:"ticket_id" bson:"ticket_id"`
	Quantity           int              `json:"quantity" bson:"quantity"`
	TotalPrice         float64          `json:"total_price" bson:"total_price"`
	BookingStatus      string           `json:"booking_status" bson:"booking_status"` // pending/confirmed/cancelled
	BookingDate        string           `json:"booking_date" bson:"booking_date"`
	ConfirmationNumber string           `json:"confirmation_number,omitempty" bson:"confirmation_number,omitempty"`
	PassengerDetails   []map[string]any `json:"passenger_details,omitempty" bson:"passenger_details,omitempty"`
	CreatedAt          string           `json:"created_at" bson:"created_at"`
}
