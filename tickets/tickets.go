package tickets

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yatra/db"
	"yatra/middleware"
	"yatra/models"
	"yatra/utils"
)

// GET /api/tickets?type=&destination=
func GetTickets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	filter := bson.M{}
	if t := query.Get("type"); t != "" {
		filter["ticket_type"] = t
	}
	if dest := query.Get("destination"); dest != "" {
		re := bson.M{"$regex": dest, "$options": "i"}
		filter["$or"] = []bson.M{{"destination": re}, {"name": re}}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.TicketsCollection.Find(ctx, filter, options.Find().SetLimit(50))
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to fetch tickets"})
		return
	}
	defer cursor.Close(ctx)

	var tickets []models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to decode tickets"})
		return
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": tickets})
}

type bookRequest struct {
	ItineraryID      string           `json:"itinerary_id"`
	TicketID         string           `json:"ticket_id"`
	Quantity         int              `json:"quantity"`
	BookingDate      string           `json:"booking_date"`
	PassengerDetails []map[string]any `json:"passenger_details"`
}

// POST /api/tickets/book
func BookTicket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.RequestingUserID(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "error": "Unauthorized"})
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "Invalid request payload"})
		return
	}
	if req.ItineraryID == "" || req.TicketID == "" || req.Quantity <= 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "Missing required fields"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var ticket models.Ticket
	if err := db.TicketsCollection.FindOne(ctx, bson.M{"ticketid": req.TicketID}).Decode(&ticket); err != nil {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "error": "Ticket not found"})
		return
	}

	booking := models.TicketBooking{
		BookingID:        utils.GenerateRandomString(13),
		UserID:           userID,
		ItineraryID:      req.ItineraryID,
		TicketID:         req.TicketID,
		Quantity:         req.Quantity,
		TotalPrice:       ticket.Price * float64(req.Quantity),
		BookingStatus:    "pending",
		BookingDate:      req.BookingDate,
		PassengerDetails: req.PassengerDetails,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := db.TicketBookingsCollection.InsertOne(ctx, booking); err != nil {
		log.Printf("ticket booking insert error: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to book ticket"})
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": booking})
}

// GET /api/tickets/bookings?itinerary_id=
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.RequestingUserID(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "error": "Unauthorized"})
		return
	}

	filter := bson.M{"user_id": userID}
	if id := r.URL.Query().Get("itinerary_id"); id != "" {
		filter["itinerary_id"] = id
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.TicketBookingsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to fetch bookings"})
		return
	}
	defer cursor.Close(ctx)

	var bookings []models.TicketBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to decode bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.TicketBooking{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": bookings})
}
