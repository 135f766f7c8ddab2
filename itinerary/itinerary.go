package itinerary

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"

	"yatra/db"
	"yatra/middleware"
	"yatra/models"
	"yatra/utils"
)

// POST /api/itineraries/save
// Accepts the full trip snapshot and persists it. The in-memory model is
// never touched here; a failed save leaves the caller's state as it was.
func SaveItinerary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.RequestingUserID(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{"success": false, "error": "Unauthorized"})
		return
	}

	var snap models.ItinerarySnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "Invalid request payload"})
		return
	}

	destination := "India"
	if len(snap.Days) > 0 && snap.Days[0].Destination != nil {
		destination = snap.Days[0].Destination.Name
	}

	saved := models.SavedItinerary{
		ItineraryID: utils.GenerateRandomString(13),
		UserID:      userID,
		Destination: destination,
		TripName:    snap.TripName,
		NumDays:     snap.NumDays,
		TotalBudget: snap.TotalBudget,
		TotalCost:   snap.TotalCost,
		Days:        snap.Days,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ItineraryCollection.InsertOne(ctx, saved); err != nil {
		log.Printf("itinerary save error: %v", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": err.Error()})
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": saved})
}

// GET /api/itineraries
func GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := middleware.RequestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "deleted": bson.M{"$ne": true}}
	cursor, err := db.ItineraryCollection.Find(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}
	defer cursor.Close(ctx)

	var itineraries []models.SavedItinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error decoding itineraries")
		return
	}
	if itineraries == nil {
		itineraries = []models.SavedItinerary{}
	}

	utils.RespondWithJSON(w, http.StatusOK, itineraries)
}

// GET /api/itineraries/:id
func GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"itineraryid": itineraryID, "deleted": bson.M{"$ne": true}}

	var saved models.SavedItinerary
	if err := db.ItineraryCollection.FindOne(ctx, filter).Decode(&saved); err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, saved)
}

// DELETE /api/itineraries/:id
func DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := middleware.RequestingUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var saved models.SavedItinerary
	if err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&saved); err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if saved.UserID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	update := bson.M{"$set": bson.M{"deleted": true}}
	if _, err := db.ItineraryCollection.UpdateOne(ctx, bson.M{"itineraryid": itineraryID}, update); err != nil {
		http.Error(w, "Error deleting itinerary", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"message": "Itinerary deleted successfully"})
}
