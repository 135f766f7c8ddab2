package db

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"yatra/globals"
)

var (
	ItineraryCollection      *mongo.Collection
	TicketsCollection        *mongo.Collection
	TicketBookingsCollection *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := globals.Getenv("MONGO_URI", "mongodb://localhost:27017")
	clientOptions := options.Client().ApplyURI(uri)

	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("yatradb")
	ItineraryCollection = database.Collection("itineraries")
	TicketsCollection = database.Collection("tickets")
	TicketBookingsCollection = database.Collection("ticketbookings")
}
