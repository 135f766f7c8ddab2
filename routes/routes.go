package routes

import (
	"yatra/assistant"
	"yatra/catalog"
	"yatra/itinerary"
	"yatra/middleware"
	"yatra/ratelim"
	"yatra/tickets"

	"github.com/julienschmidt/httprouter"
)

func AddCatalogRoutes(router *httprouter.Router) {
	h := catalog.NewHandlers()
	router.GET("/api/destinations", h.GetDestinations)
	router.GET("/api/destinations/:id/details", h.GetDestinationDetails)
}

func AddItineraryRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/itineraries/save", rateLimiter.Limit(middleware.Authenticate(itinerary.SaveItinerary)))
	router.GET("/api/itineraries", middleware.Authenticate(itinerary.GetItineraries))
	router.GET("/api/itineraries/:id", itinerary.GetItinerary)
	router.DELETE("/api/itineraries/:id", middleware.Authenticate(itinerary.DeleteItinerary))

	router.POST("/api/itineraries/export/pdf", itinerary.DownloadPDF)
	router.POST("/api/itineraries/export/docx", itinerary.DownloadDocx)
}

func AddTicketRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/tickets", tickets.GetTickets)
	router.POST("/api/tickets/book", rateLimiter.Limit(middleware.Authenticate(tickets.BookTicket)))
	router.GET("/api/tickets/bookings", middleware.Authenticate(tickets.GetBookings))
	router.GET("/api/tickets/bookings/:bookingid/print", tickets.PrintBooking)
}

func AddAssistantRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	relay := assistant.NewRelay()
	router.POST("/api/assistant/chat", rateLimiter.Limit(relay.Chat))
}
