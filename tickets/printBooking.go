package tickets

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"

	"yatra/db"
	"yatra/globals"
	"yatra/middleware"
	"yatra/models"
)

var hmacSecret = []byte(globals.Getenv("TICKET_HMAC_SECRET", "your-very-secret-key"))

// QRPayload returns a signed payload string: bookingID|ticketID|timestamp|signature
func QRPayload(bookingID, ticketID string) string {
	data := fmt.Sprintf("%s|%s|%d", bookingID, ticketID, time.Now().Unix())

	h := hmac.New(sha256.New, hmacSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/tickets/bookings/:bookingid/print
// Booking confirmation as a PDF with a signed QR code.
func PrintBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookingID := ps.ByName("bookingid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var booking models.TicketBooking
	err = db.TicketBookingsCollection.FindOne(ctx, bson.M{
		"bookingid": bookingID,
		"user_id":   claims.UserID,
	}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	var ticket models.Ticket
	if err := db.TicketsCollection.FindOne(ctx, bson.M{"ticketid": booking.TicketID}).Decode(&ticket); err != nil {
		http.Error(w, "Ticket not found", http.StatusNotFound)
		return
	}

	qrPNG, err := qrcode.Encode(QRPayload(booking.BookingID, booking.TicketID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Passenger: %s", claims.Username))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Ticket: %s (%s)", ticket.Name, ticket.TicketType))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Quantity: %d", booking.Quantity))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total: Rs %.2f", booking.TotalPrice))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", booking.BookingStatus))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+booking.BookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
