// Package export renders an itinerary snapshot into downloadable documents.
// One canonical traversal walks the snapshot and emits content events; the
// PDF and Word sinks each render the same event stream, so the two formats
// cannot drift apart in content.
package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"yatra/models"
	"yatra/planner"
)

// Sink receives the content events of one itinerary traversal, in order.
type Sink interface {
	// Title is emitted once, first.
	Title(text string)
	// Heading starts a section ("Trip Summary", "Day 1", ...).
	Heading(text string)
	// Field is a bold label with a value ("Hotel", "Taj Palace - Rs 2,000/night").
	Field(label, value string)
	// List is a bold label followed by bulleted items.
	List(label string, items []string)
}

// Walk traverses the snapshot and replays it into the sink: title, summary
// block, then each day in order. Days with empty slots simply omit those
// blocks; nothing emits a placeholder. The traversal is read-only and totals
// are recomputed from the day contents rather than trusted from the wire.
func Walk(snap models.ItinerarySnapshot, sink Sink) {
	totalCost := planner.SnapshotCost(snap)
	remaining := snap.TotalBudget - totalCost

	sink.Title(snap.TripName)

	sink.Heading("Trip Summary")
	sink.Field("Total Days", strconv.Itoa(len(snap.Days)))
	sink.Field("Total Budget", rupees(snap.TotalBudget))
	sink.Field("Estimated Cost", rupees(totalCost))
	sink.Field("Remaining Budget", rupees(remaining))

	for _, day := range snap.Days {
		sink.Heading(fmt.Sprintf("Day %d", day.Day))

		if day.Destination != nil {
			sink.Field("Destination", fmt.Sprintf("%s, %s", day.Destination.Name, day.Destination.State))
		}
		if day.Hotel != nil {
			sink.Field("Hotel", fmt.Sprintf("%s - %s/night", day.Hotel.Name, rupees(day.Hotel.Price)))
		}
		if len(day.Attractions) > 0 {
			items := make([]string, 0, len(day.Attractions))
			for _, a := range day.Attractions {
				items = append(items, fmt.Sprintf("%s - %s (%d hours)", a.Name, rupees(a.EntryFee), planner.VisitHours(a.EstimatedTime)))
			}
			sink.List("Attractions", items)
		}
		if len(day.Restaurants) > 0 {
			items := make([]string, 0, len(day.Restaurants))
			for _, r := range day.Restaurants {
				items = append(items, fmt.Sprintf("%s - %s", r.Name, r.Cuisine))
			}
			sink.List("Dining", items)
		}
	}
}

// rupees renders an amount with the Indian digit grouping the trip's locale
// uses: the last three digits, then groups of two (12,34,567). Fractional
// paise are shown only when present.
func rupees(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	amount = math.Round(amount*100) / 100

	whole := int64(amount)
	cents := int(math.Round((amount - float64(whole)) * 100))

	digits := strconv.FormatInt(whole, 10)
	var groups []string
	// last group of three
	if len(digits) > 3 {
		groups = append(groups, digits[len(digits)-3:])
		digits = digits[:len(digits)-3]
		for len(digits) > 2 {
			groups = append(groups, digits[len(digits)-2:])
			digits = digits[:len(digits)-2]
		}
	}
	groups = append(groups, digits)
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	out := sign + "Rs " + strings.Join(groups, ",")
	if cents > 0 {
		out += fmt.Sprintf(".%02d", cents)
	}
	return out
}
