package planner

import (
	"strconv"
	"strings"

	"yatra/models"
)

// Fallbacks applied while aggregating. Policy constants, not measurements:
// a restaurant with no cost estimate is budgeted at a flat meal price and an
// attraction with an unparseable duration is assumed to take two hours.
const (
	DefaultMealCost   = 500.0
	DefaultVisitHours = 2
)

// DayCost is the cost of a single day: hotel price plus attraction entry
// fees plus restaurant estimates.
func DayCost(day models.Day) float64 {
	var cost float64
	if day.Hotel != nil {
		cost += day.Hotel.Price
	}
	for _, a := range day.Attractions {
		cost += a.EntryFee
	}
	for _, r := range day.Restaurants {
		if r.EstimatedCost > 0 {
			cost += r.EstimatedCost
		} else {
			cost += DefaultMealCost
		}
	}
	return cost
}

// TotalCost sums DayCost over all days.
func (it *Itinerary) TotalCost() float64 {
	var total float64
	for _, day := range it.days {
		total += DayCost(day)
	}
	return total
}

// TotalTime sums attraction visit hours over all days. Hotels and
// restaurants contribute no time.
func (it *Itinerary) TotalTime() int {
	var total int
	for _, day := range it.days {
		for _, a := range day.Attractions {
			total += VisitHours(a.EstimatedTime)
		}
	}
	return total
}

// BudgetRemaining may be negative; over-budget is a valid state.
func (it *Itinerary) BudgetRemaining() float64 {
	return it.TotalBudget - it.TotalCost()
}

// VisitHours parses a duration like "3 hours" as its leading integer,
// falling back to DefaultVisitHours when no leading integer is present.
func VisitHours(estimated string) int {
	s := strings.TrimSpace(estimated)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return DefaultVisitHours
	}
	hours, err := strconv.Atoi(s[:end])
	if err != nil {
		return DefaultVisitHours
	}
	return hours
}

// SnapshotCost recomputes the cost of a snapshot that arrived over the wire,
// so exported documents never trust a client-supplied total.
func SnapshotCost(snap models.ItinerarySnapshot) float64 {
	var total float64
	for _, day := range snap.Days {
		total += DayCost(day)
	}
	return total
}
