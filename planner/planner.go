package planner

import (
	"fmt"

	"yatra/models"
)

// Itinerary is the canonical in-memory trip state. Days are kept in order and
// numbered contiguously 1..len; there is always at least one day. The active
// day index marks where newly picked catalog items land and always points at
// a valid day.
type Itinerary struct {
	TripName    string
	TotalBudget float64
	days        []models.Day
	activeDay   int
}

// New creates an itinerary with a single empty day.
func New(tripName string, totalBudget float64) *Itinerary {
	return &Itinerary{
		TripName:    tripName,
		TotalBudget: totalBudget,
		days:        []models.Day{emptyDay(1)},
	}
}

func emptyDay(n int) models.Day {
	return models.Day{
		Day:         n,
		Restaurants: []models.Restaurant{},
		Attractions: []models.Attraction{},
	}
}

// day panics on an out-of-range index: the caller constructs indexes from the
// itinerary itself, so a bad one is a bug, not a recoverable condition.
func (it *Itinerary) day(i int) *models.Day {
	if i < 0 || i >= len(it.days) {
		panic(fmt.Sprintf("planner: day index %d out of range [0,%d)", i, len(it.days)))
	}
	return &it.days[i]
}

// copyDay detaches the nested slices so the copy does not share backing
// arrays with the live itinerary.
func copyDay(d models.Day) models.Day {
	d.Restaurants = append(make([]models.Restaurant, 0, len(d.Restaurants)), d.Restaurants...)
	d.Attractions = append(make([]models.Attraction, 0, len(d.Attractions)), d.Attractions...)
	return d
}

// Len returns the number of days.
func (it *Itinerary) Len() int { return len(it.days) }

// Days returns a copy of the day sequence, independent of later mutations.
func (it *Itinerary) Days() []models.Day {
	out := make([]models.Day, len(it.days))
	for i, d := range it.days {
		out[i] = copyDay(d)
	}
	return out
}

// Day returns a copy of the day at index i.
func (it *Itinerary) Day(i int) models.Day { return copyDay(*it.day(i)) }

// ActiveDay returns the current active day index.
func (it *Itinerary) ActiveDay() int { return it.activeDay }

// SetActiveDay moves the active day pointer.
func (it *Itinerary) SetActiveDay(i int) {
	it.day(i)
	it.activeDay = i
}

// AddDay appends a new empty day numbered len+1.
func (it *Itinerary) AddDay() {
	it.days = append(it.days, emptyDay(len(it.days)+1))
}

// RemoveDay removes the day at index i and renumbers the remaining days to
// 1..N in their original relative order. Removing the only day is a no-op so
// the itinerary never becomes empty. The active day pointer is clamped when
// it would fall past the end.
func (it *Itinerary) RemoveDay(i int) {
	it.day(i)
	if len(it.days) == 1 {
		return
	}
	it.days = append(it.days[:i], it.days[i+1:]...)
	for j := range it.days {
		it.days[j].Day = j + 1
	}
	if it.activeDay >= len(it.days) {
		it.activeDay = len(it.days) - 1
	}
}

// SetDestination replaces the day's destination. Single slot.
func (it *Itinerary) SetDestination(i int, d models.Destination) {
	it.day(i).Destination = &d
}

// SetHotel replaces the day's hotel. Single slot.
func (it *Itinerary) SetHotel(i int, h models.Hotel) {
	it.day(i).Hotel = &h
}

// AddRestaurant inserts the restaurant into the day unless one with the same
// id is already present.
func (it *Itinerary) AddRestaurant(i int, r models.Restaurant) {
	day := it.day(i)
	for _, existing := range day.Restaurants {
		if existing.ID == r.ID {
			return
		}
	}
	day.Restaurants = append(day.Restaurants, r)
}

// AddAttraction inserts the attraction into the day unless one with the same
// id is already present.
func (it *Itinerary) AddAttraction(i int, a models.Attraction) {
	day := it.day(i)
	for _, existing := range day.Attractions {
		if existing.ID == a.ID {
			return
		}
	}
	day.Attractions = append(day.Attractions, a)
}

// AddItem routes a catalog item to the right slot of the day.
func (it *Itinerary) AddItem(i int, item models.CatalogItem) {
	switch item.Kind {
	case models.KindDestination:
		it.SetDestination(i, *item.Destination)
	case models.KindHotel:
		it.SetHotel(i, *item.Hotel)
	case models.KindRestaurant:
		it.AddRestaurant(i, *item.Restaurant)
	case models.KindAttraction:
		it.AddAttraction(i, *item.Attraction)
	}
}

// RemoveHotel clears the day's hotel slot.
func (it *Itinerary) RemoveHotel(i int) {
	it.day(i).Hotel = nil
}

// RemoveRestaurant removes a restaurant by id; an absent id is a no-op.
func (it *Itinerary) RemoveRestaurant(i int, id string) {
	day := it.day(i)
	for j, r := range day.Restaurants {
		if r.ID == id {
			day.Restaurants = append(day.Restaurants[:j], day.Restaurants[j+1:]...)
			return
		}
	}
}

// RemoveAttraction removes an attraction by id; an absent id is a no-op.
func (it *Itinerary) RemoveAttraction(i int, id string) {
	day := it.day(i)
	for j, a := range day.Attractions {
		if a.ID == id {
			day.Attractions = append(day.Attractions[:j], day.Attractions[j+1:]...)
			return
		}
	}
}

// SetNotes replaces the day's free-text notes.
func (it *Itinerary) SetNotes(i int, notes string) {
	it.day(i).Notes = notes
}

// Snapshot captures the full trip state for persistence and export.
func (it *Itinerary) Snapshot() models.ItinerarySnapshot {
	return models.ItinerarySnapshot{
		TripName:    it.TripName,
		Days:        it.Days(),
		TotalBudget: it.TotalBudget,
		TotalCost:   it.TotalCost(),
		NumDays:     len(it.days),
	}
}
