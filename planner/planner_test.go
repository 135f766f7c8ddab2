package planner

import (
	"testing"

	"yatra/models"
)

func checkContiguous(t *testing.T, it *Itinerary) {
	t.Helper()
	for i, day := range it.Days() {
		if day.Day != i+1 {
			t.Fatalf("day at position %d numbered %d, want %d", i, day.Day, i+1)
		}
	}
}

func TestAddRemoveDayKeepsNumbersContiguous(t *testing.T) {
	it := New("Trip", 10000)
	checkContiguous(t, it)

	it.AddDay()
	it.AddDay()
	it.AddDay()
	checkContiguous(t, it)
	if it.Len() != 4 {
		t.Fatalf("expected 4 days, got %d", it.Len())
	}

	it.RemoveDay(1)
	checkContiguous(t, it)
	it.RemoveDay(0)
	checkContiguous(t, it)
	if it.Len() != 2 {
		t.Fatalf("expected 2 days, got %d", it.Len())
	}
}

func TestRemoveLastDayIsNoop(t *testing.T) {
	it := New("Trip", 10000)
	it.SetNotes(0, "keep me")

	it.RemoveDay(0)

	if it.Len() != 1 {
		t.Fatalf("expected 1 day, got %d", it.Len())
	}
	if it.Day(0).Notes != "keep me" {
		t.Fatal("day content changed by no-op removal")
	}
}

func TestRemoveMiddleDayPreservesOrder(t *testing.T) {
	it := New("Trip", 10000)
	it.AddDay()
	it.AddDay()
	it.SetNotes(0, "first")
	it.SetNotes(1, "second")
	it.SetNotes(2, "third")

	it.RemoveDay(1)

	days := it.Days()
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Day != 1 || days[0].Notes != "first" {
		t.Fatalf("day 1 wrong after removal: %+v", days[0])
	}
	if days[1].Day != 2 || days[1].Notes != "third" {
		t.Fatalf("day 2 wrong after removal: %+v", days[1])
	}
}

func TestAddRestaurantDedupesByID(t *testing.T) {
	it := New("Trip", 10000)
	r := models.Restaurant{ID: "r1", Name: "Spice Route", Cuisine: "South Indian"}

	it.AddRestaurant(0, r)
	it.AddRestaurant(0, r)

	if got := len(it.Day(0).Restaurants); got != 1 {
		t.Fatalf("expected 1 restaurant, got %d", got)
	}
}

func TestAddAttractionDedupesByID(t *testing.T) {
	it := New("Trip", 10000)
	a := models.Attraction{ID: "a1", Name: "Red Fort"}

	it.AddAttraction(0, a)
	it.AddAttraction(0, models.Attraction{ID: "a1", Name: "Red Fort (dup)"})
	it.AddAttraction(0, models.Attraction{ID: "a2", Name: "Qutub Minar"})

	if got := len(it.Day(0).Attractions); got != 2 {
		t.Fatalf("expected 2 attractions, got %d", got)
	}
}

func TestHotelAndDestinationAreSingleSlot(t *testing.T) {
	it := New("Trip", 10000)

	it.SetHotel(0, models.Hotel{ID: "h1", Name: "First"})
	it.SetHotel(0, models.Hotel{ID: "h2", Name: "Second"})
	if got := it.Day(0).Hotel; got == nil || got.ID != "h2" {
		t.Fatalf("hotel slot not replaced: %+v", got)
	}

	it.SetDestination(0, models.Destination{ID: "d1", Name: "Jaipur"})
	it.SetDestination(0, models.Destination{ID: "d2", Name: "Agra"})
	if got := it.Day(0).Destination; got == nil || got.ID != "d2" {
		t.Fatalf("destination slot not replaced: %+v", got)
	}
}

func TestRemoveByIDAndAbsentIDNoop(t *testing.T) {
	it := New("Trip", 10000)
	it.AddRestaurant(0, models.Restaurant{ID: "r1"})
	it.AddAttraction(0, models.Attraction{ID: "a1"})
	it.SetHotel(0, models.Hotel{ID: "h1"})

	it.RemoveRestaurant(0, "missing")
	it.RemoveAttraction(0, "missing")
	if len(it.Day(0).Restaurants) != 1 || len(it.Day(0).Attractions) != 1 {
		t.Fatal("removing an absent id must not change membership")
	}

	it.RemoveRestaurant(0, "r1")
	it.RemoveAttraction(0, "a1")
	it.RemoveHotel(0)
	day := it.Day(0)
	if len(day.Restaurants) != 0 || len(day.Attractions) != 0 || day.Hotel != nil {
		t.Fatalf("expected empty day, got %+v", day)
	}
}

func TestActiveDayClampedOnRemoval(t *testing.T) {
	it := New("Trip", 10000)
	it.AddDay()
	it.AddDay()
	it.SetActiveDay(2)

	it.RemoveDay(2)

	if got := it.ActiveDay(); got != 1 {
		t.Fatalf("active day not clamped: got %d, want 1", got)
	}
}

func TestOutOfRangeDayIndexPanics(t *testing.T) {
	it := New("Trip", 10000)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range day index")
		}
	}()
	it.SetHotel(5, models.Hotel{ID: "h1"})
}

func TestAddItemRoutesByKind(t *testing.T) {
	it := New("Trip", 10000)

	it.AddItem(0, models.ItemOfDestination(&models.Destination{ID: "d1", Name: "Goa"}))
	it.AddItem(0, models.ItemOfHotel(&models.Hotel{ID: "h1"}))
	it.AddItem(0, models.ItemOfRestaurant(&models.Restaurant{ID: "r1"}))
	it.AddItem(0, models.ItemOfAttraction(&models.Attraction{ID: "a1"}))

	day := it.Day(0)
	if day.Destination == nil || day.Hotel == nil || len(day.Restaurants) != 1 || len(day.Attractions) != 1 {
		t.Fatalf("items not routed to their slots: %+v", day)
	}
}

func TestSnapshotCapturesState(t *testing.T) {
	it := New("Goa Escape", 20000)
	it.AddDay()
	it.SetHotel(0, models.Hotel{ID: "h1", Price: 2500})

	snap := it.Snapshot()
	if snap.TripName != "Goa Escape" || snap.NumDays != 2 {
		t.Fatalf("bad snapshot header: %+v", snap)
	}
	if snap.TotalCost != 2500 || snap.TotalBudget != 20000 {
		t.Fatalf("bad snapshot totals: %+v", snap)
	}

	// the snapshot is a copy; mutating it must not touch the itinerary
	snap.Days[0].Hotel = nil
	if it.Day(0).Hotel == nil {
		t.Fatal("snapshot shares day storage with the itinerary")
	}
}

func TestSnapshotUnaffectedByLaterMutation(t *testing.T) {
	it := New("Trip", 10000)
	it.AddRestaurant(0, models.Restaurant{ID: "r1", Name: "Saravana Bhavan"})
	it.AddRestaurant(0, models.Restaurant{ID: "r2", Name: "Karim's"})
	it.AddAttraction(0, models.Attraction{ID: "a1", Name: "Red Fort"})

	snap := it.Snapshot()

	// in-place removal shifts the live slices; the captured copy must not move
	it.RemoveRestaurant(0, "r1")
	it.RemoveAttraction(0, "a1")

	got := snap.Days[0].Restaurants
	if len(got) != 2 || got[0].ID != "r1" || got[1].ID != "r2" {
		t.Fatalf("snapshot restaurants changed after model mutation: %+v", got)
	}
	if len(snap.Days[0].Attractions) != 1 || snap.Days[0].Attractions[0].ID != "a1" {
		t.Fatalf("snapshot attractions changed after model mutation: %+v", snap.Days[0].Attractions)
	}
}
