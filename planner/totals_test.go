package planner

import (
	"testing"

	"yatra/models"
)

func TestVisitHours(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3 hours", 3},
		{"2 hours", 2},
		{"4 hours", 4},
		{"45 minutes", 45}, // leading integer wins, unit is not interpreted
		{"0 hours", 0},     // an explicit zero is a valid duration, not a parse failure
		{"half a day", DefaultVisitHours},
		{"", DefaultVisitHours},
		{"  7 hrs", 7},
	}
	for _, tc := range cases {
		if got := VisitHours(tc.in); got != tc.want {
			t.Errorf("VisitHours(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRestaurantWithoutCostUsesDefault(t *testing.T) {
	it := New("Trip", 10000)
	it.AddRestaurant(0, models.Restaurant{ID: "r1"})

	if got := it.TotalCost(); got != DefaultMealCost {
		t.Fatalf("TotalCost = %v, want %v", got, DefaultMealCost)
	}
}

func TestWorkedScenario(t *testing.T) {
	it := New("Trip", 10000)
	it.SetHotel(0, models.Hotel{ID: "h1", Price: 2000})
	it.AddAttraction(0, models.Attraction{ID: "a1", EntryFee: 500, EstimatedTime: "2 hours"})
	it.AddAttraction(0, models.Attraction{ID: "a2", EntryFee: 0, EstimatedTime: "4 hours"})
	it.AddRestaurant(0, models.Restaurant{ID: "r1"})

	if got := it.TotalCost(); got != 3000 {
		t.Fatalf("TotalCost = %v, want 3000", got)
	}
	if got := it.TotalTime(); got != 6 {
		t.Fatalf("TotalTime = %d, want 6", got)
	}
}

func TestTotalCostAdditiveAcrossDays(t *testing.T) {
	it := New("Trip", 10000)
	it.AddDay()
	it.SetHotel(0, models.Hotel{ID: "h1", Price: 1500})
	it.AddAttraction(0, models.Attraction{ID: "a1", EntryFee: 300})
	it.SetHotel(1, models.Hotel{ID: "h2", Price: 2200})
	it.AddRestaurant(1, models.Restaurant{ID: "r1", EstimatedCost: 800})

	want := DayCost(it.Day(0)) + DayCost(it.Day(1))
	if got := it.TotalCost(); got != want {
		t.Fatalf("TotalCost = %v, want sum of day costs %v", got, want)
	}
}

func TestBudgetRemainingMayBeNegative(t *testing.T) {
	it := New("Trip", 1000)
	it.SetHotel(0, models.Hotel{ID: "h1", Price: 2500})

	if got := it.BudgetRemaining(); got != -1500 {
		t.Fatalf("BudgetRemaining = %v, want -1500", got)
	}
}

func TestSnapshotCostMatchesModel(t *testing.T) {
	it := New("Trip", 5000)
	it.AddDay()
	it.SetHotel(1, models.Hotel{ID: "h1", Price: 1800})
	it.AddRestaurant(0, models.Restaurant{ID: "r1"})

	if got := SnapshotCost(it.Snapshot()); got != it.TotalCost() {
		t.Fatalf("SnapshotCost = %v, want %v", got, it.TotalCost())
	}
}
