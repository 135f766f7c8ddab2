package models

// Catalog items are sourced from external lookup services and treated as
// immutable by the planner; only their fields are read.

type GeoPoint struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lon     float64 `json:"lon" bson:"lon"`
	Address string  `json:"address" bson:"address"`
}

type Destination struct {
	ID                  string  `json:"id" bson:"id"`
	Name                string  `json:"name" bson:"name"`
	State               string  `json:"state" bson:"state"`
	Region              string  `json:"region" bson:"region"`
	Description         string  `json:"description" bson:"description"`
	AverageBudgetPerDay float64 `json:"averageBudgetPerDay" bson:"averageBudgetPerDay"`
	ImageURL            string  `json:"imageUrl" bson:"imageUrl"`
	BestTimeToVisit     string  `json:"bestTimeToVisit,omitempty" bson:"bestTimeToVisit,omitempty"`
	AverageFootfall     string  `json:"averageFootfall,omitempty" bson:"averageFootfall,omitempty"`
}

type Hotel struct {
	ID        string   `json:"id" bson:"id"`
	Name      string   `json:"name" bson:"name"`
	Rating    float64  `json:"rating" bson:"rating"`
	Price     float64  `json:"price" bson:"price"`
	Amenities []string `json:"amenities" bson:"amenities"`
	Image     string   `json:"image" bson:"image"`
	Location  GeoPoint `json:"location" bson:"location"`
}

type Restaurant struct {
	ID            string   `json:"id" bson:"id"`
	Name          string   `json:"name" bson:"name"`
	Cuisine       string   `json:"cuisine" bson:"cuisine"`
	Rating        float64  `json:"rating" bson:"rating"`
	PriceRange    string   `json:"priceRange" bson:"priceRange"`
	EstimatedCost float64  `json:"estimatedCost" bson:"estimatedCost"`
	Image         string   `json:"image" bson:"image"`
	Location      GeoPoint `json:"location" bson:"location"`
}

type Attraction struct {
	ID            string   `json:"id" bson:"id"`
	Name          string   `json:"name" bson:"name"`
	Category      string   `json:"category" bson:"category"`
	EntryFee      float64  `json:"entryFee" bson:"entryFee"`
	EstimatedTime string   `json:"estimatedTime" bson:"estimatedTime"`
	Rating        float64  `json:"rating" bson:"rating"`
	Image         string   `json:"image" bson:"image"`
	Location      GeoPoint `json:"location" bson:"location"`
}

// CatalogKind tags the members of the catalog item union.
type CatalogKind int

const (
	KindDestination CatalogKind = iota
	KindHotel
	KindRestaurant
	KindAttraction
)

func (k CatalogKind) String() string {
	switch k {
	case KindDestination:
		return "destination"
	case KindHotel:
		return "hotel"
	case KindRestaurant:
		return "restaurant"
	case KindAttraction:
		return "attraction"
	}
	return "unknown"
}

// CatalogItem is a tagged union over the four catalog kinds. Exactly one of
// the pointers matching Kind is non-nil.
type CatalogItem struct {
	Kind        CatalogKind
	Destination *Destination
	Hotel       *Hotel
	Restaurant  *Restaurant
	Attraction  *Attraction
}

func ItemOfDestination(d *Destination) CatalogItem {
	return CatalogItem{Kind: KindDestination, Destination: d}
}

func ItemOfHotel(h *Hotel) CatalogItem {
	return CatalogItem{Kind: KindHotel, Hotel: h}
}

func ItemOfRestaurant(r *Restaurant) CatalogItem {
	return CatalogItem{Kind: KindRestaurant, Restaurant: r}
}

func ItemOfAttraction(a *Attraction) CatalogItem {
	return CatalogItem{Kind: KindAttraction, Attraction: a}
}

// ID returns the identity of whichever member is set.
func (c CatalogItem) ID() string {
	switch c.Kind {
	case KindDestination:
		return c.Destination.ID
	case KindHotel:
		return c.Hotel.ID
	case KindRestaurant:
		return c.Restaurant.ID
	case KindAttraction:
		return c.Attraction.ID
	}
	return ""
}
