package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"yatra/models"
	"yatra/rdx"
)

func TestDestinationsCatalog(t *testing.T) {
	dests := Destinations()
	if len(dests) != 25 {
		t.Fatalf("expected 25 destinations, got %d", len(dests))
	}

	seen := map[string]bool{}
	for _, d := range dests {
		if d.ID == "" || d.Name == "" || d.State == "" || d.AverageBudgetPerDay <= 0 {
			t.Fatalf("incomplete destination: %+v", d)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate destination id %q", d.ID)
		}
		seen[d.ID] = true
		if d.BestTimeToVisit == "" || d.AverageFootfall == "" {
			t.Fatalf("missing travel hints: %+v", d)
		}
	}

	if got := DestinationByID("jaipur-north"); got == nil || got.State != "Rajasthan" {
		t.Fatalf("DestinationByID(jaipur-north) = %+v", got)
	}
	if got := DestinationByID("atlantis-west"); got != nil {
		t.Fatalf("unknown id resolved: %+v", got)
	}
}

func lookupServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", 100).WithCache(nil)
}

func TestClientParsesLookupEnvelope(t *testing.T) {
	c := lookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("missing api key header, got %q", got)
		}
		if got := r.URL.Query().Get("city"); got != "Jaipur" {
			t.Errorf("city = %q, want Jaipur", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []models.Hotel{
				{ID: "h1", Name: "Rambagh Palace", Price: 12000},
			},
		})
	})

	hotels := c.Hotels(context.Background(), "Jaipur")
	if len(hotels) != 1 || hotels[0].Name != "Rambagh Palace" {
		t.Fatalf("bad hotels: %+v", hotels)
	}
}

func TestClientFailureYieldsEmptyResult(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		},
		"unsuccessful envelope": func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"success": false})
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			c := lookupServer(t, handler)
			if got := c.Restaurants(context.Background(), "Goa"); len(got) != 0 {
				t.Fatalf("expected empty result, got %+v", got)
			}
		})
	}
}

func TestClientCachesLookups(t *testing.T) {
	mr := miniredis.RunT(t)
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []models.Attraction{{ID: "a1", Name: "Amber Fort"}},
		})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "", 100).WithCache(rdx.NewClient(mr.Addr()))
	ctx := context.Background()

	first := c.Attractions(ctx, "Jaipur", "tourism.attraction")
	second := c.Attractions(ctx, "Jaipur", "tourism.attraction")

	if calls != 1 {
		t.Fatalf("expected 1 origin call, got %d", calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Name != "Amber Fort" {
		t.Fatalf("cache returned wrong data: %+v / %+v", first, second)
	}
}

func TestSessionKeyFallsBackToHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/destinations/jaipur-north/details", nil)
	if got := sessionKey(r); got != "" {
		t.Fatalf("anonymous request got session key %q", got)
	}

	r.Header.Set("x-session-id", "session-abc")
	if got := sessionKey(r); got != "session-abc" {
		t.Fatalf("sessionKey = %q, want session-abc", got)
	}
}

func TestLoaderJoinsAllThreeLookups(t *testing.T) {
	c := lookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		var data any
		switch r.URL.Path {
		case "/hotels":
			data = []models.Hotel{{ID: "h1"}}
		case "/restaurants":
			data = []models.Restaurant{{ID: "r1"}, {ID: "r2"}}
		case "/attractions":
			data = []models.Attraction{{ID: "a1"}}
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	})

	details, fresh, err := NewLoader(c).Details(context.Background(), "session-1", "Jaipur")
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if !fresh {
		t.Fatal("single in-flight lookup reported stale")
	}
	if len(details.Hotels) != 1 || len(details.Restaurants) != 2 || len(details.Attractions) != 1 {
		t.Fatalf("incomplete join: %+v", details)
	}
}

func slowFastServer(t *testing.T, release chan struct{}) *Client {
	t.Helper()
	return lookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("city") == "Slow" {
			<-release
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []models.Hotel{{ID: "h1"}}})
	})
}

func TestLoaderDiscardsStaleGeneration(t *testing.T) {
	release := make(chan struct{})
	loader := NewLoader(slowFastServer(t, release))

	var wg sync.WaitGroup
	wg.Add(1)
	var staleFresh bool
	go func() {
		defer wg.Done()
		_, staleFresh, _ = loader.Details(context.Background(), "session-1", "Slow")
	}()

	// let the slow lookup get in flight, then supersede it from the same session
	time.Sleep(50 * time.Millisecond)
	_, fresh, err := loader.Details(context.Background(), "session-1", "Fast")
	if err != nil || !fresh {
		t.Fatalf("newer lookup should win: fresh=%v err=%v", fresh, err)
	}

	close(release)
	wg.Wait()
	if staleFresh {
		t.Fatal("superseded lookup was not discarded")
	}
}

func TestLoaderSessionsDoNotSupersedeEachOther(t *testing.T) {
	release := make(chan struct{})
	loader := NewLoader(slowFastServer(t, release))

	var wg sync.WaitGroup
	wg.Add(1)
	var slowFresh bool
	go func() {
		defer wg.Done()
		_, slowFresh, _ = loader.Details(context.Background(), "session-1", "Slow")
	}()

	// a different session's lookup must not invalidate session-1's
	time.Sleep(50 * time.Millisecond)
	_, fresh, err := loader.Details(context.Background(), "session-2", "Fast")
	if err != nil || !fresh {
		t.Fatalf("unrelated lookup failed: fresh=%v err=%v", fresh, err)
	}

	close(release)
	wg.Wait()
	if !slowFresh {
		t.Fatal("another session's lookup discarded this session's result")
	}
}

func TestLoaderWithoutSessionNeverStale(t *testing.T) {
	release := make(chan struct{})
	loader := NewLoader(slowFastServer(t, release))

	var wg sync.WaitGroup
	wg.Add(1)
	var slowFresh bool
	go func() {
		defer wg.Done()
		_, slowFresh, _ = loader.Details(context.Background(), "", "Slow")
	}()

	time.Sleep(50 * time.Millisecond)
	_, fresh, err := loader.Details(context.Background(), "", "Fast")
	if err != nil || !fresh {
		t.Fatalf("anonymous lookup failed: fresh=%v err=%v", fresh, err)
	}

	close(release)
	wg.Wait()
	if !slowFresh {
		t.Fatal("anonymous lookups must not supersede each other")
	}
}
