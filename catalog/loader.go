package catalog

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"yatra/models"
)

// Details holds the joined lookup results for one destination.
type Details struct {
	Hotels      []models.Hotel      `json:"hotels"`
	Restaurants []models.Restaurant `json:"restaurants"`
	Attractions []models.Attraction `json:"attractions"`
}

const attractionCategory = "tourism.attraction"

// Loader runs the three per-destination lookups concurrently and joins them
// before results are handed out. Each session carries its own generation
// counter: when a session re-selects a destination while a previous lookup is
// still in flight, the superseded call reports stale so its results are
// discarded instead of overwriting the fresher selection. Sessions never see
// each other's generations, so independent clients cannot cancel one another.
type Loader struct {
	client *Client
	mu     sync.Mutex
	gens   map[string]uint64
}

func NewLoader(client *Client) *Loader {
	return &Loader{
		client: client,
		gens:   make(map[string]uint64),
	}
}

// begin bumps and returns the session's generation.
func (l *Loader) begin(session string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gens[session]++
	gen := l.gens[session]

	if gen == 1 {
		// Drop idle sessions after 10 minutes
		go func() {
			time.Sleep(10 * time.Minute)
			l.mu.Lock()
			delete(l.gens, session)
			l.mu.Unlock()
		}()
	}

	return gen
}

func (l *Loader) current(session string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gens[session]
}

// Details fetches hotels, restaurants and attractions for a city on behalf of
// one session. The returned flag is false when the same session started a
// newer selection while this call was in flight. An empty session key skips
// staleness tracking: there is no selection history to supersede. Individual
// lookup failures yield empty slices, never an error; ctx cancellation is the
// only failure path.
func (l *Loader) Details(ctx context.Context, session, city string) (Details, bool, error) {
	var gen uint64
	if session != "" {
		gen = l.begin(session)
	}

	var out Details
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Hotels = l.client.Hotels(gctx, city)
		return gctx.Err()
	})
	g.Go(func() error {
		out.Restaurants = l.client.Restaurants(gctx, city)
		return gctx.Err()
	})
	g.Go(func() error {
		out.Attractions = l.client.Attractions(gctx, city, attractionCategory)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return Details{}, false, err
	}

	if session != "" && l.current(session) != gen {
		// the session already moved on; drop this result
		return Details{}, false, nil
	}
	return out, true, nil
}
