package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"yatra/models"
	"yatra/rdx"
)

const (
	lookupTimeout = 20 * time.Second
	cacheTTL      = 15 * time.Minute
)

// Client fetches hotels, restaurants and attractions for a city from the
// remote places service. Lookups are rate limited client-side and cached in
// Redis. A lookup failure is downgraded to an empty result with a logged
// warning; the planner flow must never be blocked by the catalog.
type Client struct {
	base  string
	key   string
	hc    *http.Client
	rl    *rate.Limiter
	cache *redis.Client
}

// NewClient builds a catalog client. rps bounds outbound requests per second.
func NewClient(base, key string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:  base,
		key:   key,
		hc:    &http.Client{Timeout: lookupTimeout},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
		cache: rdx.Conn,
	}
}

// WithCache overrides the cache client; a nil argument disables caching.
func (c *Client) WithCache(cache *redis.Client) *Client {
	c.cache = cache
	return c
}

// Hotels looks up hotels in a city.
func (c *Client) Hotels(ctx context.Context, city string) []models.Hotel {
	return lookup[models.Hotel](c, ctx, "hotels", url.Values{"city": {city}})
}

// Restaurants looks up restaurants in a city.
func (c *Client) Restaurants(ctx context.Context, city string) []models.Restaurant {
	return lookup[models.Restaurant](c, ctx, "restaurants", url.Values{"city": {city}})
}

// Attractions looks up attractions in a city for a category.
func (c *Client) Attractions(ctx context.Context, city, category string) []models.Attraction {
	return lookup[models.Attraction](c, ctx, "attractions", url.Values{"city": {city}, "category": {category}})
}

// lookupResponse is the remote service's envelope.
type lookupResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
}

func lookup[T any](c *Client, ctx context.Context, path string, query url.Values) []T {
	cacheKey := fmt.Sprintf("catalog:%s:%s", path, query.Encode())
	if c.cache != nil {
		var cached []T
		if rdx.GetJSON(ctx, c.cache, cacheKey, &cached) {
			return cached
		}
	}

	if err := c.rl.Wait(ctx); err != nil {
		log.Printf("catalog %s lookup aborted: %v", path, err)
		return []T{}
	}

	u := fmt.Sprintf("%s/%s?%s", c.base, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("catalog %s request: %v", path, err)
		return []T{}
	}
	req.Header.Set("Accept", "application/json")
	if c.key != "" {
		req.Header.Set("X-API-Key", c.key)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Printf("catalog %s lookup failed: %v", path, err)
		return []T{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("catalog %s lookup returned status %d", path, resp.StatusCode)
		return []T{}
	}

	var body lookupResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("catalog %s decode: %v", path, err)
		return []T{}
	}
	if !body.Success || body.Data == nil {
		return []T{}
	}

	if c.cache != nil {
		rdx.SetJSON(ctx, c.cache, cacheKey, body.Data, cacheTTL)
	}
	return body.Data
}
