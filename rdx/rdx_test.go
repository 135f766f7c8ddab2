package rdx

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

type payload struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

func TestSetGetJSONRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewClient(srv.Addr())
	ctx := context.Background()

	SetJSON(ctx, c, "hotels:jaipur", []payload{{Name: "Rambagh", Price: 12000}}, time.Minute)

	var got []payload
	if !GetJSON(ctx, c, "hotels:jaipur", &got) {
		t.Fatal("expected cache hit")
	}
	if len(got) != 1 || got[0].Name != "Rambagh" || got[0].Price != 12000 {
		t.Fatalf("bad cached value: %+v", got)
	}
}

func TestGetJSONMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewClient(srv.Addr())

	var got payload
	if GetJSON(context.Background(), c, "absent", &got) {
		t.Fatal("expected cache miss")
	}
}

func TestSetJSONHonorsTTL(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewClient(srv.Addr())
	ctx := context.Background()

	SetJSON(ctx, c, "k", payload{Name: "x"}, time.Minute)
	srv.FastForward(2 * time.Minute)

	var got payload
	if GetJSON(ctx, c, "k", &got) {
		t.Fatal("expected expiry after TTL")
	}
}
