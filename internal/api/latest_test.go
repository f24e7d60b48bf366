package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andesvia/boleteria/internal/api"
	"github.com/andesvia/boleteria/internal/model"
)

// TestTripFetcherDiscardsStaleResponses pins the last-wins rule: a
// response to an older fetch that lands after a newer one must be
// reported stale, however fast or slow the backend was.
func TestTripFetcherDiscardsStaleResponses(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/viajes/1/", func(w http.ResponseWriter, _ *http.Request) {
		close(slowStarted)
		<-release
		_ = json.NewEncoder(w).Encode(model.Trip{ID: 1, Bus: model.Bus{TotalCapacity: 60}})
	})
	mux.HandleFunc("/api/viajes/2/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Trip{ID: 2, Bus: model.Bus{TotalCapacity: 40}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := api.NewTripFetcher(api.New(srv.URL+"/api", nil))

	type result struct {
		trip  model.Trip
		stale bool
		err   error
	}
	first := make(chan result, 1)
	go func() {
		trip, stale, err := f.Fetch(context.Background(), 1)
		first <- result{trip, stale, err}
	}()
	<-slowStarted

	trip, stale, err := f.Fetch(context.Background(), 2)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if stale {
		t.Fatal("the newest fetch must never be stale")
	}
	if trip.ID != 2 {
		t.Fatalf("trip = %d, want 2", trip.ID)
	}

	close(release)
	got := <-first
	if !got.stale {
		t.Fatal("the superseded fetch must be reported stale")
	}
	if got.err != nil {
		t.Fatalf("stale fetch must carry no error, got %v", got.err)
	}
}

func TestTripFetcherReturnsFreshResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/viajes/3/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Trip{ID: 3})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := api.NewTripFetcher(api.New(srv.URL+"/api", nil))
	trip, stale, err := f.Fetch(context.Background(), 3)
	if err != nil || stale {
		t.Fatalf("fetch = stale %v, err %v", stale, err)
	}
	if trip.ID != 3 {
		t.Fatalf("trip = %d, want 3", trip.ID)
	}
}
