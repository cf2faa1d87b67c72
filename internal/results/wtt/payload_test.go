package wtt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func TestResolvePayload_StaticFirstSuccess(t *testing.T) {
	var staticHits, liveHits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "official_results.json") {
			staticHits.Add(1)
			w.Write([]byte(`[{"subEventType": "MS"}]`))
			return
		}
		liveHits.Add(1)
		w.Write([]byte(`{"matches": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL, server.URL+"/live", []int{200, 100}))

	payload, err := client.ResolvePayload(context.Background(), "2954")
	if err != nil {
		t.Fatalf("ResolvePayload returned error: %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("payload should not be empty")
	}
	if staticHits.Load() != 1 {
		t.Errorf("staticHits = %d, want 1 (largest take first)", staticHits.Load())
	}
	if liveHits.Load() != 0 {
		t.Errorf("liveHits = %d, want 0 when the static tier succeeds", liveHits.Load())
	}
}

func TestResolvePayload_FallsBackToLive(t *testing.T) {
	var staticHits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "official_results.json") {
			staticHits.Add(1)
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("EventId") != "2954" {
			t.Errorf("live request EventId = %q, want 2954", r.URL.Query().Get("EventId"))
		}
		if r.URL.Query().Get("include_match_card") != "true" {
			t.Error("live request should set include_match_card=true")
		}
		if r.URL.Query().Get("languageCode") != "en" {
			t.Error("live request should set languageCode=en")
		}
		w.Write([]byte(`{"matches": [{"subEventType": "WS"}]}`))
	}))
	defer server.Close()

	takes := []int{50, 20, 10}
	client := NewClient(testConfig("", server.URL, server.URL+"/live", takes))

	payload, err := client.ResolvePayload(context.Background(), "2954")
	if err != nil {
		t.Fatalf("ResolvePayload returned error: %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("payload should not be empty")
	}
	if int(staticHits.Load()) != len(takes) {
		t.Errorf("staticHits = %d, want %d (every take tried before the live tier)", staticHits.Load(), len(takes))
	}
}

func TestResolvePayload_StaticURLShape(t *testing.T) {
	wantPath := "/2954/2954_take_200_official_results.json"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("static path = %q, want %q", r.URL.Path, wantPath)
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL, server.URL, []int{200}))
	if _, err := client.ResolvePayload(context.Background(), "2954"); err != nil {
		t.Fatalf("ResolvePayload returned error: %v", err)
	}
}

func TestResolvePayload_AllTiersExhausted(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if strings.Contains(r.URL.Path, "official_results.json") {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	takes := []int{20, 10}
	client := NewClient(testConfig("", server.URL, server.URL+"/live", takes))

	_, err := client.ResolvePayload(context.Background(), "3012")
	var unavailable *PayloadUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want *PayloadUnavailableError", err)
	}
	if unavailable.EventID != "3012" {
		t.Errorf("EventID = %q, want 3012", unavailable.EventID)
	}
	if want := int32(2 * len(takes)); hits.Load() != want {
		t.Errorf("hits = %d, want %d (both tiers, every take)", hits.Load(), want)
	}
}

func TestResolvePayload_TriesTakesInOrder(t *testing.T) {
	var mu sync.Mutex
	var paths []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(testConfig("", server.URL, server.URL+"/live", []int{200, 100, 50}))
	client.ResolvePayload(context.Background(), "7")

	mu.Lock()
	defer mu.Unlock()
	for i, take := range []int{200, 100, 50} {
		want := fmt.Sprintf("/7/7_take_%d_official_results.json", take)
		if paths[i] != want {
			t.Errorf("static attempt %d hit %q, want %q", i, paths[i], want)
		}
	}
}
