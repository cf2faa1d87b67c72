package wtt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/wttnotify/wttnotify/internal/pkg/config"
)

func testConfig(appSettingURL, staticRoot, liveAPIURL string, takes []int) *config.Config {
	return &config.Config{
		WTT: config.WTTConfig{
			AppSettingURL:    appSettingURL,
			StaticRoot:       staticRoot,
			LiveAPIURL:       liveAPIURL,
			Takes:            takes,
			DiscoveryTimeout: 5 * time.Second,
			FetchTimeout:     5 * time.Second,
			UserAgent:        "test-agent",
		},
	}
}

func TestDiscoverLatestEventIDs_Dedup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("qc") == "" {
			t.Error("discovery request should carry a cache-busting qc parameter")
		}
		w.Write([]byte(`{"value": "101,102,101, 103"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, "", "", nil))

	ids, err := client.DiscoverLatestEventIDs(context.Background())
	if err != nil {
		t.Fatalf("DiscoverLatestEventIDs returned error: %v", err)
	}
	want := []string{"101", "102", "103"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestDiscoverLatestEventIDs_StripsNoise(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": " #2954 , evt-3012,, abc "}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, "", "", nil))

	ids, err := client.DiscoverLatestEventIDs(context.Background())
	if err != nil {
		t.Fatalf("DiscoverLatestEventIDs returned error: %v", err)
	}
	want := []string{"2954", "3012"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestDiscoverLatestEventIDs_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": ""}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, "", "", nil))

	ids, err := client.DiscoverLatestEventIDs(context.Background())
	if err != nil {
		t.Fatalf("no completed events is not an error, got: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
}

func TestDiscoverLatestEventIDs_BadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, "", "", nil))

	_, err := client.DiscoverLatestEventIDs(context.Background())
	var discErr *DiscoveryError
	if !errors.As(err, &discErr) {
		t.Fatalf("err = %v, want *DiscoveryError", err)
	}
}

func TestDiscoverLatestEventIDs_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL, "", "", nil))

	_, err := client.DiscoverLatestEventIDs(context.Background())
	var discErr *DiscoveryError
	if !errors.As(err, &discErr) {
		t.Fatalf("err = %v, want *DiscoveryError", err)
	}
}
