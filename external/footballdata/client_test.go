package footballdata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gafferhq/gaffer/internal/domain/player"
	"github.com/gafferhq/gaffer/internal/platform/logging"
	"github.com/gafferhq/gaffer/internal/platform/resilience"
)

func newTestClient(baseURL string, maxRetries int) *Client {
	return NewClient(ClientConfig{
		BaseURL:        baseURL,
		Token:          "secret-token",
		Timeout:        2 * time.Second,
		MaxRetries:     maxRetries,
		Logger:         logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	})
}

func TestFetchSquad_MapsProviderRoster(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/clubs/squad" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "Arsenal" {
			t.Fatalf("unexpected club name: %s", got)
		}
		if got := r.URL.Query().Get("api_token"); got != "secret-token" {
			t.Fatalf("unexpected api token: %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"name":                "Bukayo Saka",
					"nationality":         "England",
					"position":            "RW",
					"secondary_positions": []string{"LW", "AM"},
					"kit_number":          7,
					"overall":             86,
					"market_value":        120000000,
					"birth_year":          2001,
				},
				{
					"name":        "David Raya",
					"nationality": "Spain",
					"position":    "Goalkeeper",
					"kit_number":  22,
					"overall":     83,
					"birth_year":  1995,
				},
				{
					"name":     "Unknown Trialist",
					"position": "??",
				},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 0)

	roster, err := client.FetchSquad(context.Background(), "Arsenal")
	if err != nil {
		t.Fatalf("fetch squad failed: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 mapped players, got %d", len(roster))
	}

	raya := roster[0]
	if raya.Name != "David Raya" || raya.Pos != player.PositionGK {
		t.Fatalf("unexpected first entry: %+v", raya)
	}

	saka := roster[1]
	if saka.Pos != player.PositionRW {
		t.Fatalf("unexpected position: %s", saka.Pos)
	}
	if len(saka.SecondaryPos) != 2 || saka.SecondaryPos[0] != player.PositionLW || saka.SecondaryPos[1] != player.PositionAM {
		t.Fatalf("unexpected secondary positions: %v", saka.SecondaryPos)
	}
	if saka.KitNo == nil || *saka.KitNo != 7 {
		t.Fatalf("unexpected kit number: %v", saka.KitNo)
	}
	if saka.Value != 120000000 {
		t.Fatalf("unexpected market value: %d", saka.Value)
	}
}

func TestFetchSquad_RetriesOnServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"name": "Martin Odegaard", "position": "AM", "overall": 87},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 2)

	roster, err := client.FetchSquad(context.Background(), "Arsenal")
	if err != nil {
		t.Fatalf("fetch squad failed after retry: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "Martin Odegaard" {
		t.Fatalf("unexpected roster: %+v", roster)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", calls.Load())
	}
}

func TestFetchSquad_NonRetryableStatusFailsFast(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"club not found"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 3)

	if _, err := client.FetchSquad(context.Background(), "Nonexistent FC"); err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("404 must not be retried, got %d calls", calls.Load())
	}
}

func TestFetchSquad_RequiresClubName(t *testing.T) {
	t.Parallel()

	client := newTestClient("http://localhost:1", 0)
	if _, err := client.FetchSquad(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty club name")
	}
}
