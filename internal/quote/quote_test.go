package quote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		intervals:  []string{"1m", "5m", "15m"},
		attempts:   3,
		retryDelay: 0,
	}
}

func chartBody(closes []*float64) []byte {
	body := map[string]interface{}{
		"chart": map[string]interface{}{
			"result": []interface{}{
				map[string]interface{}{
					"indicators": map[string]interface{}{
						"quote": []interface{}{
							map[string]interface{}{"close": closes},
						},
					},
				},
			},
		},
	}
	out, _ := json.Marshal(body)
	return out
}

func f(v float64) *float64 { return &v }

func serveJSON(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchReturnsNewestClose(t *testing.T) {
	srv := serveJSON(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(chartBody([]*float64{f(1540.5), f(1552.25)}))
	})

	price, ok := newTestClient(srv.URL).Fetch("INFY.NS")
	if !ok {
		t.Fatal("expected a price")
	}
	if price != 1552.25 {
		t.Errorf("price = %v, want 1552.25", price)
	}
}

func TestFetchSkipsNullTail(t *testing.T) {
	srv := serveJSON(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(chartBody([]*float64{f(1540.5), nil, nil}))
	})

	price, ok := newTestClient(srv.URL).Fetch("INFY.NS")
	if !ok || price != 1540.5 {
		t.Errorf("price, ok = %v, %v; want 1540.5, true", price, ok)
	}
}

func TestFetchFallsBackToCoarserInterval(t *testing.T) {
	var requests int32
	srv := serveJSON(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.URL.Query().Get("interval") == "1m" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(chartBody([]*float64{f(1500)}))
	})

	price, ok := newTestClient(srv.URL).Fetch("INFY.NS")
	if !ok || price != 1500 {
		t.Fatalf("price, ok = %v, %v; want 1500, true", price, ok)
	}
	// Three failed 1m attempts, then the first 5m attempt succeeds.
	if got := atomic.LoadInt32(&requests); got != 4 {
		t.Errorf("requests = %d, want 4", got)
	}
}

func TestFetchUnavailableAfterExhaustingAllAttempts(t *testing.T) {
	var requests int32
	srv := serveJSON(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, ok := newTestClient(srv.URL).Fetch("INFY.NS"); ok {
		t.Fatal("expected unavailable")
	}
	if got := atomic.LoadInt32(&requests); got != 9 {
		t.Errorf("requests = %d, want 9 (3 intervals x 3 attempts)", got)
	}
}

func TestFetchRejectsNonJSONContentType(t *testing.T) {
	srv := serveJSON(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>rate limited</html>"))
	})

	if _, ok := newTestClient(srv.URL).Fetch("INFY.NS"); ok {
		t.Error("expected unavailable for non-JSON response")
	}
}

func TestFetchMalformedPayloadIsFailure(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{"not json", []byte("{truncated")},
		{"empty result", []byte(`{"chart":{"result":[]}}`)},
		{"missing quote series", []byte(`{"chart":{"result":[{"indicators":{"quote":[]}}]}}`)},
		{"all null closes", chartBody([]*float64{nil, nil})},
		{"empty close series", chartBody(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveJSON(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write(tt.body)
			})

			if _, ok := newTestClient(srv.URL).Fetch("INFY.NS"); ok {
				t.Error("expected unavailable")
			}
		})
	}
}
