package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "tests" {
			t.Errorf("user agent = %q", got)
		}
		if r.URL.Path != "/hooks/x" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL + "/", UserAgent: "tests"})
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodPost, "hooks/x", nil, map[string]string{"msg": "hola"}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out["echo"] != "hola" {
		t.Fatalf("echo = %q", out["echo"])
	}
}

func TestDoJSON_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := New(Options{})
	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)

	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("want *HTTPError, got %v", err)
	}
	if he.StatusCode != http.StatusServiceUnavailable || he.Body != "down" || !he.Retryable() {
		t.Fatalf("unexpected %+v", he)
	}
}

func TestResolveURL(t *testing.T) {
	c, _ := New(Options{})
	if _, err := c.resolveURL("/relative"); err == nil {
		t.Fatal("relative path without BaseURL should fail")
	}
	if _, err := New(Options{BaseURL: "::nope"}); err == nil {
		t.Fatal("invalid base url should fail")
	}
	var nilClient *Client
	if err := nilClient.DoJSON(context.Background(), http.MethodGet, "http://x", nil, nil, nil); !errors.Is(err, ErrNilClient) {
		t.Fatalf("nil client: %v", err)
	}
}
