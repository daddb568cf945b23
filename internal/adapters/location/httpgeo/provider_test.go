package httpgeo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProvider_RequestLocation_FillsCache(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":-33.8,"longitude":151.2}`))
	}))
	defer ts.Close()

	p, err := New(ts.URL, time.Second, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := p.LastKnown(context.Background()); ok {
		t.Fatalf("expected empty cache before request")
	}

	p.RequestLocation(context.Background())
	p.Wait()

	c, ok := p.LastKnown(context.Background())
	if !ok {
		t.Fatalf("expected cached fix")
	}
	if c.Latitude != -33.8 || c.Longitude != 151.2 {
		t.Fatalf("unexpected fix: %+v", c)
	}
}

func TestProvider_RequestLocation_IgnoresPartialAndErrors(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"partial": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"latitude":1}`))
		},
		"upstream error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		},
	}

	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(h)
			defer ts.Close()

			p, err := New(ts.URL, time.Second, nil)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			p.RequestLocation(context.Background())
			p.Wait()

			if _, ok := p.LastKnown(context.Background()); ok {
				t.Fatalf("expected no fix")
			}
		})
	}
}

func TestNew_InvalidURL(t *testing.T) {
	if _, err := New("::not a url", time.Second, nil); err == nil {
		t.Fatalf("expected error for invalid url")
	}
}
