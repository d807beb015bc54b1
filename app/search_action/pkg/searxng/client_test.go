package searxng

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iWorld-y/search_action/app/search_action/pkg/search"
)

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %s, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("format") != "json" || q.Get("q") != "golang" {
			t.Errorf("query = %v", q)
		}
		if q.Get("time_range") != "week" {
			t.Errorf("time_range = %q, want week", q.Get("time_range"))
		}
		_, _ = w.Write([]byte(`{"query":"golang","results":[
			{"title":"A","url":"https://a.com","content":"2 hours ago ... a"},
			{"title":"B","url":"https://b.com","content":""},
			{"title":"C","url":"https://c.com","content":"c"}
		]}`))
	}))
	defer server.Close()

	items, err := NewClient(server.URL, 5).Fetch(context.Background(), &search.Request{Query: "golang", NumResults: 2, DateRestrict: "w1"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Snippet == nil || *items[0].Snippet != "2 hours ago ... a" {
		t.Errorf("items[0].Snippet = %v", items[0].Snippet)
	}
	if items[1].Snippet != nil {
		t.Errorf("items[1].Snippet should be nil for empty content")
	}
}

func TestClient_FetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := NewClient(server.URL, 5).Fetch(context.Background(), &search.Request{Query: "q"}); err == nil {
		t.Fatal("Fetch() error = nil, want error")
	}
}
