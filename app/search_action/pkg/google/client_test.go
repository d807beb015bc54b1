package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iWorld-y/search_action/app/search_action/pkg/search"
)

func TestClient_FetchSendsParams(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		q := r.URL.Query()
		got = map[string]string{
			"key":          q.Get("key"),
			"cx":           q.Get("cx"),
			"q":            q.Get("q"),
			"num":          q.Get("num"),
			"dateRestrict": q.Get("dateRestrict"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"link":"https://a.com","title":"A","snippet":"1 day ago ... a"},
			{"link":"https://b.com","title":"B"}
		]}`))
	}))
	defer server.Close()

	c := NewClient("test-key", "test-cx", server.URL, 5)
	items, err := c.Fetch(context.Background(), &search.Request{Query: "go lang", NumResults: 10, DateRestrict: "w1"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	want := map[string]string{"key": "test-key", "cx": "test-cx", "q": "go lang", "num": "10", "dateRestrict": "w1"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("param %s = %q, want %q", k, got[k], v)
		}
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Snippet == nil || *items[0].Snippet != "1 day ago ... a" {
		t.Errorf("items[0].Snippet = %v", items[0].Snippet)
	}
	if items[1].Snippet != nil {
		t.Errorf("items[1].Snippet = %q, want nil", *items[1].Snippet)
	}
}

func TestClient_FetchOmitsEmptyDateRestrict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["dateRestrict"]; ok {
			t.Errorf("dateRestrict must be omitted when empty")
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	items, err := NewClient("k", "cx", server.URL, 5).Fetch(context.Background(), &search.Request{Query: "q", NumResults: 3})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("len(items) = %d, want 0", len(items))
	}
}

func TestClient_FetchNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	_, err := NewClient("k", "cx", server.URL, 5).Fetch(context.Background(), &search.Request{Query: "q"})
	if err == nil {
		t.Fatal("Fetch() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("Fetch() error = %v", err)
	}
}

func TestClient_FetchBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	if _, err := NewClient("k", "cx", server.URL, 5).Fetch(context.Background(), &search.Request{Query: "q"}); err == nil {
		t.Fatal("Fetch() error = nil, want decode error")
	}
}

func TestClient_RetriedBySearchClient(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"link":"https://a.com","title":"A","snippet":"Jan 5, 2023 ... a"}]}`))
	}))
	defer server.Close()

	sc := search.NewClient(NewClient("k", "cx", server.URL, 5), search.Options{
		MinDelay: 1, // 取整后为 0 秒
		MaxDelay: 1,
	})
	results, err := sc.Search(context.Background(), &search.Request{Query: "q"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if d := results[0].Date; d == nil || *d != "2023-01-05" {
		t.Errorf("Date = %v, want 2023-01-05", d)
	}
}
